package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultBcryptCost = bcrypt.DefaultCost

	// MaxPasswordBytes bcrypt 只接受 72 字节以内的输入
	MaxPasswordBytes = 72
)

var (
	// ErrPasswordMismatch 密码不匹配
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrPasswordTooLong 密码超过 MaxPasswordBytes
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// HashPassword 对明文密码进行哈希处理
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password must not be empty")
	}
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), defaultBcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// IsHashed 判断存储值是否为 bcrypt 哈希
func IsHashed(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// VerifyPassword 校验密码。旧数据中的明文密码按原样比较，
// 此时 needsRehash 为 true，调用方应在登录成功后改写为哈希。
func VerifyPassword(stored, candidate string) (needsRehash bool, err error) {
	if strings.TrimSpace(stored) == "" {
		return false, errors.New("stored password is empty")
	}
	if !IsHashed(stored) {
		if stored != candidate {
			return false, ErrPasswordMismatch
		}
		return true, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, ErrPasswordMismatch
		}
		return false, err
	}
	return false, nil
}

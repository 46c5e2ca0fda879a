package service

import (
	"errors"
	"fmt"
)

// ErrorKind 错误分类，决定 HTTP 状态码
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConfiguration
	KindStorage
)

// ConfigurationMessage 数据库未绑定时返回给客户端的提示
const ConfigurationMessage = "数据库未正确配置。请确保设置了 DB_TYPE 并能连接到数据库。"

// AppError 业务层返回的带分类错误，Message 直接展示给客户端
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError 请求参数错误
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewAuthError 认证失败
func NewAuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

// NewNotFoundError 资源不存在
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewConfigurationError 数据库未配置
func NewConfigurationError(err error) *AppError {
	return &AppError{Kind: KindConfiguration, Message: ConfigurationMessage, Err: err}
}

// NewStorageError 存储层失败，message 描述失败的操作
func NewStorageError(message string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: message, Err: err}
}

// AsAppError 从错误链中取出 AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"
)

var errEmptyPayload = errors.New("empty payload")

// sanitizePathSegment 只保留小写字母、数字、- 和 _
func sanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			builder.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			builder.WriteByte(ch + 32)
		case ch == '-', ch == '_':
			builder.WriteByte(ch)
		}
	}
	return builder.String()
}

func normalizeExtension(ext string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if trimmed == "" {
		return "bin"
	}
	return sanitizePathSegment(trimmed)
}

func sanitizeFileBase(value string) string {
	replaced := strings.ReplaceAll(strings.TrimSpace(value), " ", "-")
	return strings.Trim(sanitizePathSegment(replaced), "-_")
}

// buildObjectPath 生成不含前缀的对象键
func buildObjectPath(opts SaveOptions, now time.Time) string {
	category := sanitizePathSegment(opts.Category)
	if category == "" {
		category = "misc"
	}
	base := sanitizeFileBase(opts.BaseName)
	if base == "" {
		base = fmt.Sprintf("%d", now.UnixNano())
	}
	datedir := fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day())
	return path.Join(category, datedir, base+"."+normalizeExtension(opts.Extension))
}

// objectKey 生成带前缀的对象键
func objectKey(prefix string, opts SaveOptions) string {
	key := buildObjectPath(opts, time.Now().UTC())
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return key
	}
	return path.Join(cleanPrefix, key)
}

func contentType(opts SaveOptions) string {
	if ct := strings.TrimSpace(opts.ContentType); ct != "" {
		return ct
	}
	if typeName := mime.TypeByExtension("." + normalizeExtension(opts.Extension)); typeName != "" {
		return typeName
	}
	return "application/octet-stream"
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

// checkSave 上传前的公共检查
func checkSave(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return errEmptyPayload
	}
	return ctx.Err()
}

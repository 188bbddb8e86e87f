package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBlogNotFound       = errors.New("blog not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotBlogAuthor      = errors.New("not the author of this blog")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// FieldError 描述单个字段违反的约束。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 汇总一次请求中所有字段级校验失败，
// 以便调用方一次性渲染全部错误。
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() *ValidationError {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

package service

import (
	"errors"
	"strings"

	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/validator"
)

var (
	// ErrNotFound 与仓储层同一个哨兵，errors.Is 两边都成立
	ErrNotFound = repository.ErrNotFound
	// ErrForbidden 非作者编辑帖子
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials 登录失败
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError 表单校验失败，未写入任何数据
type ValidationError struct {
	Fields []validator.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func invalid(field, message string) error {
	return &ValidationError{Fields: []validator.FieldError{{Field: field, Message: message}}}
}

// validate 运行结构体校验，失败时返回 *ValidationError
func validate(req interface{}) error {
	if errs := validator.Struct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindStorage       Kind = "storage"
	KindConfiguration Kind = "configuration"
)

type AppError struct {
	Code    string
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation 输入不合法，调用方的问题，不重试
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Kind:    KindValidation,
		Message: message,
	}
}

// Storage 外部存储操作失败，附带底层错误信息
func Storage(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    KindStorage,
		Message: message,
		Err:     err,
	}
}

// Configuration 存储凭证或地址缺失，启动时致命
func Configuration(message string, err error) *AppError {
	return &AppError{
		Code:    ErrConfigLoad,
		Kind:    KindConfiguration,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or "" if none.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func IsStorage(err error) bool {
	return KindOf(err) == KindStorage
}

func IsConfiguration(err error) bool {
	return KindOf(err) == KindConfiguration
}

var (
	ErrValidation         = "VALIDATION_ERROR"
	ErrConfigLoad         = "CONFIG_LOAD_ERROR"
	ErrDatabaseConnect    = "DATABASE_CONNECT_ERROR"
	ErrAppInsert          = "APP_INSERT_ERROR"
	ErrRevenueInsert      = "REVENUE_INSERT_ERROR"
	ErrNotificationInsert = "NOTIFICATION_INSERT_ERROR"
	ErrAppLoad            = "APP_LOAD_ERROR"
	ErrNotificationLoad   = "NOTIFICATION_LOAD_ERROR"
	ErrClaimInsert        = "CLAIM_INSERT_ERROR"
)

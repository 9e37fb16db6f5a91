package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 99")
	ErrDuplicate          = errors.New("already exists")
	ErrCategoryInUse      = errors.New("cannot delete category with products")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// ValidationError names the offending form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// notFound maps gorm.ErrRecordNotFound onto ErrNotFound and leaves other
// errors alone.
func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}

// duplicate maps a unique-index violation onto ErrDuplicate.
func duplicate(err error, field, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicate, invalid(field, message))
	}
	return err
}

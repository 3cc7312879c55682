package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain failures.
type ErrorKind string

const (
	// ErrKindDuplicate indicates an entity with the same name already exists.
	ErrKindDuplicate ErrorKind = "duplicate_entity"
	// ErrKindNotFound indicates the named entity does not exist.
	ErrKindNotFound ErrorKind = "not_found"
	// ErrKindValidation indicates invalid input or a violated constraint.
	ErrKindValidation ErrorKind = "validation_failure"
	// ErrKindBudgetExceeded indicates a budget mutation would go negative.
	ErrKindBudgetExceeded ErrorKind = "budget_exceeded"
	// ErrKindInsufficientStock indicates inventory cannot cover a demand.
	ErrKindInsufficientStock ErrorKind = "insufficient_stock"
	// ErrKindIngredientNotInRecipe indicates the ingredient is not part of the item's recipe.
	ErrKindIngredientNotInRecipe ErrorKind = "ingredient_not_in_recipe"
	// ErrKindLastIngredient indicates the only recipe ingredient cannot be removed.
	ErrKindLastIngredient ErrorKind = "cannot_remove_last_ingredient"
	// ErrKindEmptyCart indicates checkout was attempted with an empty cart.
	ErrKindEmptyCart ErrorKind = "empty_cart"
	// ErrKindPersistence indicates a storage fault.
	ErrKindPersistence ErrorKind = "persistence_failure"
)

// DomainError is a tagged error carrying the failure taxonomy kind.
type DomainError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewDomainError creates a DomainError with the given kind and message.
func NewDomainError(kind ErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapPersistence wraps a storage fault as a persistence DomainError.
func WrapPersistence(cause error, format string, args ...interface{}) *DomainError {
	return &DomainError{
		Kind:    ErrKindPersistence,
		Message: fmt.Sprintf(format+": %v", append(args, cause)...),
		cause:   cause,
	}
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

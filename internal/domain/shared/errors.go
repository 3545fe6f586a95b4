package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Simulation lifecycle errors

type GameOverError struct {
	*DomainError
	Month int
}

func NewGameOverError(month int) *GameOverError {
	return &GameOverError{
		DomainError: &DomainError{Message: fmt.Sprintf("company is bankrupt since month %d", month)},
		Month:       month,
	}
}

// Inventory errors

type InsufficientStockError struct {
	*DomainError
	Item      string
	Required  int
	Available int
}

func NewInsufficientStockError(item string, required, available int) *InsufficientStockError {
	return &InsufficientStockError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient stock of %s: need %d, have %d", item, required, available)},
		Item:        item,
		Required:    required,
		Available:   available,
	}
}

type InsufficientCapacityError struct {
	*DomainError
	Warehouse string
	Required  float64
	Available float64
}

func NewInsufficientCapacityError(warehouse string, required, available float64) *InsufficientCapacityError {
	return &InsufficientCapacityError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient capacity in %s: need %.2f, have %.2f", warehouse, required, available)},
		Warehouse:   warehouse,
		Required:    required,
		Available:   available,
	}
}

// Catalog lookup errors

type UnknownItemError struct {
	*DomainError
	Kind string
	Name string
}

func NewUnknownItemError(kind, name string) *UnknownItemError {
	return &UnknownItemError{
		DomainError: &DomainError{Message: fmt.Sprintf("unknown %s: %s", kind, name)},
		Kind:        kind,
		Name:        name,
	}
}

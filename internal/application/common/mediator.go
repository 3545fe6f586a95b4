package common

import (
	"context"
	"fmt"
	"reflect"
)

// Request is a command or query dispatched through the mediator
type Request interface{}

// Response is the result of handling a request
type Response interface{}

// RequestHandler handles one concrete request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// Mediator routes requests to the handler registered for their concrete
// type
type Mediator struct {
	handlers map[reflect.Type]RequestHandler
}

// NewMediator creates an empty mediator
func NewMediator() *Mediator {
	return &Mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

// Send dispatches a request to its registered handler
func (m *Mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]
	if !ok {
		return nil, fmt.Errorf("no handler registered for type %s", requestType)
	}
	return handler.Handle(ctx, request)
}

// RegisterHandler wires a handler to the request type T. Registering a
// type twice is a wiring bug and panics at startup.
func RegisterHandler[T Request](m *Mediator, handler RequestHandler) {
	var zero T
	requestType := reflect.TypeOf(zero)
	if handler == nil {
		panic(fmt.Sprintf("nil handler for %s", requestType))
	}
	if _, exists := m.handlers[requestType]; exists {
		panic(fmt.Sprintf("handler already registered for %s", requestType))
	}
	m.handlers[requestType] = handler
}

package ecs

import "errors"

// Caller errors returned by the registry, store and coordinator. They are
// always wrapped with context, so compare with errors.Is.
var (
	ErrCapacityExceeded      = errors.New("ecs: capacity exceeded")
	ErrInvalidEntity         = errors.New("ecs: invalid entity")
	ErrDuplicateRegistration = errors.New("ecs: duplicate registration")
	ErrUnregisteredType      = errors.New("ecs: unregistered type")
	ErrTooManyTypes          = errors.New("ecs: too many component types")
	ErrDuplicateComponent    = errors.New("ecs: duplicate component")
	ErrComponentNotFound     = errors.New("ecs: component not found")
)

package argon

import "errors"

var (
	// ErrInvalidArgument is returned when a required reference is nil, or
	// a node of the wrong kind is passed to an operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation is returned when the operation cannot be
	// performed on the receiver node kind.
	ErrInvalidOperation = errors.New("operation cannot be performed")

	// ErrDuplicateID is returned when an ID value is already registered
	// in the document. The registry never silently overwrites.
	ErrDuplicateID = errors.New("duplicate ID value")

	ErrDuplicateAttribute = errors.New("duplicate attribute")
	ErrAttributeNotFound  = errors.New("attribute not found")
	ErrDuplicateNsDecl    = errors.New("duplicate namespace declaration")
)

package chunkseq

import "errors"

// Error is a sentinel string error type: a small family of named, comparable
// error values for conditions callers are expected to branch on (errors.Is
// still works since Error implements the standard Error() string method).
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrBuilderDone signals a method call on a Builder after Build has
	// already materialized it.
	ErrBuilderDone Error = "chunkseq: builder already completed"
)

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("chunkseq: index out of bounds")
	// ErrEmptySequence signals an end operation on an empty sequence.
	ErrEmptySequence = errors.New("chunkseq: sequence is empty")
	// ErrInvalidConfig signals an invalid Config.
	ErrInvalidConfig = errors.New("chunkseq: invalid configuration")
)

package chunk

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid chunk-local offset.
	ErrIndexOutOfBounds = errors.New("chunk: index out of bounds")
	// ErrChunkFull signals that a push or transfer would exceed capacity.
	ErrChunkFull = errors.New("chunk: capacity exceeded")
	// ErrChunkEmpty signals that a pop or front/back access was attempted on
	// an empty chunk.
	ErrChunkEmpty = errors.New("chunk: chunk is empty")
	// ErrInsufficientItems signals that a transfer requested more items than
	// the source chunk holds.
	ErrInsufficientItems = errors.New("chunk: not enough items to transfer")
	// ErrDestinationNotEmpty signals that SplitAt was called with a non-empty
	// destination chunk.
	ErrDestinationNotEmpty = errors.New("chunk: destination chunk is not empty")
	// ErrInvalidCapacity signals a non-positive or odd chunk capacity.
	ErrInvalidCapacity = errors.New("chunk: capacity must be a positive even integer")
)

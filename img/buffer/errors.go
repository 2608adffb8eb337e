package buffer

import "errors"

// Construction errors.
var (
	ErrInvalidSize   = errors.New("buffer: width and height must be positive")
	ErrInvalidStride = errors.New("buffer: stride must be at least width")
)

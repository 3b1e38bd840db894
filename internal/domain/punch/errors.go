package punch

import "errors"

var (
	ErrDuplicateStart = errors.New("a start punch already exists for this day")
	ErrDuplicateEnd   = errors.New("an end punch already exists for this day")
	ErrInvalidKind    = errors.New("invalid punch kind")
)

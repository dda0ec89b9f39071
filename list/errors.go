package list

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyList       = errors.New("list is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidRange    = errors.New("invalid range")
)

func emptyErr(size int) error {
	return fmt.Errorf("list size: %d --- %w", size, ErrEmptyList)
}

func indexErr(size int, idx int) error {
	return fmt.Errorf("list size: %d --- index %d: %w", size, idx, ErrIndexOutOfRange)
}

func rangeErr(op string, start int, end int) error {
	return fmt.Errorf("unable to %s list with start %d larger than end %d: %w", op, start, end, ErrInvalidRange)
}

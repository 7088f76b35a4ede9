// Package errortypes defines the errors reported by the emblem expression
// parser, so that callers can point a diagnostic at the offending source.
package errortypes

import (
	"errors"
	"fmt"
)

// ErrFilePos extends the error interface to add details on the file position where the error occurred.
type ErrFilePos interface {
	error
	File() string
	Line() int
	Col() int
}

// NewErrFilePosf creates an error conforming to the ErrFilePos interface.
func NewErrFilePosf(file string, line, col int, format string, args ...interface{}) error {
	return &errFilePos{
		error: fmt.Errorf(format, args...),
		file:  file,
		line:  line,
		col:   col,
	}
}

// IsErrFilePos identifies whether or not the provided error, or any error it
// wraps, is of the ErrFilePos type.
func IsErrFilePos(err error) bool {
	return ToErrFilePos(err) != nil
}

// ToErrFilePos converts the input error to an ErrFilePos if possible, or nil if not.
// If IsErrFilePos returns true, this will not return nil.
func ToErrFilePos(err error) ErrFilePos {
	if err == nil {
		return nil
	}
	var out ErrFilePos
	if errors.As(err, &out) {
		return out
	}
	return nil
}

var _ ErrFilePos = &errFilePos{}

type errFilePos struct {
	error
	file string
	line int
	col  int
}

func (e *errFilePos) File() string {
	return e.file
}

func (e *errFilePos) Line() int {
	return e.line
}

func (e *errFilePos) Col() int {
	return e.col
}

func (e *errFilePos) Unwrap() error {
	return e.error
}

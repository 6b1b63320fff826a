package common

import (
	"fmt"
)

// Error kinds surfaced by the reader. Failures of Next, CreateRowBatch or an
// accessor are one of these, possibly wrapped with a stack by
// github.com/pkg/errors (match with errors.As); internal invariant violations
// such as a stream Backup past its last window are plain errors.

type IoError struct {
	Op     string
	Stream string
}

func (e IoError) Error() string {
	if e.Stream != "" {
		return fmt.Sprintf("io error: %s on %s", e.Op, e.Stream)
	}
	return fmt.Sprintf("io error: %s", e.Op)
}

type ParseError struct {
	What   string
	Offset uint64
}

func (e ParseError) Error() string {
	if e.Offset != 0 {
		return fmt.Sprintf("parse error: %s at offset %d", e.What, e.Offset)
	}
	return fmt.Sprintf("parse error: %s", e.What)
}

type CompressionError struct {
	Kind   string
	Offset uint64
}

func (e CompressionError) Error() string {
	return fmt.Sprintf("compression error: %s at offset %d", e.Kind, e.Offset)
}

type NotImplemented struct {
	Feature string
}

func (e NotImplemented) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Feature)
}

type OutOfRange struct {
	Field string
}

func (e OutOfRange) Error() string {
	return fmt.Sprintf("out of range: %s", e.Field)
}

type StatsUndefined struct {
	Field string
}

func (e StatsUndefined) Error() string {
	return fmt.Sprintf("statistics field not defined: %s", e.Field)
}

type CorruptEncoding struct {
	Encoding string
	Detail   string
}

func (e CorruptEncoding) Error() string {
	return fmt.Sprintf("corrupt %s encoding: %s", e.Encoding, e.Detail)
}

package tensor

import (
	"errors"
	"fmt"
	"sync"
)

// Error kinds reported by tensor operations.
// Use errors.Is to test an operation's error against these.
var (
	ErrNullOperand     = errors.New("null operand")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAllocation      = errors.New("allocation failed")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrInvalidRank     = errors.New("invalid rank")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrDomain          = errors.New("domain error")
	ErrEmptyTensor     = errors.New("empty or null tensor")
	ErrInvalidRange    = errors.New("invalid range")
)

// OpError describes a failed tensor operation.
type OpError struct {
	Op      string // Operation name (e.g., "matmul", "divide")
	Err     error  // One of the Err* kinds above
	Details string // Human-readable detail
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Details)
}

// Unwrap returns the error kind.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Errorf builds an *OpError for op with the given kind and formatted details.
func Errorf(op string, kind error, format string, args ...any) error {
	return &OpError{Op: op, Err: kind, Details: fmt.Sprintf(format, args...)}
}

// errInvalidShape is reported by Create for malformed shapes. It matches
// both ErrAllocation and ErrInvalidArgument.
var errInvalidShape = fmt.Errorf("%w: %w", ErrAllocation, ErrInvalidArgument)

// ErrorChannel is a last-error slot owned by a single caller.
//
// Operations never write to a shared slot; a host that wants the
// get/clear-last-error style of reporting keeps one ErrorChannel per
// interpreter (or goroutine) and passes results through Record.
// The zero value is ready to use and safe for concurrent use.
type ErrorChannel struct {
	mu   sync.Mutex
	last error
}

// Record stores err as the last error if it is non-nil and returns it unchanged.
// A nil err leaves the slot untouched.
//
// Example:
//
//	var ch tensor.ErrorChannel
//	q, err := backend.Div(a, b)
//	if ch.Record(err) != nil {
//	    msg, _ := ch.LastError()
//	    fmt.Println(msg)
//	}
func (c *ErrorChannel) Record(err error) error {
	if err == nil {
		return nil
	}
	c.mu.Lock()
	c.last = err
	c.mu.Unlock()
	return err
}

// LastError returns the message of the most recently recorded error.
// The boolean is false when the slot is empty.
func (c *ErrorChannel) LastError() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return "", false
	}
	return c.last.Error(), true
}

// Err returns the most recently recorded error, or nil.
func (c *ErrorChannel) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Clear empties the slot.
func (c *ErrorChannel) Clear() {
	c.mu.Lock()
	c.last = nil
	c.mu.Unlock()
}

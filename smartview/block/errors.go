package block

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates a read asked for more bytes than remain.
	ErrTruncated = errors.New("block: truncated buffer")
	// ErrMalformedLength indicates a decoded count or length implies more bytes than remain.
	ErrMalformedLength = errors.New("block: declared length exceeds buffer")
	// ErrUnknownSchema indicates no parser is registered for a selector.
	ErrUnknownSchema = errors.New("block: unknown schema")
	// ErrNotPresent is returned by field accessors when the field was never decoded.
	ErrNotPresent = errors.New("block: field not present")
)

// ErrorKind classifies recoverable decode conditions.
type ErrorKind uint8

const (
	KindNone ErrorKind = iota
	KindTruncated
	KindMalformedLength
	KindUnknownSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindTruncated:
		return "Truncated"
	case KindMalformedLength:
		return "MalformedLength"
	case KindUnknownSchema:
		return "UnknownSchema"
	default:
		return "None"
	}
}

// DecodeError describes where a walk stopped. Want is the number of bytes the
// read (or the declared count/length) required and Have what was left.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Want   int
	Have   int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindTruncated:
		return fmt.Sprintf("truncated at offset %d: need %d bytes, have %d", e.Offset, e.Want, e.Have)
	case KindMalformedLength:
		return fmt.Sprintf("malformed length at offset %d: declared %d bytes, have %d", e.Offset, e.Want, e.Have)
	case KindUnknownSchema:
		return "unknown schema"
	default:
		return "decode error"
	}
}

// Unwrap maps the kind to its sentinel so errors.Is works on either.
func (e *DecodeError) Unwrap() error {
	switch e.Kind {
	case KindTruncated:
		return ErrTruncated
	case KindMalformedLength:
		return ErrMalformedLength
	case KindUnknownSchema:
		return ErrUnknownSchema
	default:
		return nil
	}
}

// Classify reports the recoverable kind carried by err, or KindNone.
func Classify(err error) ErrorKind {
	var de *DecodeError
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &de):
		return de.Kind
	case errors.Is(err, ErrTruncated):
		return KindTruncated
	case errors.Is(err, ErrMalformedLength):
		return KindMalformedLength
	case errors.Is(err, ErrUnknownSchema):
		return KindUnknownSchema
	default:
		return KindNone
	}
}

func truncated(off, want, have int) error {
	return &DecodeError{Kind: KindTruncated, Offset: off, Want: want, Have: have}
}

func malformed(off, want, have int) error {
	return &DecodeError{Kind: KindMalformedLength, Offset: off, Want: want, Have: have}
}

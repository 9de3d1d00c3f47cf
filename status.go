package json

import (
	"errors"
	"fmt"
)

// ErrType is returned by a typed accessor (Bool, Number, Str) when the
// Value's tag does not match the accessor being called.
var ErrType = errors.New("json: type error")

// ParseStatus identifies precisely why a parse failed, or that it succeeded.
type ParseStatus int

// The full status taxonomy. OK is the zero value so a freshly-declared
// ParseStatus reads as success.
const (
	OK ParseStatus = iota
	UnexpectedSymbol
	InvalidValue
	RootNotSingular
	NumberTooLarge
	InvalidStringChar
	InvalidStringEscape
	MissQuotationMark
	InvalidUnicodeHex
	InvalidUnicodeSurrogate
	MissArraySymbol
	MissObjectKey
	MissObjectSymbol
	numStatuses
)

var statusStrings = [numStatuses]string{
	"ok",
	"unexpected symbol",
	"invalid value",
	"root not singular",
	"number too large",
	"invalid string char",
	"invalid string escape",
	"missing quotation mark",
	"invalid unicode hex",
	"invalid unicode surrogate",
	"missing array symbol",
	"missing object key",
	"missing object symbol",
}

// String returns a short human-readable description of the status.
func (s ParseStatus) String() string {
	if s < 0 || s >= numStatuses {
		return "unknown parse status"
	}
	return statusStrings[s]
}

// ParseError is the concrete error type every failing parse returns. Offset
// is the zero-based byte position in the input at which the offending
// production was recognized.
type ParseError struct {
	Status ParseStatus
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("json: %s at byte %d", e.Status, e.Offset)
}

// Is allows errors.Is(err, &json.ParseError{Status: json.InvalidValue})-style
// checks by treating two *ParseError as equivalent when their Status
// matches, independent of Offset.
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Status == other.Status
}

func newParseError(status ParseStatus, offset int) *ParseError {
	return &ParseError{Status: status, Offset: offset}
}

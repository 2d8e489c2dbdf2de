package query

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange      = errors.New("column index out of range")
	ErrParse                = errors.New("value is not a number")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// IndexError reports a row with too few fields for the requested column.
type IndexError struct {
	Row    int // 1-based position within the rows being scanned
	Column int
	Fields int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("row %d has %d fields, column index %d is out of range", e.Row, e.Fields, e.Column)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// ParseError reports a field that is not a valid floating point literal.
type ParseError struct {
	Value  string
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("can not convert %q in column %d to a float", e.Value, e.Column)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnsupportedOperationError reports an aggregate name outside the known set.
type UnsupportedOperationError struct {
	Name    string
	Allowed []string
}

func (e *UnsupportedOperationError) Error() string {
	quoted := make([]string, len(e.Allowed))
	for i, name := range e.Allowed {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("the provided operation %q is not allowed. Allowed operations: %s",
		e.Name, strings.Join(quoted, ", "))
}

func (e *UnsupportedOperationError) Is(target error) bool { return target == ErrUnsupportedOperation }

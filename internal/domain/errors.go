package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrConfiguration signals a broken lookup configuration, such as a
	// callable whose return values cannot be aligned with the target list.
	ErrConfiguration = errors.New("invalid lookup configuration")
	// ErrInvariantViolation signals a broken upstream contract: the caller
	// promised every query row is matchable, but one was not.
	ErrInvariantViolation = errors.New("lookup invariant violated")
	// ErrLookupMiss signals a query row with no match in the reference table.
	ErrLookupMiss = errors.New("no matching row in lookup table")
	// ErrUnknownImputeMode signals an unrecognized impute mode.
	ErrUnknownImputeMode = errors.New("unknown impute mode")
)

// LookupMissError wraps ErrLookupMiss with the offending query row.
type LookupMissError struct {
	RowIndex int
	Row      map[string]string
}

func (e *LookupMissError) Error() string {
	pairs := make([]string, 0, len(e.Row))
	for k, v := range e.Row {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("%s: row %d {%s}", ErrLookupMiss.Error(), e.RowIndex, strings.Join(pairs, ", "))
}

func (e *LookupMissError) Unwrap() error { return ErrLookupMiss }

// NewLookupMiss creates a lookup miss error for the given query row.
func NewLookupMiss(rowIndex int, row map[string]string) error {
	return &LookupMissError{RowIndex: rowIndex, Row: row}
}

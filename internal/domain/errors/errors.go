// Package errors defines the error taxonomy of the table store.
//
// Every error kind is a struct carrying the context it was raised with, and
// matches its package sentinel through errors.Is, so callers can branch on
// the kind without type assertions.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

var (
	ErrTableNotFound       = stderrors.New("table not found")
	ErrColumnCountMismatch = stderrors.New("column count mismatch")
	ErrIndexOutOfRange     = stderrors.New("index out of range")
	ErrIO                  = stderrors.New("i/o error")
	ErrArityMismatch       = stderrors.New("column names and types differ in length")
	ErrDuplicateTable      = stderrors.New("duplicate table")
	ErrSchemaLocked        = stderrors.New("schema locked")
)

// TableNotFoundError is returned when no table has the referenced name
type TableNotFoundError struct {
	TableName string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table not found: %s", e.TableName)
}

func (e *TableNotFoundError) Is(target error) bool { return target == ErrTableNotFound }

// ColumnCountMismatchError is returned when a row's arity disagrees with the table's columns
type ColumnCountMismatchError struct {
	TableName string
	Expected  int // column count of the table
	Got       int // number of values supplied
}

func (e *ColumnCountMismatchError) Error() string {
	return fmt.Sprintf("invalid number of values for table %s: expected %d, got %d",
		e.TableName, e.Expected, e.Got)
}

func (e *ColumnCountMismatchError) Is(target error) bool { return target == ErrColumnCountMismatch }

// Axis names which index of a cell reference was out of range
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// IndexOutOfRangeError is returned when a row or column index is outside [0, Len)
type IndexOutOfRangeError struct {
	TableName string
	Axis      Axis
	Index     int
	Len       int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("invalid %s index %d in table %s (table has no %ss)",
			e.Axis, e.Index, e.TableName, e.Axis)
	}
	return fmt.Sprintf("invalid %s index %d in table %s (valid range 0..%d)",
		e.Axis, e.Index, e.TableName, e.Len-1)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// IOError wraps a failure to open, read, write or close a dump location
type IOError struct {
	Op   string // "open", "read", "write", "close", "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("failed to %s %s", e.Op, e.Path))
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *IOError) Is(target error) bool { return target == ErrIO }

func (e *IOError) Unwrap() error { return e.Err }

// ArityMismatchError is returned by CreateTable when names and types have different lengths
type ArityMismatchError struct {
	TableName string
	Names     int
	Types     int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("cannot create table %s: %d column names but %d column types",
		e.TableName, e.Names, e.Types)
}

func (e *ArityMismatchError) Is(target error) bool { return target == ErrArityMismatch }

// DuplicateTableError is returned by CreateTable when the name is already taken
type DuplicateTableError struct {
	TableName string
}

func (e *DuplicateTableError) Error() string {
	return fmt.Sprintf("table already exists: %s", e.TableName)
}

func (e *DuplicateTableError) Is(target error) bool { return target == ErrDuplicateTable }

// SchemaLockedError is returned when a column is added to a table that already holds rows
type SchemaLockedError struct {
	TableName string
	Column    string
}

func (e *SchemaLockedError) Error() string {
	return fmt.Sprintf("cannot add column %q to table %s: table already has rows", e.Column, e.TableName)
}

func (e *SchemaLockedError) Is(target error) bool { return target == ErrSchemaLocked }

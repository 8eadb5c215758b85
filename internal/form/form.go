// Package form holds the state of a resume form session.
// Every type has value semantics: transitions return a new value and never
// write to storage shared with the receiver.
package form

import "errors"

var (
	// ErrIndexOutOfRange is returned when a record position does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidFieldName is returned when a field is not declared on a record.
	ErrInvalidFieldName = errors.New("invalid field name")
)

// Field describes one named string field of a record.
type Field struct {
	Name  string
	Label string
}

// Record is a group of named string fields. The zero value of a record is
// its empty form.
type Record[T any] interface {
	Fields() []Field
	Get(name string) (string, bool)
	Set(name, value string) (T, bool)
}

// FieldNames returns the declared field names of a record type in order.
func FieldNames[T Record[T]]() []string {
	var zero T
	fields := zero.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

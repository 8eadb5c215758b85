package form

import "fmt"

// List is an ordered, append-only sequence of records addressed by position.
// Lists built with NewList are never empty.
type List[T Record[T]] struct {
	items []T
}

// NewList returns a list holding a single empty record.
func NewList[T Record[T]]() List[T] {
	var zero T
	return List[T]{items: []T{zero}}
}

// Len returns the number of records.
func (l List[T]) Len() int {
	return len(l.items)
}

// At returns the record at index.
func (l List[T]) At(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("record %d of %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	return l.items[index], nil
}

// Items returns a copy of the records in order.
func (l List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Update returns a new list where only field name of the record at index
// holds value. The receiver is left untouched.
func (l List[T]) Update(index int, name, value string) (List[T], error) {
	rec, err := l.At(index)
	if err != nil {
		return l, err
	}

	next, ok := rec.Set(name, value)
	if !ok {
		return l, fmt.Errorf("record %d field %q: %w", index, name, ErrInvalidFieldName)
	}

	items := l.Items()
	items[index] = next
	return List[T]{items: items}, nil
}

// Append returns a new list with one empty record at the end, and its length.
func (l List[T]) Append() (List[T], int) {
	var zero T
	items := make([]T, len(l.items), len(l.items)+1)
	copy(items, l.items)
	items = append(items, zero)
	return List[T]{items: items}, len(items)
}

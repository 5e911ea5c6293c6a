package collection

import "fmt"

// Sequence is a positional container with explicit index validation.
type Sequence[T any] interface {
	fmt.Stringer
	Count() int
	Get(index int) (T, error)
	Set(index int, value T) error
	Add(value T)
	AddRange(values ...T)
	InsertAt(index int, value T) error
	RemoveAt(index int) (T, error)
	Exchange(i, j int) error
	Clear()
	Items() []T
}

var _ Sequence[int] = (*Collection[int])(nil)

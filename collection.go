package collection

import (
	"fmt"
	"iter"
	"strings"

	"github.com/denismitr/collection/utils"
)

type (
	// Collection is a growable array. Slots [0, count) of elements hold live
	// values, len(elements) is the capacity.
	Collection[T any] struct {
		elements []T
		count    int
		onGrow   GrowFn
	}

	GrowFn func(oldCapacity, newCapacity int)
)

func New[T any](values ...T) *Collection[T] {
	return FromSlice(values)
}

// FromSlice copies values into a new collection.
func FromSlice[T any](values []T) *Collection[T] {
	c := &Collection[T]{
		elements: make([]T, utils.GrowCapacity(utils.DefaultCapacity, len(values))),
	}

	c.count = copy(c.elements, values)
	return c
}

func (c *Collection[T]) Count() int {
	return c.count
}

func (c *Collection[T]) Capacity() int {
	return len(c.elements)
}

// OnGrow registers fn to be called after every reallocation.
func (c *Collection[T]) OnGrow(fn GrowFn) {
	c.onGrow = fn
}

func (c *Collection[T]) Get(index int) (T, error) {
	if outOfRange(index, c.count) {
		return utils.GetZero[T](), indexError("get", index, c.count)
	}

	return c.elements[index], nil
}

func (c *Collection[T]) Set(index int, value T) error {
	if outOfRange(index, c.count) {
		return indexError("set", index, c.count)
	}

	c.elements[index] = value
	return nil
}

func (c *Collection[T]) Add(value T) {
	c.ensureCapacity(c.count + 1)
	c.elements[c.count] = value
	c.count++
}

func (c *Collection[T]) AddRange(values ...T) {
	if len(values) == 0 {
		return
	}

	c.ensureCapacity(c.count + len(values))
	c.count += copy(c.elements[c.count:], values)
}

// InsertAt accepts index == Count, which appends.
func (c *Collection[T]) InsertAt(index int, value T) error {
	if outOfRange(index, c.count+1) {
		return indexError("insert", index, c.count+1)
	}

	c.ensureCapacity(c.count + 1)
	copy(c.elements[index+1:c.count+1], c.elements[index:c.count])
	c.elements[index] = value
	c.count++
	return nil
}

func (c *Collection[T]) RemoveAt(index int) (T, error) {
	if outOfRange(index, c.count) {
		return utils.GetZero[T](), indexError("remove", index, c.count)
	}

	removed := c.elements[index]
	copy(c.elements[index:c.count-1], c.elements[index+1:c.count])
	c.count--
	c.elements[c.count] = utils.GetZero[T]()

	return removed, nil
}

func (c *Collection[T]) Exchange(i, j int) error {
	if outOfRange(i, c.count) {
		return indexError("exchange", i, c.count)
	}
	if outOfRange(j, c.count) {
		return indexError("exchange", j, c.count)
	}

	c.elements[i], c.elements[j] = c.elements[j], c.elements[i]
	return nil
}

// Clear drops all elements but keeps the grown capacity.
func (c *Collection[T]) Clear() {
	clear(c.elements[:c.count])
	c.count = 0
}

func (c *Collection[T]) Items() []T {
	items := make([]T, c.count)
	copy(items, c.elements[:c.count])
	return items
}

// All yields live elements with their positions.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.count; i++ {
			if !yield(i, c.elements[i]) {
				return
			}
		}
	}
}

// String renders elements as "[e0, e1]". Nested collections render through
// their own String method.
func (c *Collection[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < c.count; i++ {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c.elements[i])
	}
	b.WriteByte(']')
	return b.String()
}

// ensureCapacity reallocates when required exceeds the current buffer.
// Existing elements are copied forward into the new buffer.
func (c *Collection[T]) ensureCapacity(required int) {
	oldCapacity := len(c.elements)
	if required <= oldCapacity {
		return
	}

	grown := make([]T, utils.GrowCapacity(oldCapacity, required))
	copy(grown, c.elements[:c.count])
	c.elements = grown

	if c.onGrow != nil {
		c.onGrow(oldCapacity, len(grown))
	}
}

package collection

import "golang.org/x/exp/slices"

// IndexOf returns the position of the first element equal to v, or -1.
func IndexOf[T comparable](c *Collection[T], v T) int {
	return slices.Index(c.elements[:c.count], v)
}

func Contains[T comparable](c *Collection[T], v T) bool {
	return slices.Contains(c.elements[:c.count], v)
}

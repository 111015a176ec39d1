// Package utils implements various helper functions and structures.
package utils

// Alias1D returns true if x and y share the same base array.
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

package testing

import (
	"reflect"
	"testing"

	"github.com/mgnsk/list"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// Chain links nodes holding values by direct field assignment and returns them.
// The first node is the head of the chain.
func Chain[V any](values ...V) []list.Node[V] {
	nodes := make([]list.Node[V], len(values))
	for i, v := range values {
		nodes[i].Value = v
		if i > 0 {
			nodes[i-1].Next = &nodes[i]
		}
	}
	return nodes
}

// ChainsEqual reports whether two chains have pairwise equal values and the same length.
func ChainsEqual[V any](a, b *list.Node[V], equal func(a, b V) bool) bool {
	for a != nil && b != nil {
		if !equal(a.Value, b.Value) {
			return false
		}
		a = a.Next
		b = b.Next
	}
	return a == nil && b == nil
}

// StringsEqual compares string references. Two nil references are equal,
// otherwise both must be non-nil with equal contents.
func StringsEqual(a, b *string) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

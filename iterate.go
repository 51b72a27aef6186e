package list

import "iter"

// Visitor is called by Iterate for each node with the caller's cookie.
// Returning false stops the iteration.
type Visitor[V, C any] func(node *Node[V], cookie C) bool

// Iterate calls visit on each node of the list, in forward order, until every node
// is visited or visit returns false.
// visit must not change the list.
func Iterate[V, C any](head *Node[V], visit Visitor[V, C], cookie C) {
	for e := head; e != nil; e = e.Next {
		if !visit(e, cookie) {
			return
		}
	}
}

// Values returns an iterator over the values of the list.
func Values[V any](head *Node[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := head; e != nil; e = e.Next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// All returns an iterator over the indices and values of the list.
func All[V any](head *Node[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for e := head; e != nil; e = e.Next {
			if !yield(i, e.Value) {
				return
			}
			i++
		}
	}
}

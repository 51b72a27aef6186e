/*
Package list implements a generic singly linked list.

A list is represented by a pointer to its first node. The nil pointer is the empty list.
Operations that may change the first node take the address of the head pointer:

	var head *list.Node[string]

	list.Append(&head, "one")
	list.Prepend(&head, "zero")

	v := list.Get(head, 1) // "one"

	list.Destroy(&head)

A list is not safe for concurrent use.
*/
package list

import "github.com/pkg/errors"

// Node is a list node.
type Node[V any] struct {
	Value V
	Next  *Node[V]
}

// Append inserts a value after the last node of the list.
func Append[V any](head **Node[V], value V) error {
	return appendNode[V](head, value, heap[V]{})
}

// Prepend inserts a value before the first node of the list.
func Prepend[V any](head **Node[V], value V) error {
	return prependNode[V](head, value, heap[V]{})
}

// InsertAfter inserts a value immediately after the node at index idx.
// Inserting after the last node is allowed by passing Len(*head)-1.
func InsertAfter[V any](head **Node[V], idx int, value V) error {
	return insertAfter[V](head, idx, value, heap[V]{})
}

// Delete removes the node at index idx.
func Delete[V any](head **Node[V], idx int) error {
	return deleteNode[V](head, idx, heap[V]{})
}

// Destroy removes every node of the list and sets the head to nil.
// Destroying an empty list is a no-op.
func Destroy[V any](head **Node[V]) error {
	return destroy[V](head, heap[V]{})
}

// Set replaces the value of the node at index idx counted from node.
func Set[V any](node *Node[V], idx int, value V) error {
	n := nodeAt(node, idx)
	if n == nil {
		return errors.Wrapf(ErrIndexOutOfRange, "set %d", idx)
	}

	n.Value = value

	return nil
}

// Get returns the value at index idx or the zero value if idx is out of range.
func Get[V any](head *Node[V], idx int) V {
	v, _ := Lookup(head, idx)
	return v
}

// Lookup returns the value at index idx and whether the index exists.
func Lookup[V any](head *Node[V], idx int) (value V, ok bool) {
	if n := nodeAt(head, idx); n != nil {
		return n.Value, true
	}

	var zero V
	return zero, false
}

// Len returns the number of nodes in the list.
func Len[V any](head *Node[V]) int {
	n := 0
	for e := head; e != nil; e = e.Next {
		n++
	}
	return n
}

func nodeAt[V any](head *Node[V], idx int) *Node[V] {
	if idx < 0 {
		return nil
	}

	e := head
	for i := 0; e != nil && i < idx; i++ {
		e = e.Next
	}

	return e
}

func appendNode[V any](head **Node[V], value V, a allocator[V]) error {
	if head == nil {
		return errors.Wrap(ErrNilHead, "append")
	}

	n, err := a.alloc(value)
	if err != nil {
		return errors.Wrap(err, "append")
	}

	slot := head
	for *slot != nil {
		slot = &(*slot).Next
	}
	*slot = n

	return nil
}

func prependNode[V any](head **Node[V], value V, a allocator[V]) error {
	if head == nil {
		return errors.Wrap(ErrNilHead, "prepend")
	}

	n, err := a.alloc(value)
	if err != nil {
		return errors.Wrap(err, "prepend")
	}

	n.Next = *head
	*head = n

	return nil
}

func insertAfter[V any](head **Node[V], idx int, value V, a allocator[V]) error {
	if head == nil {
		return errors.Wrapf(ErrNilHead, "insert after %d", idx)
	}

	mark := nodeAt(*head, idx)
	if mark == nil {
		return errors.Wrapf(ErrIndexOutOfRange, "insert after %d", idx)
	}

	n, err := a.alloc(value)
	if err != nil {
		return errors.Wrapf(err, "insert after %d", idx)
	}

	n.Next = mark.Next
	mark.Next = n

	return nil
}

func deleteNode[V any](head **Node[V], idx int, a allocator[V]) error {
	if head == nil {
		return errors.Wrapf(ErrNilHead, "delete %d", idx)
	}

	if idx < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "delete %d", idx)
	}

	// slot is the link that owns the node at position i.
	slot := head
	for i := 0; *slot != nil && i < idx; i++ {
		slot = &(*slot).Next
	}

	n := *slot
	if n == nil {
		return errors.Wrapf(ErrIndexOutOfRange, "delete %d", idx)
	}

	*slot = n.Next
	a.free(n)

	return nil
}

func destroy[V any](head **Node[V], a allocator[V]) error {
	if head == nil {
		return errors.Wrap(ErrNilHead, "destroy")
	}

	n := *head
	*head = nil

	for n != nil {
		next := n.Next
		a.free(n)
		n = next
	}

	return nil
}

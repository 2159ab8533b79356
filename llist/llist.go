// Package llist provides a singly linked list of integers with
// insert-at-head semantics, matching the mutation-and-traversal shape of
// the graph's adjacency lists.
//
// Errors:
//
//	ErrEmpty - deletion from an empty list.
package llist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty indicates a deletion from an empty list.
var ErrEmpty = errors.New("llist: list is empty")

// node is a single list element.
type node struct {
	data int
	next *node
}

// List is a singly linked list of integers. The zero value is an empty
// list, ready to use.
type List struct {
	head *node
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// InsertFront prepends v; it becomes the new head.
//
// Complexity: O(1)
func (l *List) InsertFront(v int) {
	l.head = &node{data: v, next: l.head}
}

// DeleteFront removes and returns the head value.
// Returns ErrEmpty if the list holds no values.
//
// Complexity: O(1)
func (l *List) DeleteFront() (int, error) {
	if l.head == nil {
		return 0, ErrEmpty
	}

	v := l.head.data
	l.head = l.head.next

	return v, nil
}

// DeleteLast removes and returns the final value.
// Returns ErrEmpty if the list holds no values.
//
// Complexity: O(n)
func (l *List) DeleteLast() (int, error) {
	if l.head == nil {
		return 0, ErrEmpty
	}
	if l.head.next == nil {
		v := l.head.data
		l.head = nil

		return v, nil
	}

	prev := l.head
	cur := l.head.next
	for cur.next != nil {
		prev = cur
		cur = cur.next
	}
	prev.next = nil

	return cur.data, nil
}

// Search reports whether key occurs in the list.
//
// Complexity: O(n)
func (l *List) Search(key int) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.data == key {
			return true
		}
	}

	return false
}

// Count returns the number of values held.
//
// Complexity: O(n)
func (l *List) Count() int {
	c := 0
	for cur := l.head; cur != nil; cur = cur.next {
		c++
	}

	return c
}

// Values returns the list contents head-first.
func (l *List) Values() []int {
	var out []int
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}

	return out
}

// ValuesReverse returns the list contents tail-first.
func (l *List) ValuesReverse() []int {
	return reverse(l.head, nil)
}

// reverse appends the chain starting at n to acc in tail-first order.
func reverse(n *node, acc []int) []int {
	if n == nil {
		return acc
	}

	return append(reverse(n.next, acc), n.data)
}

// String renders the values head-first, space-separated.
func (l *List) String() string {
	var parts []string
	for cur := l.head; cur != nil; cur = cur.next {
		parts = append(parts, fmt.Sprintf("%d", cur.data))
	}

	return strings.Join(parts, " ")
}

// Package bst provides an unbalanced binary search tree of integers.
// Duplicate insertions are ignored; deletion of a node with two children
// substitutes the in-order successor.
//
// Errors:
//
//	ErrNotFound - Delete of a key absent from the tree (a benign outcome,
//	not a failure of the tree itself).
package bst

import "errors"

// ErrNotFound indicates Delete was called with a key not in the tree.
var ErrNotFound = errors.New("bst: node not found")

// node is a single tree element.
type node struct {
	left  *node
	data  int
	right *node
}

// Tree is a binary search tree of integers. The zero value is an empty
// tree, ready to use.
type Tree struct {
	root *node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Insert adds v to the tree; inserting an existing value is a no-op.
//
// Complexity: O(h) where h is the tree height.
func (t *Tree) Insert(v int) {
	t.root = insert(t.root, v)
}

func insert(n *node, v int) *node {
	if n == nil {
		return &node{data: v}
	}
	if v < n.data {
		n.left = insert(n.left, v)
	} else if v > n.data {
		n.right = insert(n.right, v)
	}

	return n
}

// Search reports whether key occurs in the tree.
//
// Complexity: O(h)
func (t *Tree) Search(key int) bool {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.data:
			cur = cur.left
		case key > cur.data:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// Delete removes key from the tree. A node with two children is replaced
// by its in-order successor. Returns ErrNotFound if key is absent; the
// tree is unchanged in that case.
//
// Complexity: O(h)
func (t *Tree) Delete(key int) error {
	root, found := remove(t.root, key)
	if !found {
		return ErrNotFound
	}
	t.root = root

	return nil
}

func remove(n *node, key int) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var found bool
	switch {
	case key < n.data:
		n.left, found = remove(n.left, key)
	case key > n.data:
		n.right, found = remove(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// Two children: lift the in-order successor's value, then delete
		// it from the right subtree.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.data = succ.data
		n.right, _ = remove(n.right, succ.data)

		return n, true
	}

	return n, found
}

// Count returns the number of nodes in the tree.
//
// Complexity: O(n)
func (t *Tree) Count() int {
	return count(t.root)
}

func count(n *node) int {
	if n == nil {
		return 0
	}

	return count(n.left) + 1 + count(n.right)
}

// CountOneChild returns the number of nodes with exactly one child.
func (t *Tree) CountOneChild() int {
	return countOneChild(t.root)
}

func countOneChild(n *node) int {
	if n == nil {
		return 0
	}
	c := countOneChild(n.left) + countOneChild(n.right)
	if (n.left == nil) != (n.right == nil) {
		c++
	}

	return c
}

// CountTwoChildren returns the number of nodes with two children; each
// such node is the common parent of its two subtrees.
func (t *Tree) CountTwoChildren() int {
	return countTwoChildren(t.root)
}

func countTwoChildren(n *node) int {
	if n == nil {
		return 0
	}
	c := countTwoChildren(n.left) + countTwoChildren(n.right)
	if n.left != nil && n.right != nil {
		c++
	}

	return c
}

// InOrder returns the values in ascending order.
func (t *Tree) InOrder() []int {
	return inOrder(t.root, nil)
}

func inOrder(n *node, acc []int) []int {
	if n == nil {
		return acc
	}
	acc = inOrder(n.left, acc)
	acc = append(acc, n.data)

	return inOrder(n.right, acc)
}

// PreOrder returns the values in root-left-right order.
func (t *Tree) PreOrder() []int {
	return preOrder(t.root, nil)
}

func preOrder(n *node, acc []int) []int {
	if n == nil {
		return acc
	}
	acc = append(acc, n.data)
	acc = preOrder(n.left, acc)

	return preOrder(n.right, acc)
}

// PostOrder returns the values in left-right-root order.
func (t *Tree) PostOrder() []int {
	return postOrder(t.root, nil)
}

func postOrder(n *node, acc []int) []int {
	if n == nil {
		return acc
	}
	acc = postOrder(n.left, acc)
	acc = postOrder(n.right, acc)

	return append(acc, n.data)
}

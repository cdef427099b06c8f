// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a generic rooted tree
// with ordered children.
//
// A tree is built once
// (usually from a nested list)
// and then only read.
// New trees are derived with Map.
package tree

import "iter"

// A Tree is a node of a rooted tree.
// Values are not required to be unique.
type Tree[T any] struct {
	Value    T
	Children []*Tree[T]
}

// New returns a new tree node
// with the given value and children.
func New[T any](v T, children ...*Tree[T]) *Tree[T] {
	return &Tree[T]{
		Value:    v,
		Children: children,
	}
}

// All returns a depth-first,
// pre-order sequence of the nodes of the tree,
// starting at the root.
func (t *Tree[T]) All() iter.Seq[*Tree[T]] {
	return func(yield func(*Tree[T]) bool) {
		t.walk(yield)
	}
}

func (t *Tree[T]) walk(yield func(*Tree[T]) bool) bool {
	if t == nil {
		return true
	}
	if !yield(t) {
		return false
	}
	for _, c := range t.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Values returns the values of the tree nodes
// in depth-first pre-order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range t.All() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Find returns the first node,
// in depth-first pre-order,
// whose value satisfies match.
// It returns nil if no node matches.
func (t *Tree[T]) Find(match func(T) bool) *Tree[T] {
	for n := range t.All() {
		if match(n.Value) {
			return n
		}
	}
	return nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	var n int
	for range t.All() {
		n++
	}
	return n
}

// Depth returns the number of nodes
// in the longest path from the root to a leaf.
func (t *Tree[T]) Depth() int {
	if t == nil {
		return 0
	}
	var max int
	for _, c := range t.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// IsLeaf returns true if the node has no children.
func (t *Tree[T]) IsLeaf() bool {
	return len(t.Children) == 0
}

// Lookup returns the first node,
// in depth-first pre-order,
// with the given value.
// It returns nil if the value is not in the tree.
func Lookup[T comparable](t *Tree[T], v T) *Tree[T] {
	return t.Find(func(x T) bool { return x == v })
}

// Contains returns true if a node of the tree
// has the given value.
func Contains[T comparable](t *Tree[T], v T) bool {
	return Lookup(t, v) != nil
}

// Map returns a new tree with the same shape as t,
// in which each value is replaced by f(value).
func Map[T, U any](t *Tree[T], f func(T) U) *Tree[U] {
	if t == nil {
		return nil
	}
	n := &Tree[U]{Value: f(t.Value)}
	if len(t.Children) > 0 {
		n.Children = make([]*Tree[U], len(t.Children))
		for i, c := range t.Children {
			n.Children[i] = Map(c, f)
		}
	}
	return n
}

// Equal returns true if both trees have the same shape
// and the same values at each node.
func Equal[T comparable](a, b *Tree[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal
// but compares node values using eq.
func EqualFunc[T, U any](a *Tree[T], b *Tree[U], eq func(T, U) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !eq(a.Value, b.Value) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !EqualFunc(a.Children[i], b.Children[i], eq) {
			return false
		}
	}
	return true
}

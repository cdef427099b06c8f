// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// NestedList returns the tree as a nested list
// in the form:
//
//	[value, child, child, ...]
//
// in which each child is itself a nested list.
func (t *Tree[T]) NestedList() []any {
	l := make([]any, 0, len(t.Children)+1)
	l = append(l, t.Value)
	for _, c := range t.Children {
		l = append(l, c.NestedList())
	}
	return l
}

// FromNestedList returns a tree from a nested list
// as produced by NestedList.
func FromNestedList[T any](l []any) (*Tree[T], error) {
	if len(l) == 0 {
		return nil, errors.New("empty nested list")
	}
	v, ok := l[0].(T)
	if !ok {
		return nil, fmt.Errorf("invalid node value %v (%T)", l[0], l[0])
	}
	t := &Tree[T]{Value: v}
	for i, e := range l[1:] {
		cl, ok := e.([]any)
		if !ok {
			return nil, fmt.Errorf("child %d of %v: expecting a list, got %T", i, v, e)
		}
		c, err := FromNestedList[T](cl)
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, c)
	}
	return t, nil
}

// MarshalJSON encodes the tree as a JSON nested list.
func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.NestedList())
}

// UnmarshalJSON decodes a JSON nested list
// into the tree.
func (t *Tree[T]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("empty nested list")
	}

	var v T
	if err := json.Unmarshal(raw[0], &v); err != nil {
		return fmt.Errorf("invalid node value %s: %v", raw[0], err)
	}
	t.Value = v
	t.Children = nil
	for _, r := range raw[1:] {
		c := &Tree[T]{}
		if err := c.UnmarshalJSON(r); err != nil {
			return err
		}
		t.Children = append(t.Children, c)
	}
	return nil
}

// ReadJSON reads a tree encoded as a JSON nested list.
func ReadJSON[T any](r io.Reader) (*Tree[T], error) {
	t := &Tree[T]{}
	if err := json.NewDecoder(r).Decode(t); err != nil {
		return nil, fmt.Errorf("while decoding tree: %v", err)
	}
	return t, nil
}

// WriteJSON writes a tree as a JSON nested list.
func (t *Tree[T]) WriteJSON(w io.Writer) error {
	b, err := t.MarshalJSON()
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

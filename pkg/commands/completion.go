// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

// tokenSeparator terminates every name in the prefix tree, so a fully typed
// name only matches once the separator has been typed as well.
const tokenSeparator = " "

// readyPlaceholder is offered when the scan ends exactly on a name: the token
// is complete and the next one can start.
const readyPlaceholder = " "

// =============================================================================
// PREFIX TREE
// =============================================================================

// PrefixNode mirrors a Command for completion. Name carries a trailing space.
type PrefixNode struct {
	Name     string
	Children []*PrefixNode
}

// NewPrefixTree snapshots the names of the tree under root. Commands added
// to root afterwards are not reflected.
func NewPrefixTree(root *Command) *PrefixNode {
	node := &PrefixNode{
		Name:     root.name + tokenSeparator,
		Children: make([]*PrefixNode, 0, len(root.children)),
	}
	for _, sub := range root.children {
		node.Children = append(node.Children, NewPrefixTree(sub))
	}
	return node
}

// =============================================================================
// COMPLETER
// =============================================================================

// Completer computes tab completions over a snapshot of a command tree.
// It keeps no state between calls.
type Completer struct {
	tree   *PrefixNode
	logger *log.Logger
}

// CompleterOption configures a Completer.
type CompleterOption func(*Completer)

// WithLogger makes the completer trace each level it visits at debug level.
func WithLogger(logger *log.Logger) CompleterOption {
	return func(c *Completer) {
		c.logger = logger
	}
}

// NewCompleter builds a completer for root.
func NewCompleter(root *Command, opts ...CompleterOption) *Completer {
	c := &Completer{tree: NewPrefixTree(root)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tree returns the prefix tree the completer walks.
func (c *Completer) Tree() *PrefixNode {
	return c.tree
}

// Complete returns the candidates for line with the cursor at byte offset
// pos. Every candidate is text to insert at the cursor, so the returned
// offset is pos itself (clamped to the line).
//
// A single candidate completes the line; several mean the input is ambiguous
// and the caller should list them.
func (c *Completer) Complete(line string, pos int) (int, []string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(line) {
		pos = len(line)
	}
	return pos, c.complete(c.tree, line[:pos])
}

// complete handles one level of the tree. It descends only when exactly one
// child matched and that child's name was typed in full.
func (c *Completer) complete(node *PrefixNode, line string) []string {
	scan := strings.TrimLeftFunc(line, unicode.IsSpace)

	var (
		fragments []string
		next      *PrefixNode
		consumed  int
		descend   bool
	)

	for _, child := range node.Children {
		switch {
		case len(scan) >= len(child.Name) && strings.HasPrefix(scan, child.Name):
			if len(scan) == len(child.Name) {
				fragments = append(fragments, readyPlaceholder)
			} else {
				fragments = append(fragments, child.Name)
			}
			next = child
			consumed = len(child.Name)
			descend = true
		case strings.HasPrefix(child.Name, scan):
			fragments = append(fragments, child.Name[len(scan):])
		}
	}

	if c.logger != nil {
		c.logger.Debug("completing", "node", node.Name, "scan", scan, "candidates", fragments)
	}

	if len(fragments) != 1 || !descend {
		return fragments
	}
	return c.complete(next, scan[consumed:])
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"
	"strings"
)

// Walk visits root and every descendant in pre-order. path is the
// slash-joined chain of names below root, "" for root itself.
func Walk(root *Command, fn func(cmd *Command, path string)) {
	walk(root, "", fn)
}

func walk(cmd *Command, path string, fn func(*Command, string)) {
	fn(cmd, path)
	for _, sub := range cmd.children {
		walk(sub, path+"/"+sub.name, fn)
	}
}

// PrintTree writes the tree under root, one command per line, each line
// starting with prefix. An unnamed root is not printed itself.
func PrintTree(w io.Writer, root *Command, prefix string) {
	var b strings.Builder
	if root.name != "" {
		writeTreeLine(&b, prefix, 0, root.name)
	}
	for _, sub := range root.children {
		printSubtree(&b, sub, prefix, 1)
	}
	fmt.Fprintln(w, b.String())
}

func printSubtree(b *strings.Builder, cmd *Command, prefix string, depth int) {
	writeTreeLine(b, prefix, depth, cmd.name)
	for _, sub := range cmd.children {
		printSubtree(b, sub, prefix, depth+1)
	}
}

func writeTreeLine(b *strings.Builder, prefix string, depth int, name string) {
	b.WriteString(prefix)
	if depth > 0 {
		b.WriteString("├")
		b.WriteString(strings.Repeat("─", depth*4-2))
	}
	b.WriteString(name)
	b.WriteString("\n")
}

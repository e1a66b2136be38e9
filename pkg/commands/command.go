// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"

	"github.com/jeranaias/xcli/internal/util"
)

// helpColumnWidth is the display width of the name column in subcommand lists.
const helpColumnWidth = 16

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is a node in the command tree.
//
// A command with an action is a leaf that runs; one without is a category
// that groups its children and prints help when invoked bare. The tree is
// built before the shell starts and must not change while a line is being
// dispatched.
type Command struct {
	// name is the token that selects this command (e.g., "log").
	// Only the root of a shell tree has an empty name.
	name string

	// alias is a second token that selects this command (e.g., "l").
	alias string

	// about is a one-line description shown in help.
	about string

	// usage shows argument syntax (e.g., "log [off|error|warn]").
	usage string

	// action runs when the command is the deepest match, nil for categories.
	action Action

	// children are matched in order; the first match wins.
	children []*Command
}

// New creates a command with the given name.
func New(name string) *Command {
	return &Command{name: name}
}

// NewWithAlias creates a command reachable by name or alias.
func NewWithAlias(name, alias string) *Command {
	return &Command{name: name, alias: alias}
}

// =============================================================================
// BUILDER
// =============================================================================

// Alias sets the alternative token for the command.
func (c *Command) Alias(alias string) *Command {
	c.alias = alias
	return c
}

// About sets the one-line description.
func (c *Command) About(about string) *Command {
	c.about = about
	return c
}

// Usage sets the usage string.
func (c *Command) Usage(usage string) *Command {
	c.usage = usage
	return c
}

// Action binds an action to the command.
func (c *Command) Action(action Action) *Command {
	c.action = action
	return c
}

// ActionFunc binds a function as the command's action.
func (c *Command) ActionFunc(fn func(ctx Context, args []string) (ExecCode, error)) *Command {
	c.action = ActionFunc(fn)
	return c
}

// Subcommand appends a child and returns the parent.
func (c *Command) Subcommand(child *Command) *Command {
	c.children = append(c.children, child)
	return c
}

// Subcommands appends children in the order given and returns the parent.
func (c *Command) Subcommands(children ...*Command) *Command {
	c.children = append(c.children, children...)
	return c
}

// Add appends a child to an already built command.
func (c *Command) Add(child *Command) {
	c.children = append(c.children, child)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// AliasName returns the alias, or "" when there is none.
func (c *Command) AliasName() string { return c.alias }

// AboutText returns the description.
func (c *Command) AboutText() string { return c.about }

// UsageText returns the usage string, falling back to the name.
func (c *Command) UsageText() string {
	if c.usage == "" {
		return c.name
	}
	return c.usage
}

// HasAction reports whether the command runs an action.
func (c *Command) HasAction() bool { return c.action != nil }

// Children returns the subcommands in registration order.
// The slice is shared with the command and must not be modified.
func (c *Command) Children() []*Command { return c.children }

// Description returns the name, followed by the alias when one is set.
func (c *Command) Description() string {
	if c.alias == "" {
		return c.name
	}
	return fmt.Sprintf("%s, %s ", c.name, c.alias)
}

// Matches reports whether token selects this command.
func (c *Command) Matches(token string) bool {
	return token == c.name || (c.alias != "" && token == c.alias)
}

// child returns the first child selected by token.
func (c *Command) child(token string) *Command {
	for _, sub := range c.children {
		if sub.Matches(token) {
			return sub
		}
	}
	return nil
}

// =============================================================================
// HELP OUTPUT
// =============================================================================

// WriteUsage writes the usage line.
func (c *Command) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage:       %s\n", c.UsageText())
}

// WriteHelp writes the command's own help block.
func (c *Command) WriteHelp(w io.Writer) {
	fmt.Fprintf(w, "Command:     %s\nUsage:       %s\nDescription: %s\n",
		c.Description(), c.UsageText(), c.about)
}

// WriteSubcommandHelp writes one summary line per child.
func (c *Command) WriteSubcommandHelp(w io.Writer) {
	for _, sub := range c.children {
		fmt.Fprintf(w, "%s: %s\n", util.PadRight(sub.Description(), helpColumnWidth), sub.UsageText())
	}
}

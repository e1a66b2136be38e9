// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "fmt"

// =============================================================================
// ACTION ERRORS
// =============================================================================
// Every kind is a user-input or setup error. None of them is retried and none
// of them stops the shell; Run prints them and hands them back.

// BadSyntaxError reports a command invoked with a shape it does not accept.
type BadSyntaxError struct{}

func (e *BadSyntaxError) Error() string {
	return "Bad syntax"
}

// MissingHandlerError reports a user-data lookup for a name nobody registered.
type MissingHandlerError struct {
	Name string
}

func (e *MissingHandlerError) Error() string {
	return fmt.Sprintf("Missing handler: %s not found", e.Name)
}

// MissingArgumentError reports an action that needed at least one token.
type MissingArgumentError struct{}

func (e *MissingArgumentError) Error() string {
	return "Missing required argument"
}

// BadArgumentError reports a token that failed validation.
type BadArgumentError struct {
	Detail string
}

func (e *BadArgumentError) Error() string {
	return fmt.Sprintf("Bad argument: %s", e.Detail)
}

// MismatchArgumentError reports a fixed-arity action given the wrong number
// of tokens.
type MismatchArgumentError struct {
	Expected int
	Actual   int
}

func (e *MismatchArgumentError) Error() string {
	return fmt.Sprintf("Mismatched argument(s): wanted: %d, actual: %d", e.Expected, e.Actual)
}

// OtherError carries a message that is shown as-is, without the usage line
// the other kinds get.
type OtherError struct {
	Message string
}

func (e *OtherError) Error() string {
	return e.Message
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// BadSyntax returns a *BadSyntaxError.
func BadSyntax() error {
	return &BadSyntaxError{}
}

// MissingHandler returns a *MissingHandlerError for name.
func MissingHandler(name string) error {
	return &MissingHandlerError{Name: name}
}

// MissingArgument returns a *MissingArgumentError.
func MissingArgument() error {
	return &MissingArgumentError{}
}

// BadArgument returns a *BadArgumentError with the given detail.
func BadArgument(detail string) error {
	return &BadArgumentError{Detail: detail}
}

// MismatchArgument returns a *MismatchArgumentError.
func MismatchArgument(expected, actual int) error {
	return &MismatchArgumentError{Expected: expected, Actual: actual}
}

// Other returns an *OtherError with msg.
func Other(msg string) error {
	return &OtherError{Message: msg}
}

// Otherf formats according to a format specifier and returns an *OtherError.
func Otherf(format string, args ...any) error {
	return &OtherError{Message: fmt.Sprintf(format, args...)}
}

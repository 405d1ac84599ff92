package parser

import (
	"errors"
	"fmt"

	"github.com/apparata/appconsole/internal/catalog"
)

// ErrUnexpectedError is the generic sentinel for an internal parser fault
// that does not fit any of the specific typed errors below.
var ErrUnexpectedError = errors.New("parser: unexpected error")

// FailedToTokenizeError reports a command line that could not be split
// into tokens: an unterminated quote, or unbalanced escapes.
type FailedToTokenizeError struct {
	Line string
}

func (e *FailedToTokenizeError) Error() string {
	return fmt.Sprintf("parser: failed to tokenize command line: %q", e.Line)
}

// NoSuchCommandError reports a root-level command name with no match.
type NoSuchCommandError struct {
	Name string
}

func (e *NoSuchCommandError) Error() string {
	return fmt.Sprintf("parser: no such command: %q", e.Name)
}

// NoSuchSubcommandError reports a subcommand name with no match under
// the current command.
type NoSuchSubcommandError struct {
	Name string
}

func (e *NoSuchSubcommandError) Error() string {
	return fmt.Sprintf("parser: no such subcommand: %q", e.Name)
}

// InvalidFlagOrOptionError reports a `-`/`--` token that resolved to
// neither a flag nor an option on the current command.
type InvalidFlagOrOptionError struct {
	Token string
}

func (e *InvalidFlagOrOptionError) Error() string {
	return fmt.Sprintf("parser: invalid flag or option: %q", e.Token)
}

// UnexpectedArgumentError reports a positional token with no remaining
// input slot to bind it to.
type UnexpectedArgumentError struct {
	Token string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("parser: unexpected argument: %q", e.Token)
}

// MissingOptionValueError reports an option token with no following
// value token (or a following token that looks like another flag).
type MissingOptionValueError struct {
	Option catalog.Option
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("parser: missing value for option %q", e.Option.Name)
}

// MissingInputArgumentError reports a required positional input left
// unbound at end of parse.
type MissingInputArgumentError struct {
	Input catalog.Input
}

func (e *MissingInputArgumentError) Error() string {
	return fmt.Sprintf("parser: missing input argument %q", e.Input.Name)
}

// InvalidOptionValueFormatError reports an option value that failed its
// validationRegex.
type InvalidOptionValueFormatError struct {
	Option catalog.Option
	Value  string
}

func (e *InvalidOptionValueFormatError) Error() string {
	return fmt.Sprintf("parser: invalid value format for option %q: %q does not match %s", e.Option.Name, e.Value, e.Option.ValidationRegex)
}

// InvalidInputValueFormatError reports an input value that failed its
// validationRegex.
type InvalidInputValueFormatError struct {
	Input catalog.Input
	Value string
}

func (e *InvalidInputValueFormatError) Error() string {
	return fmt.Sprintf("parser: invalid value format for input %q: %q does not match %s", e.Input.Name, e.Value, e.Input.ValidationRegex)
}

// ArgumentValueNotConvertibleError reports a value that failed native
// conversion to its argument's declared data type.
type ArgumentValueNotConvertibleError struct {
	ArgumentName string
	Value        string
	DataType     catalog.DataType
}

func (e *ArgumentValueNotConvertibleError) Error() string {
	return fmt.Sprintf("parser: %q: %q is not convertible to %s", e.ArgumentName, e.Value, e.DataType)
}

// UsageRequestedError is a successful-in-intent parser outcome: either
// the user asked for help explicitly (-h/--help/help) or it was
// synthesized by the help-resolution step after a successful parse.
// Root is the top-level command the parse began under; Target is the
// command whose usage should be rendered.
type UsageRequestedError struct {
	Root   catalog.Command
	Target catalog.Command
}

func (e *UsageRequestedError) Error() string {
	return fmt.Sprintf("parser: usage requested for %q", e.Target.Name)
}

package parser

import (
	"strings"

	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/invocation"
)

// state is the parser state machine's current node, per spec.md §4.4.2.
// It is a bare tag: the variant payloads (pending option, bound values,
// current command) are kept in parseContext rather than on the state.
type state int

const (
	stateCommand state = iota
	stateParsedSubcommand
	stateParsedFlag
	stateParsedOption
	stateParsedOptionValue
	stateParsedInput
	stateSuccess
	stateFailure
)

// event is the input the transition function consumes at each step.
type event int

const (
	eventScannedSubcommand event = iota
	eventScannedFlag
	eventScannedOption
	eventScannedOptionValue
	eventScannedInput
	eventScannedInvalidFlagOrOption
	eventScannedHelpFlag
	eventScannedUnexpectedArgument
	eventErrorWasThrown
	eventNoMoreArguments
)

// parseContext is the mutable state threaded through a single parse
// pass: the command chain resolved so far, the accumulated argument
// values, and the sets of still-available flags/options/inputs at the
// current command. It is created per parse and discarded on completion.
type parseContext struct {
	root    catalog.Command
	current catalog.Command
	chain   []string

	remainingFlags   []catalog.Flag
	remainingOptions []catalog.Option
	remainingInputs  []catalog.Input
	inputsConsumed   int

	args map[string]invocation.TypedValue

	pendingOption *catalog.Option
	usedHelp      bool
	helpParent    catalog.Command
}

func newParseContext(root catalog.Command) *parseContext {
	c := &parseContext{
		root:             root,
		current:          root,
		args:             map[string]invocation.TypedValue{},
		remainingFlags:   append([]catalog.Flag(nil), root.Context.Flags...),
		remainingOptions: append([]catalog.Option(nil), root.Context.Options...),
		remainingInputs:  append([]catalog.Input(nil), root.Context.Inputs...),
	}
	return c
}

func (c *parseContext) descend(sub catalog.Command) {
	c.chain = append(c.chain, sub.Name)
	c.current = sub
	c.remainingFlags = append([]catalog.Flag(nil), sub.Context.Flags...)
	c.remainingOptions = append([]catalog.Option(nil), sub.Context.Options...)
	c.remainingInputs = append([]catalog.Input(nil), sub.Context.Inputs...)
	c.inputsConsumed = 0
}

func (c *parseContext) consumeFlag(name string) bool {
	for i, f := range c.remainingFlags {
		if f.Name == name {
			c.remainingFlags = append(c.remainingFlags[:i], c.remainingFlags[i+1:]...)
			return true
		}
	}
	return false
}

func (c *parseContext) consumeOption(name string) {
	for i, o := range c.remainingOptions {
		if o.Name == name {
			c.remainingOptions = append(c.remainingOptions[:i], c.remainingOptions[i+1:]...)
			return
		}
	}
}

// nextInput returns the input that the next positional token should
// bind to, without removing it: the caller commits the removal once
// the value has been validated and converted. Per the variadic Open
// Question decision, the last declared input is retained (not removed)
// while more than one positional token may still arrive, so trailing
// tokens continue binding to it instead of falling through to
// unexpectedArgument.
func (c *parseContext) nextInput() (catalog.Input, bool, bool) {
	if len(c.remainingInputs) == 0 {
		return catalog.Input{}, false, false
	}
	isLast := len(c.remainingInputs) == 1
	variadic := isLast && c.current.Context.IsLastInputVariadic
	return c.remainingInputs[0], isLast, variadic
}

func (c *parseContext) commitInput(variadicTail bool) {
	if variadicTail {
		return
	}
	c.remainingInputs = c.remainingInputs[1:]
}

// Evaluate resolves the root command by the command line's first token,
// raising NoSuchCommandError when no root matches, then parses the rest
// against that root via Parse.
func Evaluate(commandLine string, roots []catalog.Command) (invocation.Invocation, error) {
	tokens, err := Tokenize(commandLine)
	if err != nil {
		return invocation.Invocation{}, err
	}
	if len(tokens) == 0 {
		return invocation.Invocation{}, &NoSuchCommandError{Name: ""}
	}
	var root *catalog.Command
	for i := range roots {
		if roots[i].Name == tokens[0] {
			root = &roots[i]
			break
		}
	}
	if root == nil {
		return invocation.Invocation{}, &NoSuchCommandError{Name: tokens[0]}
	}
	return parseTokens(tokens[1:], *root, roots)
}

// Parse runs the state machine directly against an already-tokenized
// command line and a starting command.
func Parse(tokens []string, start catalog.Command) (invocation.Invocation, error) {
	return parseTokens(tokens, start, nil)
}

func parseTokens(tokens []string, start catalog.Command, roots []catalog.Command) (invocation.Invocation, error) {
	ctx := newParseContext(start)
	s := stateCommand

	for i := 0; i <= len(tokens); i++ {
		if i == len(tokens) {
			var err error
			s, err = transition(s, eventNoMoreArguments, ctx, "")
			if err != nil {
				return invocation.Invocation{}, err
			}
			break
		}
		tok := tokens[i]
		ev, classifyErr := classify(ctx, tok)
		if classifyErr != nil {
			return invocation.Invocation{}, classifyErr
		}
		var err error
		s, err = transition(s, ev, ctx, tok)
		if err != nil {
			return invocation.Invocation{}, err
		}
		if s == stateSuccess {
			break
		}
	}

	return finish(ctx, roots)
}

// classify performs the token-classification step of spec.md §4.4.2: it
// does not mutate ctx, it only decides which event the token represents.
func classify(ctx *parseContext, tok string) (event, error) {
	if ctx.pendingOption != nil {
		if strings.HasPrefix(tok, "-") {
			return 0, &MissingOptionValueError{Option: *ctx.pendingOption}
		}
		return eventScannedOptionValue, nil
	}

	if strings.HasPrefix(tok, "-") {
		name := strings.TrimLeft(tok, "-")
		if tok == "-h" || tok == "--help" || name == "help" {
			return eventScannedHelpFlag, nil
		}
		if _, ok := ctx.current.FindFlag(name); ok {
			return eventScannedFlag, nil
		}
		if _, ok := ctx.current.FindOption(name); ok {
			return eventScannedOption, nil
		}
		return eventScannedInvalidFlagOrOption, nil
	}

	if ctx.current.Context.HasSubcommands() {
		if _, ok := ctx.current.FindSubcommand(tok); ok {
			return eventScannedSubcommand, nil
		}
	}

	if len(ctx.remainingInputs) > 0 {
		return eventScannedInput, nil
	}

	return eventScannedUnexpectedArgument, nil
}

// transition implements the direct (state, event) -> state function
// called out in the design notes, paired with the commit steps that run
// before each successful advance.
func transition(s state, ev event, ctx *parseContext, tok string) (state, error) {
	switch ev {
	case eventScannedHelpFlag:
		ctx.usedHelp = true
		return stateFailure, &UsageRequestedError{Root: ctx.root, Target: ctx.current}

	case eventScannedInvalidFlagOrOption:
		return stateFailure, &InvalidFlagOrOptionError{Token: tok}

	case eventScannedUnexpectedArgument:
		return stateFailure, &UnexpectedArgumentError{Token: tok}

	case eventScannedSubcommand:
		sub, _ := ctx.current.FindSubcommand(tok)
		if sub.Name == "help" {
			ctx.usedHelp = true
			ctx.helpParent = ctx.current
		}
		ctx.descend(sub)
		return stateParsedSubcommand, nil

	case eventScannedFlag:
		name := strings.TrimLeft(tok, "-")
		flag, ok := ctx.current.FindFlag(name)
		if !ok || !ctx.consumeFlag(flag.Name) {
			return stateFailure, &InvalidFlagOrOptionError{Token: tok}
		}
		ctx.args[flag.Name] = invocation.Bool(true)
		return stateParsedFlag, nil

	case eventScannedOption:
		name := strings.TrimLeft(tok, "-")
		opt, _ := ctx.current.FindOption(name)
		ctx.pendingOption = &opt
		return stateParsedOption, nil

	case eventScannedOptionValue:
		opt := *ctx.pendingOption
		v, err := convertArgumentValue(opt.Name, opt.DataType, opt.ValidationRegex, tok, func(value, pattern string) error {
			return &InvalidOptionValueFormatError{Option: opt, Value: value}
		})
		if err != nil {
			return stateFailure, err
		}
		if opt.IsMultipleAllowed {
			existing, had := ctx.args[opt.Name]
			if had && existing.Kind == invocation.KindList {
				existing.List = append(existing.List, v)
				ctx.args[opt.Name] = existing
			} else if had {
				ctx.args[opt.Name] = invocation.List([]invocation.TypedValue{existing, v})
			} else {
				ctx.args[opt.Name] = invocation.List([]invocation.TypedValue{v})
			}
		} else {
			ctx.args[opt.Name] = v
			ctx.consumeOption(opt.Name)
		}
		ctx.pendingOption = nil
		return stateParsedOptionValue, nil

	case eventScannedInput:
		inp, _, variadic := ctx.nextInput()
		v, err := convertArgumentValue(inp.Name, inp.DataType, inp.ValidationRegex, tok, func(value, pattern string) error {
			return &InvalidInputValueFormatError{Input: inp, Value: value}
		})
		if err != nil {
			return stateFailure, err
		}
		if variadic {
			existing, had := ctx.args[inp.Name]
			if had && existing.Kind == invocation.KindList {
				existing.List = append(existing.List, v)
				ctx.args[inp.Name] = existing
			} else if had {
				ctx.args[inp.Name] = invocation.List([]invocation.TypedValue{existing, v})
			} else {
				ctx.args[inp.Name] = invocation.List([]invocation.TypedValue{v})
			}
		} else {
			ctx.args[inp.Name] = v
		}
		ctx.commitInput(variadic)
		ctx.inputsConsumed++
		return stateParsedInput, nil

	case eventNoMoreArguments:
		if s == stateParsedOption {
			return stateFailure, &MissingOptionValueError{Option: *ctx.pendingOption}
		}
		return stateSuccess, nil
	}
	return stateFailure, ErrUnexpectedError
}

// resolveHelpTarget implements the help-subcommand path of §4.4.2's help
// resolution: the target is the containing command, unless an optional
// "subcommand" input was supplied and names a sibling of the help entry
// or one of the available root commands. A name matching neither falls
// back silently to the containing command (Open Question decision 3).
func resolveHelpTarget(ctx *parseContext, roots []catalog.Command) catalog.Command {
	v, ok := ctx.args["subcommand"]
	if !ok || v.Kind != invocation.KindString {
		return ctx.helpParent
	}
	name := v.String
	if sub, ok := ctx.helpParent.FindSubcommand(name); ok {
		return sub
	}
	for _, r := range roots {
		if r.Name == name {
			return r
		}
	}
	return ctx.helpParent
}

func finish(ctx *parseContext, roots []catalog.Command) (invocation.Invocation, error) {
	for _, inp := range ctx.remainingInputs {
		if _, bound := ctx.args[inp.Name]; bound {
			// A variadic tail input stays in remainingInputs after binding.
			continue
		}
		if !inp.IsOptional {
			return invocation.Invocation{}, &MissingInputArgumentError{Input: inp}
		}
	}

	if ctx.usedHelp {
		target := resolveHelpTarget(ctx, roots)
		return invocation.Invocation{}, &UsageRequestedError{Root: ctx.root, Target: target}
	}

	commands := append([]string{ctx.root.Name}, ctx.chain...)
	return invocation.New(commands, ctx.args), nil
}

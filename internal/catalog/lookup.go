package catalog

// FindSubcommand returns the subcommand of cmd named name, if cmd's
// context is the Subcommands variant.
func (c Command) FindSubcommand(name string) (Command, bool) {
	for _, sub := range c.Context.Subcommands {
		if sub.Name == name {
			return sub, true
		}
	}
	return Command{}, false
}

// FindFlag resolves a flag by long name ("--verbose") or short name
// ("-v"), stripped of its leading dashes by the caller.
func (c Command) FindFlag(token string) (Flag, bool) {
	for _, f := range c.Context.Flags {
		if f.Name == token || (f.Short != "" && f.Short == token) {
			return f, true
		}
	}
	return Flag{}, false
}

// FindOption resolves an option by long name or short name, stripped of
// its leading dashes by the caller.
func (c Command) FindOption(token string) (Option, bool) {
	for _, o := range c.Context.Options {
		if o.Name == token || (o.Short != "" && o.Short == token) {
			return o, true
		}
	}
	return Option{}, false
}

// RemainingInputs returns the Inputs not yet consumed, preserving
// declaration order. count is the number of inputs already bound.
func (c Command) RemainingInputs(count int) []Input {
	if count >= len(c.Context.Inputs) {
		return nil
	}
	return c.Context.Inputs[count:]
}

// FindByPath walks a chain of command names from root, following
// Subcommands at each step. It returns the deepest Command reached and
// the number of path elements actually consumed.
func FindByPath(roots []Command, path []string) (Command, int, bool) {
	if len(path) == 0 {
		return Command{}, 0, false
	}
	var cur Command
	found := false
	for _, r := range roots {
		if r.Name == path[0] {
			cur = r
			found = true
			break
		}
	}
	if !found {
		return Command{}, 0, false
	}
	consumed := 1
	for consumed < len(path) {
		next, ok := cur.FindSubcommand(path[consumed])
		if !ok {
			break
		}
		cur = next
		consumed++
	}
	return cur, consumed, true
}

package parser

import (
	"fmt"
	"strings"

	"github.com/apparata/appconsole/internal/catalog"
)

const usageColumnWidth = 26

// FormatUsage renders the human usage block for a UsageRequestedError:
// an overview, a USAGE line, and optional SUBCOMMANDS / FLAGS / OPTIONS /
// INPUTS sections in a two-column layout. Descriptions start at column
// 26; when a row's left column reaches that width, its description moves
// to its own line, indented to column 26.
func FormatUsage(e *UsageRequestedError) string {
	var b strings.Builder
	target := e.Target

	if target.Description != "" {
		fmt.Fprintln(&b, target.Description)
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "USAGE: %s%s\n", target.Name, usageSuffix(target))

	if target.Context.HasSubcommands() {
		writeSection(&b, "SUBCOMMANDS", subcommandRows(target.Context.Subcommands))
	} else {
		if len(target.Context.Flags) > 0 {
			writeSection(&b, "FLAGS", flagRows(target.Context.Flags))
		}
		if len(target.Context.Options) > 0 {
			writeSection(&b, "OPTIONS", optionRows(target.Context.Options))
		}
		if len(target.Context.Inputs) > 0 {
			writeSection(&b, "INPUTS", inputRows(target.Context.Inputs))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func usageSuffix(cmd catalog.Command) string {
	if cmd.Context.HasSubcommands() {
		return " <subcommand>"
	}
	var parts []string
	for _, f := range cmd.Context.Flags {
		parts = append(parts, fmt.Sprintf("[-%s]", shortOrName(f.Name, f.Short)))
	}
	for _, o := range cmd.Context.Options {
		parts = append(parts, fmt.Sprintf("[-%s <%s>]", shortOrName(o.Name, o.Short), o.Name))
	}
	for _, in := range cmd.Context.Inputs {
		if in.IsOptional {
			parts = append(parts, fmt.Sprintf("[%s]", in.Name))
		} else {
			parts = append(parts, fmt.Sprintf("<%s>", in.Name))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func shortOrName(name, short string) string {
	if short != "" {
		return short
	}
	return name
}

func writeSection(b *strings.Builder, title string, rows [][2]string) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, title+":")
	for _, row := range rows {
		writeRow(b, row[0], row[1])
	}
}

func writeRow(b *strings.Builder, left, description string) {
	if description == "" {
		fmt.Fprintf(b, "  %s\n", left)
		return
	}
	if len(left)+2 < usageColumnWidth {
		fmt.Fprintf(b, "  %-*s%s\n", usageColumnWidth-2, left, description)
		return
	}
	fmt.Fprintf(b, "  %s\n%s%s\n", left, strings.Repeat(" ", usageColumnWidth), description)
}

func subcommandRows(commands []catalog.Command) [][2]string {
	rows := make([][2]string, len(commands))
	for i, c := range commands {
		rows[i] = [2]string{c.Name, c.Description}
	}
	return rows
}

func flagRows(flags []catalog.Flag) [][2]string {
	rows := make([][2]string, len(flags))
	for i, f := range flags {
		left := f.Name
		if f.Short != "" {
			left = fmt.Sprintf("-%s, --%s", f.Short, f.Name)
		} else {
			left = "--" + f.Name
		}
		rows[i] = [2]string{left, f.Description}
	}
	return rows
}

func optionRows(options []catalog.Option) [][2]string {
	rows := make([][2]string, len(options))
	for i, o := range options {
		var left string
		if o.Short != "" {
			left = fmt.Sprintf("-%s, --%s <%s>", o.Short, o.Name, o.Name)
		} else {
			left = fmt.Sprintf("--%s <%s>", o.Name, o.Name)
		}
		rows[i] = [2]string{left, o.Description}
	}
	return rows
}

func inputRows(inputs []catalog.Input) [][2]string {
	rows := make([][2]string, len(inputs))
	for i, in := range inputs {
		left := in.Name
		if in.IsOptional {
			left += " (optional)"
		}
		rows[i] = [2]string{left, in.Description}
	}
	return rows
}

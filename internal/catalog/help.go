package catalog

const helpName = "help"
const helpShort = "h"

// InjectHelp synthesizes the help entry for a Command: a "help"
// subcommand when Context is the Subcommands variant, or an "-h/--help"
// flag when Context is the leaf Arguments variant. Injection is
// idempotent — re-running it on an already-injected Command is a no-op —
// so a catalog can pass through several construction helpers without
// growing duplicate help entries.
func InjectHelp(cmd *Command) {
	if cmd.Context.HasSubcommands() {
		injectHelpSubcommand(cmd)
		for i := range cmd.Context.Subcommands {
			InjectHelp(&cmd.Context.Subcommands[i])
		}
		return
	}
	injectHelpFlag(cmd)
}

func injectHelpSubcommand(cmd *Command) {
	for _, sub := range cmd.Context.Subcommands {
		if sub.Name == helpName {
			return
		}
	}
	cmd.Context.Subcommands = append(cmd.Context.Subcommands, Command{
		Name:        helpName,
		Description: "show usage for this command",
		Context: Context{
			Inputs: []Input{
				{Name: "subcommand", DataType: TypeString, IsOptional: true, Description: "command to show usage for"},
			},
		},
	})
}

func injectHelpFlag(cmd *Command) {
	for _, f := range cmd.Context.Flags {
		if f.Name == helpName {
			return
		}
	}
	cmd.Context.Flags = append(cmd.Context.Flags, Flag{
		Name:        helpName,
		Short:       helpShort,
		Description: "show usage for this command",
	})
}

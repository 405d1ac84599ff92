// Package catalog implements the command-catalog data model (L2): the
// recursive, self-describing schema of commands, subcommands, flags,
// options, and inputs that travels over the wire as a versioned document.
package catalog

import "errors"

// CurrentVersion is the only catalog wire version this module understands.
const CurrentVersion = 1

// ErrVersionMismatch is returned when a decoded catalog's version field
// does not equal CurrentVersion.
var ErrVersionMismatch = errors.New("catalog: version mismatch")

// DataType is the closed set of value types an argument can carry.
type DataType string

const (
	TypeBool   DataType = "bool"
	TypeInt    DataType = "int"
	TypeDouble DataType = "double"
	TypeString DataType = "string"
	TypeDate   DataType = "date"
	TypeFile   DataType = "file"
)

// Flag is a boolean named argument descriptor: present means true, absent
// means false.
type Flag struct {
	Name        string `json:"name"`
	Short       string `json:"short,omitempty"`
	Description string `json:"description,omitempty"`
}

// Option is a named argument descriptor carrying one value of DataType per
// occurrence.
type Option struct {
	Name              string   `json:"name"`
	Short             string   `json:"short,omitempty"`
	DataType          DataType `json:"dataType"`
	IsMultipleAllowed bool     `json:"isMultipleAllowed,omitempty"`
	ValidationRegex   string   `json:"validationRegex,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// Input is a positional argument descriptor.
type Input struct {
	Name            string   `json:"name"`
	DataType        DataType `json:"dataType"`
	IsOptional      bool     `json:"isOptional,omitempty"`
	ValidationRegex string   `json:"validationRegex,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// Context is a Command's tagged-union body: either an inner menu of
// Subcommands, or a leaf Arguments shape (flags/options/inputs). The
// variant is distinguished at decode time by the presence of Subcommands
// versus the presence of Flags/Options/Inputs, per spec.
type Context struct {
	Subcommands []Command `json:"subcommands,omitempty"`

	Flags               []Flag   `json:"flags,omitempty"`
	Options             []Option `json:"options,omitempty"`
	Inputs              []Input  `json:"inputs,omitempty"`
	IsLastInputVariadic bool     `json:"isLastInputVariadic,omitempty"`
}

// HasSubcommands reports whether this Context is the Subcommands variant.
func (c Context) HasSubcommands() bool {
	return c.Subcommands != nil
}

// Command is one schema node: a name, description, and either a
// Subcommands menu or a leaf Arguments shape.
type Command struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Context     Context `json:"context"`
}

// Catalog is the complete command schema a service advertises.
type Catalog struct {
	Version  int       `json:"version"`
	Commands []Command `json:"commands"`
}

// NewSubcommandsCommand builds a Command whose context is a Subcommands
// menu, with the synthesized help subcommand injected.
func NewSubcommandsCommand(name, description string, subcommands ...Command) Command {
	cmd := Command{
		Name:        name,
		Description: description,
		Context:     Context{Subcommands: subcommands},
	}
	InjectHelp(&cmd)
	return cmd
}

// NewArgumentsCommand builds a Command whose context is a leaf Arguments
// shape, with the synthesized help flag injected.
func NewArgumentsCommand(name, description string, flags []Flag, options []Option, inputs []Input, isLastInputVariadic bool) Command {
	cmd := Command{
		Name:        name,
		Description: description,
		Context: Context{
			Flags:               flags,
			Options:             options,
			Inputs:              inputs,
			IsLastInputVariadic: isLastInputVariadic,
		},
	}
	InjectHelp(&cmd)
	return cmd
}

// NewCatalog builds a Catalog at CurrentVersion from the given root
// commands, injecting help entries recursively.
func NewCatalog(commands ...Command) Catalog {
	for i := range commands {
		InjectHelp(&commands[i])
	}
	return Catalog{Version: CurrentVersion, Commands: commands}
}

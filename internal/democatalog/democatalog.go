// Package democatalog builds the "stuff process" example catalog used
// throughout the design: a verbose flag, a regex-validated passes
// option, and a file input.
package democatalog

import "github.com/apparata/appconsole/internal/catalog"

// Build constructs the worked example from spec.md §8:
//
//	stuff process -v --passes 8 /tmp/banana.txt
func Build() catalog.Catalog {
	process := catalog.NewArgumentsCommand(
		"process",
		"process a file",
		[]catalog.Flag{
			{Name: "verbose", Short: "v", Description: "print progress to the console"},
		},
		[]catalog.Option{
			{Name: "passes", Short: "p", DataType: catalog.TypeInt, ValidationRegex: `^\d+$`, Description: "number of passes to run"},
		},
		[]catalog.Input{
			{Name: "textFile", DataType: catalog.TypeFile, Description: "file to process"},
		},
		false,
	)

	echo := catalog.NewArgumentsCommand(
		"echo",
		"echo text back as console output",
		nil,
		nil,
		[]catalog.Input{
			{Name: "text", DataType: catalog.TypeString, Description: "text to echo"},
		},
		false,
	)

	sleep := catalog.NewArgumentsCommand(
		"sleep",
		"sleep for a number of seconds",
		nil,
		[]catalog.Option{
			{Name: "seconds", Short: "s", DataType: catalog.TypeInt, ValidationRegex: `^\d+$`, Description: "seconds to sleep"},
		},
		nil,
		false,
	)

	stuff := catalog.NewSubcommandsCommand("stuff", "demo commands", process, echo, sleep)
	return catalog.NewCatalog(stuff)
}

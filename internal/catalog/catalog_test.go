package catalog

import (
	"reflect"
	"testing"
)

func exampleCatalog() Catalog {
	process := NewArgumentsCommand(
		"process",
		"process a file",
		[]Flag{{Name: "verbose", Short: "v", Description: "verbose output"}},
		[]Option{{Name: "passes", Short: "p", DataType: TypeInt, ValidationRegex: `^\d+$`}},
		[]Input{{Name: "textFile", DataType: TypeFile}},
		false,
	)
	stuff := NewSubcommandsCommand("stuff", "stuff commands", process)
	return NewCatalog(stuff)
}

func TestHelpInjectionSubcommands(t *testing.T) {
	cat := exampleCatalog()
	stuff := cat.Commands[0]
	if _, ok := stuff.FindSubcommand("help"); !ok {
		t.Fatal("stuff missing synthesized help subcommand")
	}
}

func TestHelpInjectionFlag(t *testing.T) {
	cat := exampleCatalog()
	stuff := cat.Commands[0]
	process, ok := stuff.FindSubcommand("process")
	if !ok {
		t.Fatal("missing process subcommand")
	}
	if _, ok := process.FindFlag("help"); !ok {
		t.Fatal("process missing synthesized help flag")
	}
	if _, ok := process.FindFlag("h"); !ok {
		t.Fatal("process missing synthesized -h short flag")
	}
}

func TestHelpInjectionIdempotent(t *testing.T) {
	cat := exampleCatalog()
	stuff := &cat.Commands[0]
	before := len(stuff.Context.Subcommands)
	InjectHelp(stuff)
	if len(stuff.Context.Subcommands) != before {
		t.Fatalf("re-injection added a duplicate help entry: %d -> %d", before, len(stuff.Context.Subcommands))
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	cat := exampleCatalog()
	encoded, err := Encode(cat)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(cat, decoded) {
		t.Fatalf("round trip not structurally equal:\n got=%+v\nwant=%+v", decoded, cat)
	}
}

func TestDecodeVersionMismatch(t *testing.T) {
	_, err := Decode([]byte(`{"version":2,"commands":[]}`))
	if err == nil {
		t.Fatal("expected version mismatch error")
	}
}

func TestFindByPath(t *testing.T) {
	cat := exampleCatalog()
	cmd, consumed, ok := FindByPath(cat.Commands, []string{"stuff", "process", "extra"})
	if !ok {
		t.Fatal("expected FindByPath to find stuff process")
	}
	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2", consumed)
	}
	if cmd.Name != "process" {
		t.Fatalf("cmd.Name = %q, want process", cmd.Name)
	}
}

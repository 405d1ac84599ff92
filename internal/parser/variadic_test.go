package parser

import (
	"testing"

	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/invocation"
)

// variadicCatalog builds a "batch tag" command whose last input,
// "names", is declared variadic, plus a repeatable "--label" option, so
// both halves of SPEC_FULL.md §13 decision 2 (repeated-option
// collection) and decision 1 (variadic trailing input) can be pinned
// through the real parser rather than the invocation package alone.
func variadicCatalog() []catalog.Command {
	tag := catalog.NewArgumentsCommand(
		"tag",
		"apply tags to one or more names",
		nil,
		[]catalog.Option{
			{Name: "label", Short: "l", DataType: catalog.TypeString, IsMultipleAllowed: true, Description: "a label to apply"},
		},
		[]catalog.Input{
			{Name: "names", DataType: catalog.TypeString, Description: "names to tag"},
		},
		true, // isLastInputVariadic
	)
	batch := catalog.NewSubcommandsCommand("batch", "batch operations", tag)
	return []catalog.Command{batch}
}

func TestEvaluateVariadicInputCollectsOrderedList(t *testing.T) {
	roots := variadicCatalog()
	inv, err := Evaluate(`batch tag alpha bravo charlie`, roots)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	names, ok := inv.Arguments["names"]
	if !ok {
		t.Fatal("names argument missing")
	}
	if names.Kind != invocation.KindList {
		t.Fatalf("names.Kind = %v, want KindList", names.Kind)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(names.List) != len(want) {
		t.Fatalf("names.List = %v, want %v entries", names.List, len(want))
	}
	for i, w := range want {
		if names.List[i].String != w {
			t.Errorf("names.List[%d] = %q, want %q", i, names.List[i].String, w)
		}
	}
}

func TestEvaluateSingleVariadicTokenIsStillAList(t *testing.T) {
	roots := variadicCatalog()
	inv, err := Evaluate(`batch tag alpha`, roots)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	names := inv.Arguments["names"]
	if names.Kind != invocation.KindList || len(names.List) != 1 || names.List[0].String != "alpha" {
		t.Fatalf("names = %+v, want a one-element list containing %q", names, "alpha")
	}
}

func TestEvaluateRepeatedOptionCollectsOrderedListThroughParser(t *testing.T) {
	roots := variadicCatalog()
	inv, err := Evaluate(`batch tag --label urgent --label review alpha`, roots)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	label, ok := inv.Arguments["label"]
	if !ok {
		t.Fatal("label argument missing")
	}
	if label.Kind != invocation.KindList {
		t.Fatalf("label.Kind = %v, want KindList", label.Kind)
	}
	want := []string{"urgent", "review"}
	if len(label.List) != len(want) {
		t.Fatalf("label.List = %v, want %v entries", label.List, len(want))
	}
	for i, w := range want {
		if label.List[i].String != w {
			t.Errorf("label.List[%d] = %q, want %q", i, label.List[i].String, w)
		}
	}

	names := inv.Arguments["names"]
	if names.Kind != invocation.KindList || len(names.List) != 1 || names.List[0].String != "alpha" {
		t.Fatalf("names = %+v, want a one-element list containing %q", names, "alpha")
	}
}

func TestEvaluateMultipleAllowedOptionIsAlwaysAList(t *testing.T) {
	roots := variadicCatalog()
	inv, err := Evaluate(`batch tag --label urgent alpha`, roots)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	label := inv.Arguments["label"]
	if label.Kind != invocation.KindList || len(label.List) != 1 || label.List[0].String != "urgent" {
		t.Fatalf("label = %+v, want a one-element list containing %q", label, "urgent")
	}
}

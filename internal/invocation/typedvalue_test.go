package invocation

import (
	"testing"
	"time"
)

func TestTypedValueRoundTrip(t *testing.T) {
	values := []TypedValue{
		Bool(true),
		Int(8),
		Double(3.5),
		String("banana"),
		Date(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)),
		FileValue("banana.txt", []byte("hello")),
		List([]TypedValue{Int(1), Int(2), Int(3)}),
	}
	for _, v := range values {
		b, err := v.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal %v: %v", v.Kind, err)
		}
		var got TypedValue
		if err := got.UnmarshalJSON(b); err != nil {
			t.Fatalf("unmarshal %v: %v", v.Kind, err)
		}
		if got.Kind != v.Kind {
			t.Fatalf("kind = %v, want %v", got.Kind, v.Kind)
		}
	}
}

// TestRepeatedOptionCollectsOrderedList checks the KindList value that
// Open Question decision 2 collects repeated isMultipleAllowed options
// into: List keeps its elements in order. The parser's collection of
// repeated options is exercised in parser/variadic_test.go.
func TestRepeatedOptionCollectsOrderedList(t *testing.T) {
	collected := List([]TypedValue{String("a"), String("b"), String("c")})
	if collected.Kind != KindList {
		t.Fatalf("kind = %v, want list", collected.Kind)
	}
	if len(collected.List) != 3 {
		t.Fatalf("len = %d, want 3", len(collected.List))
	}
	want := []string{"a", "b", "c"}
	for i, v := range collected.List {
		if v.String != want[i] {
			t.Errorf("element %d = %q, want %q", i, v.String, want[i])
		}
	}
}

func TestParseIntValueNotConvertible(t *testing.T) {
	_, err := ParseIntValue("passes", "xyz")
	if err == nil {
		t.Fatal("expected conversion error")
	}
	var nce *NotConvertibleError
	if !asNotConvertible(err, &nce) {
		t.Fatalf("error = %v, want *NotConvertibleError", err)
	}
	if nce.Original != "xyz" {
		t.Fatalf("Original = %q, want xyz", nce.Original)
	}
}

func asNotConvertible(err error, target **NotConvertibleError) bool {
	if e, ok := err.(*NotConvertibleError); ok {
		*target = e
		return true
	}
	return false
}

func TestInvocationEncodeDecodeRoundTrip(t *testing.T) {
	inv := New([]string{"stuff", "process"}, map[string]TypedValue{
		"verbose":  Bool(true),
		"passes":   Int(8),
		"textFile": FileValue("banana.txt", []byte("contents")),
	})
	b, err := Encode(inv)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Commands) != 2 || got.Commands[0] != "stuff" || got.Commands[1] != "process" {
		t.Fatalf("Commands = %v", got.Commands)
	}
	if got.Arguments["passes"].Int != 8 {
		t.Fatalf("passes = %v, want 8", got.Arguments["passes"].Int)
	}
	if string(got.Arguments["textFile"].File.Data) != "contents" {
		t.Fatalf("textFile.Data = %q, want contents", got.Arguments["textFile"].File.Data)
	}
}

func TestInvocationDecodeVersionMismatch(t *testing.T) {
	_, err := Decode([]byte(`{"version":2,"commands":[],"arguments":{}}`))
	if err == nil {
		t.Fatal("expected version mismatch error")
	}
}

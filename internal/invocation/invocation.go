package invocation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CurrentVersion is the only invocation wire version this module
// understands.
const CurrentVersion = 1

// ErrVersionMismatch is returned when a decoded invocation's version
// field does not equal CurrentVersion.
var ErrVersionMismatch = errors.New("invocation: version mismatch")

// Invocation is the structured result of parsing one command line
// against a catalog: the resolved command name chain, root first, and
// the consumed arguments keyed by name.
type Invocation struct {
	Version   int
	Commands  []string
	Arguments map[string]TypedValue
}

// New builds an Invocation at CurrentVersion.
func New(commands []string, arguments map[string]TypedValue) Invocation {
	if arguments == nil {
		arguments = map[string]TypedValue{}
	}
	return Invocation{Version: CurrentVersion, Commands: commands, Arguments: arguments}
}

type wireInvocation struct {
	Version   int                       `json:"version"`
	Commands  []string                  `json:"commands"`
	Arguments map[string]wireTypedValue `json:"arguments"`
}

// Encode serializes an Invocation to its wire document form.
func Encode(inv Invocation) ([]byte, error) {
	w := wireInvocation{
		Version:   inv.Version,
		Commands:  inv.Commands,
		Arguments: make(map[string]wireTypedValue, len(inv.Arguments)),
	}
	for name, v := range inv.Arguments {
		b, err := v.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("invocation: encode %q: %w", name, err)
		}
		var wv wireTypedValue
		if err := json.Unmarshal(b, &wv); err != nil {
			return nil, fmt.Errorf("invocation: encode %q: %w", name, err)
		}
		w.Arguments[name] = wv
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("invocation: encode: %w", err)
	}
	return b, nil
}

// Decode parses a wire document into an Invocation and rejects a version
// mismatch with ErrVersionMismatch.
func Decode(data []byte) (Invocation, error) {
	var w wireInvocation
	if err := json.Unmarshal(data, &w); err != nil {
		return Invocation{}, fmt.Errorf("invocation: decode: %w", err)
	}
	if w.Version != CurrentVersion {
		return Invocation{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, w.Version, CurrentVersion)
	}
	inv := Invocation{
		Version:   w.Version,
		Commands:  w.Commands,
		Arguments: make(map[string]TypedValue, len(w.Arguments)),
	}
	for name, wv := range w.Arguments {
		var v TypedValue
		if err := v.fromWire(wv); err != nil {
			return Invocation{}, fmt.Errorf("invocation: decode %q: %w", name, err)
		}
		inv.Arguments[name] = v
	}
	return inv, nil
}

// Package invocation implements the typed-value union and the Invocation
// document that the parser (L3) produces from a command line and the
// catalog (L2) it was parsed against.
package invocation

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Kind is the discriminant tag carried by an encoded TypedValue.
type Kind string

const (
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindDouble Kind = "double"
	KindString Kind = "string"
	KindDate   Kind = "date"
	KindFile   Kind = "file"
	KindList   Kind = "list"
)

// File is the payload carried by a TypedValue of KindFile: a filename
// plus an opaque byte blob.
type File struct {
	Filename string `json:"filename"`
	Data     []byte `json:"filedata"`
}

// TypedValue is the tagged union of every value an argument can carry.
// A repeated option (isMultipleAllowed) or a variadic last input is
// represented as KindList, an ordered sequence of the element values.
type TypedValue struct {
	Kind Kind

	Bool   bool
	Int    int64
	Double float64
	String string
	Date   time.Time
	File   File
	List   []TypedValue
}

func Bool(v bool) TypedValue     { return TypedValue{Kind: KindBool, Bool: v} }
func Int(v int64) TypedValue     { return TypedValue{Kind: KindInt, Int: v} }
func Double(v float64) TypedValue { return TypedValue{Kind: KindDouble, Double: v} }
func String(v string) TypedValue { return TypedValue{Kind: KindString, String: v} }
func Date(v time.Time) TypedValue { return TypedValue{Kind: KindDate, Date: v} }
func FileValue(filename string, data []byte) TypedValue {
	return TypedValue{Kind: KindFile, File: File{Filename: filename, Data: data}}
}
func List(values []TypedValue) TypedValue { return TypedValue{Kind: KindList, List: values} }

type wireTypedValue struct {
	Type     Kind             `json:"type"`
	Bool     *bool            `json:"bool,omitempty"`
	Int      *int64           `json:"int,omitempty"`
	Double   *float64         `json:"double,omitempty"`
	String   *string          `json:"string,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Filename *string          `json:"filename,omitempty"`
	Filedata *string          `json:"filedata,omitempty"`
	List     []wireTypedValue `json:"list,omitempty"`
}

// MarshalJSON encodes the discriminant explicitly: unlike Command.context
// (distinguished by field presence), TypedValue always tags itself with
// an explicit "type" field since its variants share no structural shape
// to disambiguate by.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	w := wireTypedValue{Type: v.Kind}
	switch v.Kind {
	case KindBool:
		w.Bool = &v.Bool
	case KindInt:
		w.Int = &v.Int
	case KindDouble:
		w.Double = &v.Double
	case KindString:
		w.String = &v.String
	case KindDate:
		s := v.Date.UTC().Format(time.RFC3339)
		w.Date = &s
	case KindFile:
		w.Filename = &v.File.Filename
		s := base64.StdEncoding.EncodeToString(v.File.Data)
		w.Filedata = &s
	case KindList:
		w.List = make([]wireTypedValue, len(v.List))
		for i, e := range v.List {
			b, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			if err := json.Unmarshal(b, &w.List[i]); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("invocation: unknown typed value kind %q", v.Kind)
	}
	return json.Marshal(w)
}

func (v *TypedValue) UnmarshalJSON(data []byte) error {
	var w wireTypedValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return v.fromWire(w)
}

func (v *TypedValue) fromWire(w wireTypedValue) error {
	v.Kind = w.Type
	switch w.Type {
	case KindBool:
		if w.Bool == nil {
			return fmt.Errorf("invocation: bool typed value missing bool field")
		}
		v.Bool = *w.Bool
	case KindInt:
		if w.Int == nil {
			return fmt.Errorf("invocation: int typed value missing int field")
		}
		v.Int = *w.Int
	case KindDouble:
		if w.Double == nil {
			return fmt.Errorf("invocation: double typed value missing double field")
		}
		v.Double = *w.Double
	case KindString:
		if w.String == nil {
			return fmt.Errorf("invocation: string typed value missing string field")
		}
		v.String = *w.String
	case KindDate:
		if w.Date == nil {
			return fmt.Errorf("invocation: date typed value missing date field")
		}
		t, err := time.Parse(time.RFC3339, *w.Date)
		if err != nil {
			return fmt.Errorf("invocation: date typed value: %w", err)
		}
		v.Date = t
	case KindFile:
		if w.Filename == nil || w.Filedata == nil {
			return fmt.Errorf("invocation: file typed value missing filename or filedata")
		}
		data, err := base64.StdEncoding.DecodeString(*w.Filedata)
		if err != nil {
			return fmt.Errorf("invocation: file typed value: %w", err)
		}
		v.File = File{Filename: *w.Filename, Data: data}
	case KindList:
		v.List = make([]TypedValue, len(w.List))
		for i, e := range w.List {
			if err := v.List[i].fromWire(e); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("invocation: unknown typed value kind %q", w.Type)
	}
	return nil
}

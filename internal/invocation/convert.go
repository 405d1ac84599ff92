package invocation

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// NotConvertibleError reports a value that failed native conversion for
// its declared argument data type, preserving the original string the
// user typed.
type NotConvertibleError struct {
	ArgumentName string
	DataType     string
	Original     string
}

func (e *NotConvertibleError) Error() string {
	return fmt.Sprintf("invocation: %q: %q is not convertible to %s", e.ArgumentName, e.Original, e.DataType)
}

// ParseBoolValue converts a token to a bool TypedValue using strconv's
// native bool grammar.
func ParseBoolValue(name, token string) (TypedValue, error) {
	b, err := strconv.ParseBool(token)
	if err != nil {
		return TypedValue{}, &NotConvertibleError{ArgumentName: name, DataType: "bool", Original: token}
	}
	return Bool(b), nil
}

// ParseIntValue converts a token to an int TypedValue.
func ParseIntValue(name, token string) (TypedValue, error) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return TypedValue{}, &NotConvertibleError{ArgumentName: name, DataType: "int", Original: token}
	}
	return Int(n), nil
}

// ParseDoubleValue converts a token to a double TypedValue.
func ParseDoubleValue(name, token string) (TypedValue, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return TypedValue{}, &NotConvertibleError{ArgumentName: name, DataType: "double", Original: token}
	}
	return Double(f), nil
}

// ParseDateValue converts a token to a date TypedValue using ISO-8601
// (RFC 3339) layout.
func ParseDateValue(name, token string) (TypedValue, error) {
	t, err := time.Parse(time.RFC3339, token)
	if err != nil {
		t, err = time.Parse("2006-01-02", token)
	}
	if err != nil {
		return TypedValue{}, &NotConvertibleError{ArgumentName: name, DataType: "date", Original: token}
	}
	return Date(t), nil
}

// ParseStringValue wraps a token as a string TypedValue without
// conversion (strings cannot fail native parse).
func ParseStringValue(token string) TypedValue {
	return String(token)
}

// ParseFileValue reads the file named by token from disk, producing a
// file TypedValue carrying its basename and raw bytes.
func ParseFileValue(name, token string) (TypedValue, error) {
	data, err := os.ReadFile(token)
	if err != nil {
		return TypedValue{}, &NotConvertibleError{ArgumentName: name, DataType: "file", Original: token}
	}
	return FileValue(filepath.Base(token), data), nil
}

package parser

import (
	"regexp"

	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/invocation"
)

// convertArgumentValue runs the shared option/input commit logic from
// §4.4.2: validate against an optional regex, then convert to the
// declared data type. formatErr builds the caller's typed format error
// (InvalidOptionValueFormatError or InvalidInputValueFormatError).
func convertArgumentValue(name string, dataType catalog.DataType, validationRegex, value string, formatErr func(value, pattern string) error) (invocation.TypedValue, error) {
	if validationRegex != "" {
		matched, err := regexp.MatchString(validationRegex, value)
		if err != nil || !matched {
			return invocation.TypedValue{}, formatErr(value, validationRegex)
		}
	}

	switch dataType {
	case catalog.TypeBool:
		v, err := invocation.ParseBoolValue(name, value)
		if err != nil {
			return invocation.TypedValue{}, toArgumentError(name, value, dataType, err)
		}
		return v, nil
	case catalog.TypeInt:
		v, err := invocation.ParseIntValue(name, value)
		if err != nil {
			return invocation.TypedValue{}, toArgumentError(name, value, dataType, err)
		}
		return v, nil
	case catalog.TypeDouble:
		v, err := invocation.ParseDoubleValue(name, value)
		if err != nil {
			return invocation.TypedValue{}, toArgumentError(name, value, dataType, err)
		}
		return v, nil
	case catalog.TypeDate:
		v, err := invocation.ParseDateValue(name, value)
		if err != nil {
			return invocation.TypedValue{}, toArgumentError(name, value, dataType, err)
		}
		return v, nil
	case catalog.TypeFile:
		v, err := invocation.ParseFileValue(name, value)
		if err != nil {
			return invocation.TypedValue{}, toArgumentError(name, value, dataType, err)
		}
		return v, nil
	case catalog.TypeString:
		return invocation.ParseStringValue(value), nil
	default:
		return invocation.TypedValue{}, toArgumentError(name, value, dataType, nil)
	}
}

func toArgumentError(name, value string, dataType catalog.DataType, cause error) error {
	return &ArgumentValueNotConvertibleError{ArgumentName: name, Value: value, DataType: dataType}
}

package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// bindToStruct sets the fields of the struct v points to from values, using
// tagName to find each field's parameter name.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}

	rv = rv.Elem()
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}
		fieldValues := values[name]
		if len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: %s: %v", bindErr, name, err)
		}
	}

	return nil
}

func parseFieldTag(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(field.Name), false
	case "-":
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, name == ""
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	switch fieldType.Kind() {
	case reflect.Pointer:
		elem := reflect.New(fieldType.Elem())
		if err := setFieldValue(elem.Elem(), fieldType.Elem(), values); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	case reflect.Slice:
		return setSliceValue(field, fieldType, values)
	}

	value := strings.TrimSpace(values[0])
	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// parseBool accepts strconv.ParseBool input plus on/off and yes/no, the
// forms HTML checkboxes and beacon scripts tend to send.
func parseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}

func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	var all []string
	for _, v := range values {
		all = append(all, strings.Split(v, ",")...)
	}

	slice := reflect.MakeSlice(fieldType, len(all), len(all))
	for i, value := range all {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{value}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}

func reflectValue(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}
	}
	return rv.Elem()
}

// sanitizeValue walks rv and cleans every settable string in place.
func sanitizeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizeString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if field := rv.Field(i); field.CanSet() {
				sanitizeValue(field)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeValue(rv.Index(i))
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			sanitizeValue(rv.Elem())
		}
	}
}

func sanitizeString(s string) string {
	s = strings.Map(func(r rune) rune {
		if r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

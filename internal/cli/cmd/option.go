package cmd

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

type (
	// Optioner is implemented by every Option and lets the Parser work with options of different types.
	Optioner interface {
		optionName() string
		optionDescription() string
		optionHelp() (flags, description string, hints []string)
		usageToken() string
		bind(*pflag.FlagSet) *boundOption
	}

	// OptionType defines supported data types for options. Slice options accept multiple values (the flag may be
	// repeated, or the values may be comma-separated).
	OptionType interface {
		bool | int | string | []int | []string
	}

	// Option describes a named option exposed as both a short (-x) and a long (--xxx) flag. The short name is
	// the first letter of the full name.
	Option[T OptionType] struct {
		Name        string        // Full name, e.g. "border" for "--border" (and "-b").
		Description string        // Description of the option.
		Default     T             // Default value of the option.
		Choices     []string      // Optional list of allowed values.
		Label       string        // Value placeholder for the usage line. Defaults to the upper-cased name.
		EnvVars     []string      // Environment variable names used when the flag is absent.
		Validator   func(T) error // Optional function to validate the value.
	}
)

var (
	_ Optioner = (*Option[bool])(nil)
	_ Optioner = (*Option[int])(nil)
	_ Optioner = (*Option[string])(nil)
	_ Optioner = (*Option[[]int])(nil)
	_ Optioner = (*Option[[]string])(nil)
)

// boundOption is an option registered in a flag set.
type boundOption struct {
	name     string
	value    func() any
	fromEnv  func(*pflag.FlagSet) error
	validate func() error
}

func (o *Option[T]) optionName() string { return o.Name }

func (o *Option[T]) optionDescription() string { return o.Description }

func (o *Option[T]) short() string { return o.Name[:1] }

func (o *Option[T]) label() string {
	if o.Label != "" {
		return o.Label
	}

	return strings.ToUpper(o.Name)
}

func (o *Option[T]) isBool() bool {
	_, ok := any(o.Default).(bool)

	return ok
}

func (o *Option[T]) isMulti() bool {
	switch any(o.Default).(type) {
	case []int, []string:
		return true
	}

	return false
}

// usageToken returns the option representation for the usage line. Multiple values are given by repeating the
// flag or as a comma-separated list, e.g. "[-b BORDER[,BORDER]]".
func (o *Option[T]) usageToken() string {
	switch {
	case o.isBool():
		return "[-" + o.short() + "]"
	case o.isMulti():
		return "[-" + o.short() + " " + o.label() + "[," + o.label() + "]]"
	}

	return "[-" + o.short() + " " + o.label() + "]"
}

// optionHelp returns the flags, the description and the hint lines (default value, choices and
// environment variables).
func (o *Option[T]) optionHelp() (flags, description string, hints []string) {
	flags = "-" + o.short() + " | --" + o.Name

	if def := formatValue(o.Default); def != "" && !o.isBool() {
		hints = append(hints, "Default:  "+def)
	}

	if len(o.Choices) > 0 {
		hints = append(hints, "Choices:  "+strings.Join(o.Choices, " / "))
	}

	if len(o.EnvVars) > 0 {
		var names = make([]string, len(o.EnvVars))

		for i, name := range o.EnvVars {
			names[i] = "$" + name
		}

		hints = append(hints, "Env:  "+strings.Join(names, ", "))
	}

	return flags, o.Description, hints
}

// bind registers the option in the flag set.
func (o *Option[T]) bind(fs *pflag.FlagSet) *boundOption {
	var value = new(T)

	switch def := any(o.Default).(type) {
	case bool:
		fs.BoolVarP(any(value).(*bool), o.Name, o.short(), def, o.Description)
	case int:
		fs.IntVarP(any(value).(*int), o.Name, o.short(), def, o.Description)
	case string:
		fs.StringVarP(any(value).(*string), o.Name, o.short(), def, o.Description)
	case []int:
		fs.IntSliceVarP(any(value).(*[]int), o.Name, o.short(), slices.Clone(def), o.Description)
	case []string:
		fs.StringSliceVarP(any(value).(*[]string), o.Name, o.short(), slices.Clone(def), o.Description)
	}

	return &boundOption{
		name:  o.Name,
		value: func() any { return *value },
		fromEnv: func(fs *pflag.FlagSet) error {
			if fs.Changed(o.Name) {
				return nil
			}

			for _, name := range o.EnvVars {
				if v, ok := os.LookupEnv(name); ok {
					if err := fs.Set(o.Name, strings.TrimSpace(v)); err != nil {
						return invalidValuef("environment variable %s: %q is not a valid value for --%s", name, v, o.Name)
					}

					return nil
				}
			}

			return nil
		},
		validate: func() error { return o.check(*value) },
	}
}

// check validates the value against the choices and the custom validator.
func (o *Option[T]) check(v T) error {
	if len(o.Choices) > 0 {
		for _, s := range valueStrings(v) {
			if !slices.Contains(o.Choices, s) {
				return invalidValuef("argument -%s/--%s: invalid choice: %q (choose from %s)",
					o.short(), o.Name, s, strings.Join(o.Choices, ", "),
				)
			}
		}
	}

	if o.Validator != nil {
		if err := o.Validator(v); err != nil {
			return invalidValuef("argument -%s/--%s: %s", o.short(), o.Name, err)
		}
	}

	return nil
}

// valueStrings returns the string representation of every value item.
func valueStrings(v any) []string {
	switch val := v.(type) {
	case bool:
		return []string{strconv.FormatBool(val)}
	case int:
		return []string{strconv.Itoa(val)}
	case string:
		return []string{val}
	case []int:
		var out = make([]string, len(val))

		for i, n := range val {
			out[i] = strconv.Itoa(n)
		}

		return out
	case []string:
		return val
	}

	return []string{fmt.Sprint(v)}
}

// formatValue returns the value formatted for the help message, or an empty string for zero values.
func formatValue(v any) string {
	switch val := v.(type) {
	case bool:
		if !val {
			return ""
		}
	case int:
		if val == 0 {
			return ""
		}
	}

	return strings.Join(valueStrings(v), ", ")
}

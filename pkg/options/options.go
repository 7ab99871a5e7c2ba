// Package options provides configuration structures and utilities for the ranges demonstration program.
package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/norio-nomura/ranges/pkg/shellwords"
	"github.com/norio-nomura/ranges/pkg/view"
)

// Options holds configuration values for the demonstration program, loaded from environment variables or JSON.
type Options struct {
	From    int      `env:"RANGES_FROM" json:"from"`
	To      int      `env:"RANGES_TO" json:"to" validate:"gtefield=From,ltmaxint"`
	Filters []string `env:"RANGES_FILTERS" json:"filters" validate:"dive,required"`
	Format  string   `env:"RANGES_FORMAT" json:"format" validate:"oneof=lines json"`
	Debug   bool     `env:"RANGES_DEBUG" json:"debug,omitempty"`
}

// DefaultFilters is the sample chain of eight jq filter stages.
var DefaultFilters = []string{
	". % 2 == 0",
	". > 10",
	". < 16",
	". == 14",
	". == 14",
	". == 1",
	". == 14",
	". == 14",
}

// defaultOptions creates a new Options instance with default values.
func defaultOptions() *Options {
	return &Options{
		From:    1,
		To:      20,
		Filters: append([]string(nil), DefaultFilters...),
		Format:  "lines",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Source ends at To+1, which must not overflow.
	if err := v.RegisterValidation("ltmaxint", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() < math.MaxInt
	}); err != nil {
		panic(err)
	}
	return v
}

// FromEnv populates Options from environment variables dynamically.
// Variables are first loaded from envFiles, or from ".env" if it exists and no file is given;
// variables already set in the environment take precedence over the files.
// Returns an error if a value cannot be parsed. The result is not validated,
// so that callers can apply overrides first and then call Validate.
func FromEnv(envFiles ...string) (*Options, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	options := defaultOptions()
	v := reflect.ValueOf(options).Elem()
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)
		fieldType := t.Field(i)

		envKey := fieldType.Tag.Get("env")
		if envKey == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envKey)
		if !exists {
			continue
		}

		// Set the field value based on its type
		switch field.Kind() {
		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String {
				return nil, fmt.Errorf("unsupported slice type for %s", envKey)
			}
			// Split the string like a shell does, so a jq expression may contain spaces when quoted
			sliceValue, err := shellwords.Split(envValue)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", envKey, err)
			}
			field.Set(reflect.ValueOf(sliceValue))
		case reflect.String:
			field.SetString(envValue)
		case reflect.Int:
			intValue, err := strconv.Atoi(envValue)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", envKey, err)
			}
			field.SetInt(int64(intValue))
		case reflect.Bool:
			boolValue, err := strconv.ParseBool(envValue)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", envKey, err)
			}
			field.SetBool(boolValue)
		}
	}
	return options, nil
}

// FromJSON reads JSON from r and populates Options. Missing keys keep their defaults.
// Like FromEnv, it does not validate.
func FromJSON(r io.Reader) (*Options, error) {
	options := defaultOptions()
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(options); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return options, nil
}

// Validate checks the option values.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// Source returns the integers From through To, inclusive.
func (o *Options) Source() view.IotaRange[int] {
	return view.Iota(o.From, o.To+1)
}

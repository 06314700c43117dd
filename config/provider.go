package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Tag names read by Provider.
const (
	TagPath    = "conf"
	TagDefault = "default"
)

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that binds the entries under prefix into target,
// sets defaults, and validates it.
//
// Fields are bound by their `conf` tag, which names the path segment below
// prefix. A `default` tag makes the entry optional; without one a missing entry
// fails with *MissingKeyError. Tagged nested structs extend the prefix.
//
//	type HTTP struct {
//	    Port    int           `conf:"port"`
//	    Timeout time.Duration `conf:"timeout" default:"30s"`
//	}
//
//	provider := config.Provider(&HTTP{}, "/server/http")
func Provider[T any](target *T, prefix string) func(*Config) (*T, error) {
	return func(cfg *Config) (*T, error) {
		if target == nil {
			return nil, ErrInvalidTarget
		}

		value := reflect.ValueOf(target).Elem()
		if value.Kind() != reflect.Struct {
			return nil, ErrInvalidTarget
		}

		err := bindStruct(cfg, value, strings.TrimSuffix(prefix, "/"))
		if err != nil {
			return nil, fmt.Errorf("binding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", prefix))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

var durationType = reflect.TypeFor[time.Duration]()

func bindStruct(cfg *Config, value reflect.Value, prefix string) error {
	structType := value.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)

		name, tagged := field.Tag.Lookup(TagPath)
		if !tagged || name == "-" || !field.IsExported() {
			continue
		}

		path := prefix + "/" + name
		fieldValue := value.Field(i)

		if field.Type.Kind() == reflect.Struct && field.Type != durationType {
			err := bindStruct(cfg, fieldValue, path)
			if err != nil {
				return err
			}

			continue
		}

		raw, found := cfg.Lookup(path)
		if !found {
			if cfg.Released() {
				return ErrReleased
			}

			def, hasDefault := field.Tag.Lookup(TagDefault)
			if !hasDefault {
				return &MissingKeyError{Path: path}
			}

			raw = def
		}

		err := setField(fieldValue, path, raw)
		if err != nil {
			return err
		}
	}

	return nil
}

func setField(field reflect.Value, path, raw string) error {
	fail := func(err error) error {
		return &ValueError{Path: path, Value: raw, Type: field.Type().String(), Err: err}
	}

	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fail(err)
		}

		field.SetInt(int64(d))

		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fail(err)
		}

		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 0, field.Type().Bits())
		if err != nil {
			return fail(err)
		}

		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 0, field.Type().Bits())
		if err != nil {
			return fail(err)
		}

		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return fail(err)
		}

		field.SetFloat(f)
	default:
		return fmt.Errorf("%w: %s at %q", ErrUnsupportedField, field.Type(), path)
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// configValidator reports failing fields by their YAML key (game.travel_mode)
// rather than by Go field name.
var configValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		key, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if key == "" || key == "-" {
			return field.Name
		}
		return key
	})
	return v
})

// ValidateConfig checks the validate tags of every section and lists every failure
func ValidateConfig(cfg *Config) error {
	err := configValidator().Struct(cfg)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	problems := make([]error, 0, len(fields))
	for _, field := range fields {
		problems = append(problems, fmt.Errorf("%s: %q does not satisfy %s",
			configKey(field.Namespace()), fmt.Sprint(field.Value()), describeRule(field)))
	}
	return errors.Join(problems...)
}

func describeRule(field validator.FieldError) string {
	if field.Param() == "" {
		return field.Tag()
	}
	return field.Tag() + "=" + field.Param()
}

// configKey drops the root struct name: "Config.game.travel_mode" becomes "game.travel_mode"
func configKey(namespace string) string {
	if _, key, found := strings.Cut(namespace, "."); found {
		return key
	}
	return namespace
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags first, then the cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return newChecker("config").
		distinct("render.dot_file", c.Render.DotFile, "render.image_file", c.Render.ImageFile).
		distinct("walk.output_file", c.Walk.OutputFile, "render.dot_file", c.Render.DotFile).
		distinct("walk.output_file", c.Walk.OutputFile, "render.image_file", c.Render.ImageFile).
		check("render.command", func() error {
			if strings.ContainsAny(c.Render.Command, " \t") {
				return errors.New("must be a single executable name or path")
			}
			return nil
		}).
		err()
}

// formatValidationError reports every failed tag in the form
// "<Namespace>: <reason>".
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Errorf("%s: field is required", field))
		case "min", "gte":
			msgs = append(msgs, fmt.Errorf("%s: must be at least %s", field, e.Param()))
		case "max", "lte":
			msgs = append(msgs, fmt.Errorf("%s: must not exceed %s", field, e.Param()))
		case "gt":
			msgs = append(msgs, fmt.Errorf("%s: must be greater than %s", field, e.Param()))
		case "lt":
			msgs = append(msgs, fmt.Errorf("%s: must be less than %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Errorf("%s: %v must be one of [%s]", field, e.Value(), e.Param()))
		case "hostname_port":
			msgs = append(msgs, fmt.Errorf("%s: %q is not a host:port address", field, e.Value()))
		default:
			msgs = append(msgs, fmt.Errorf("%s: validation failed (%s)", field, e.Tag()))
		}
	}
	return errors.Join(msgs...)
}

// checker collects cross-field errors rather than failing on the first one.
type checker struct {
	name   string
	errors []error
}

func newChecker(name string) *checker {
	return &checker{name: name}
}

func (c *checker) distinct(fieldA, a, fieldB, b string) *checker {
	if a == b {
		c.errors = append(c.errors, fmt.Errorf("%s: %s and %s must differ (both %q)", c.name, fieldA, fieldB, a))
	}
	return c
}

func (c *checker) check(field string, fn func() error) *checker {
	if err := fn(); err != nil {
		c.errors = append(c.errors, fmt.Errorf("%s.%s: %w", c.name, field, err))
	}
	return c
}

func (c *checker) err() error {
	return errors.Join(c.errors...)
}

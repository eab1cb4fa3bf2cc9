package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"polarconv/internal/parser"
	"polarconv/internal/resolve"
	"polarconv/internal/source"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "encoding", func(fl validator.FieldLevel) bool {
		_, err := source.ParseEncoding(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "delimiter", func(fl validator.FieldLevel) bool {
		_, err := parser.DetectorFor(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "policy", func(fl validator.FieldLevel) bool {
		_, err := resolve.ParsePolicy(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Errorf("register %s validation: %w", tag, err))
	}
}

// Validate checks every field and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s)", fieldKey(fe), fe.Value(), fe.Tag()))
	}
	src := c.Path
	if src == "" {
		src = "config"
	}
	return fmt.Errorf("%s: %s", src, strings.Join(msgs, "; "))
}

// fieldKey turns "Config.Resolve.Policy" into "resolve.policy".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return strings.ToLower(ns)
}

package config

import (
	"errors"
	"net"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themecast/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by the
// config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
			_, port, err := net.SplitHostPort(fl.Field().String())
			if err != nil {
				return false
			}
			n, err := strconv.Atoi(port)
			return err == nil && n > 0 && n < 65536
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a configuration against its schema.
func Validate(cfg *Config) error {
	if cfg == nil {
		return themeerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		return themeerrors.NewValidationError(field, describe(fe), err)
	}
	return themeerrors.NewValidationError("config", err.Error(), err)
}

// fieldPath drops the root struct name from the yaml-tagged namespace.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "hexcolor":
		return "must be a hex colour such as #1e1e2e"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "listen_addr":
		return "must be host:port"
	default:
		return "failed validation for tag '" + fe.Tag() + "'"
	}
}

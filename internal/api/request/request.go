// Package request decodes JSON request bodies and validates them against
// their struct tags.
package request

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// DecodeJSON reads the body of r into dst and validates it. Validation
// failures are returned as validator.ValidationErrors.
func DecodeJSON(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		return err
	}

	return nil
}

// Package response builds the JSON envelope shared by every endpoint:
// an object whose "status" is one of success, fail or error.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type Envelope map[string]any

// Message is a success envelope carrying a fixed message.
func Message(msg string) Envelope {
	return Envelope{"status": StatusSuccess, "message": msg}
}

// List is a success envelope with the item count and the items under key.
func List[T any](key string, items []T) Envelope {
	if items == nil {
		items = []T{}
	}

	return Envelope{"status": StatusSuccess, "results": len(items), key: items}
}

// Data is a success envelope wrapping item as data.<key>.
func Data(key string, item any) Envelope {
	return Envelope{"status": StatusSuccess, "data": map[string]any{key: item}}
}

// Fail reports a condition attributable to the client or a known failure.
func Fail(msg string) Envelope {
	return Envelope{"status": StatusFail, "message": msg}
}

// Error reports an unexpected failure, msg may carry the raw diagnostic.
func Error(msg string) Envelope {
	return Envelope{"status": StatusError, "message": msg}
}

func ValidationFail(errs validator.ValidationErrors) Envelope {
	msgs := make([]string, 0, len(errs))

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Fail(strings.Join(msgs, ", "))
}

// Render writes env with the given HTTP status.
func Render(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	render.Status(r, status)
	render.JSON(w, r, env)
}

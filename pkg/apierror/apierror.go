package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
)

// Kind is the closed set of failure classes the collaborator API can produce.
type Kind int

const (
	KindNetwork Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindServer:
		return "server"
	default:
		return "network"
	}
}

// GenericMessage is the fallback shown when the collaborator gives no
// usable detail.
const GenericMessage = "Ocurrió un error inesperado. Intente nuevamente."

// APIError is the engine-side view of a failed collaborator call.
type APIError struct {
	Kind    Kind
	Status  int
	Field   string // first offending field for validation errors
	Message string
	Err     error // transport cause for network errors
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Kind.String() + ": " + e.Message
	}
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *APIError) Unwrap() error { return e.Err }

// envelope mirrors the collaborator's response wrapper. The error member is
// either a map of field -> message (validation) or free-form detail.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// Classify turns a non-2xx collaborator response into an *APIError. For
// validation failures the first field message (by field name order, so the
// choice is deterministic) becomes the surfaced text.
func Classify(status int, body []byte) *APIError {
	var env envelope
	_ = json.Unmarshal(body, &env)

	switch status {
	case http.StatusUnauthorized:
		return &APIError{Kind: KindUnauthorized, Status: status, Message: env.Message}
	case http.StatusForbidden:
		return &APIError{Kind: KindForbidden, Status: status, Message: env.Message}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if field, msg, ok := firstFieldError(env.Error); ok {
			return &APIError{Kind: KindValidation, Status: status, Field: field, Message: msg}
		}
		return &APIError{Kind: KindValidation, Status: status, Message: env.Message}
	default:
		return &APIError{Kind: KindServer, Status: status, Message: env.Message}
	}
}

// Network wraps a transport-level failure (dial, timeout, bad payload).
func Network(err error) *APIError {
	return &APIError{Kind: KindNetwork, Err: err}
}

func firstFieldError(raw json.RawMessage) (field, msg string, ok bool) {
	if len(raw) == 0 {
		return "", "", false
	}
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return "", "", false
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0], fields[names[0]], true
}

// UserMessage extracts the text to show the user for any error coming back
// from a collaborator call, falling back to a generic message.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericMessage
}

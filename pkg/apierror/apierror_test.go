package apierror

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassifyValidationSurfacesFirstFieldMessage(t *testing.T) {
	body := []byte(`{"success":false,"message":"Validation failed","error":{"medico_id":"medico_id is required","cupos":"cupos must be at least 1"}}`)
	apiErr := Classify(http.StatusUnprocessableEntity, body)
	if apiErr.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %v", apiErr.Kind)
	}
	if apiErr.Field != "cupos" || apiErr.Message != "cupos must be at least 1" {
		t.Fatalf("expected first field by name order, got %q=%q", apiErr.Field, apiErr.Message)
	}
}

func TestClassifyStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindForbidden},
		{http.StatusBadRequest, KindValidation},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}
	for _, c := range cases {
		if got := Classify(c.status, nil).Kind; got != c.want {
			t.Fatalf("status %d: expected %v, got %v", c.status, c.want, got)
		}
	}
}

func TestUserMessage(t *testing.T) {
	apiErr := &APIError{Kind: KindValidation, Message: "cupos must be at least 1"}
	if got := UserMessage(apiErr); got != "cupos must be at least 1" {
		t.Fatalf("expected collaborator message, got %q", got)
	}
	if got := UserMessage(errors.New("dial tcp: timeout")); got != GenericMessage {
		t.Fatalf("expected generic fallback, got %q", got)
	}
	if got := UserMessage(Network(errors.New("dial tcp: timeout"))); got != GenericMessage {
		t.Fatalf("expected generic fallback for network errors, got %q", got)
	}
}

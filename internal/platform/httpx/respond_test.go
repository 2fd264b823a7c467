package httpx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/partydrop/partydrop/internal/platform/httpx"
	"github.com/partydrop/partydrop/internal/shared"
)

func TestRespondErrorMapsTaxonomy(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{shared.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("%w: name is required", shared.ErrInvalidInput), http.StatusBadRequest},
		{shared.ErrEmailInUse, http.StatusConflict},
		{shared.ErrInvalidCredentials, http.StatusUnauthorized},
		{shared.ErrAuthRequired, http.StatusUnauthorized},
		{shared.ErrInvalidSession, http.StatusUnauthorized},
		{shared.ErrNotFound, http.StatusNotFound},
		{errors.New("pg: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		res := httptest.NewRecorder()
		httpx.RespondError(res, tc.err)
		if res.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, res.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: body must be JSON: %v", tc.err, err)
		}
		if body["message"] == "" {
			t.Fatalf("%v: expected a message field", tc.err)
		}
	}
}

func TestInternalErrorsNeverLeak(t *testing.T) {
	res := httptest.NewRecorder()
	httpx.RespondError(res, errors.New("dial tcp 10.0.0.5:5432: password authentication failed"))

	var body map[string]string
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Internal server error" {
		t.Fatalf("internal detail leaked: %q", body["message"])
	}
}

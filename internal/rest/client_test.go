package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUnmarshalListAcceptsBothShapes(t *testing.T) {
	type row struct {
		ID int `json:"id"`
	}

	var fromArray []row
	if err := UnmarshalList([]byte(`[{"id":1},{"id":2}]`), &fromArray); err != nil {
		t.Fatalf("bare array: %v", err)
	}
	if len(fromArray) != 2 {
		t.Errorf("bare array rows = %d, want 2", len(fromArray))
	}

	var fromPage []row
	if err := UnmarshalList([]byte(`{"count":2,"results":[{"id":1},{"id":2}]}`), &fromPage); err != nil {
		t.Fatalf("paginated: %v", err)
	}
	if len(fromPage) != 2 {
		t.Errorf("paginated rows = %d, want 2", len(fromPage))
	}

	if err := UnmarshalList([]byte(`{"detail":"oops"}`), &fromPage); err == nil {
		t.Error("expected an error for an object without results")
	}
}

func TestDoJSONSendsAuthAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "abc" {
			t.Errorf("idempotency key = %q", got)
		}

		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["restaurant"] != float64(4) {
			t.Errorf("body = %v", body)
		}

		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")

	var out struct {
		OK bool `json:"ok"`
	}
	err := c.DoJSONHeaders(context.Background(), "POST", "/api/dining-orders/",
		map[string]string{"Idempotency-Key": "abc"},
		map[string]any{"restaurant": 4},
		&out,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK {
		t.Error("response not decoded")
	}
}

func TestDoJSONKeepsErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"restaurant is closed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")

	err := c.DoJSON(context.Background(), "POST", "/api/dining-orders/", map[string]int{"restaurant": 1}, nil)
	restErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if restErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", restErr.Status)
	}
	if restErr.Body != `{"detail":"restaurant is closed"}` {
		t.Errorf("body = %q", restErr.Body)
	}
}

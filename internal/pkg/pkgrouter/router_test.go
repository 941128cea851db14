package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/gostamp/internal/pkg/pkgerror"
)

type payload struct {
	Value string `json:"value"`
}

type teapot struct {
	Value string `json:"value"`
}

func (teapot) StatusCode() int {
	return http.StatusTeapot
}

func TestRouterEncodesPayloadDirectly(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})
	router.GET("/thing", func(ctx context.Context, r *http.Request) (any, error) {
		return payload{Value: "ok"}, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thing", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", ct)
	}

	var got payload
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Value != "ok" {
		t.Fatalf("unexpected body: %#v", got)
	}
}

func TestRouterStatusCodeHook(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})
	router.GET("/tea", func(ctx context.Context, r *http.Request) (any, error) {
		return teapot{Value: "brewing"}, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tea", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestRouterErrorCodec(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})
	router.GET("/bad", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, pkgerror.NewInvalidDate(errors.New("nope"))
	})
	router.GET("/boom", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, errors.New("plain error")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Invalid Date" {
		t.Fatalf("unexpected error body: %#v", body)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestRouterNotFoundEmptyBody(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestRouterMethodNotAllowedEmptyBody(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})
	router.GET("/thing", func(ctx context.Context, r *http.Request) (any, error) {
		return payload{Value: "ok"}, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/thing", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

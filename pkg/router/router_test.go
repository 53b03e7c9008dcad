package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/rasoi/pkg/router"
)

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/menu/{id}", "menu.show", func(w http.ResponseWriter, _ *http.Request) {})

	url, err := r.URL("menu.show", map[string]string{"id": "abc123"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/menu/abc123" {
		t.Errorf("url = %q, want /menu/abc123", url)
	}

	if _, err := r.URL("menu.show", nil); err == nil {
		t.Error("expected error for missing parameters")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestRouteMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	r.Get("/x", "x", func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	}, mw("first"), mw("second"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)

	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Delete("/carts/{id}", "carts.delete", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/carts/abc", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("DELETE status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/carts/abc", nil))
	if rec.Code == http.StatusOK {
		t.Error("GET must not match a DELETE-only route")
	}
}

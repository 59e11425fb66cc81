package wmf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("*hello* from [docs|http://d]"))
	}))
	defer srv.Close()

	var out strings.Builder
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Writer: &out,
		Theme:  plainTheme,
	})
	if err != nil {
		t.Fatalf("HTTPRender: %v", err)
	}
	if got := out.String(); got != "hello from docs (http://d)\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestHTTPRenderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Writer: &strings.Builder{},
	})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPRenderRejectsBadScheme(t *testing.T) {
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    "ftp://example.com/x",
		Writer: &strings.Builder{},
	})
	if err == nil || !strings.Contains(err.Error(), "scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}

func TestHTTPRenderRequiresURL(t *testing.T) {
	err := HTTPRender(context.Background(), HTTPRenderRequest{Writer: &strings.Builder{}})
	if err == nil {
		t.Fatalf("expected error for missing URL")
	}
}

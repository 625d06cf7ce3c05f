package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`<html><body><h1 class="title">Hello</h1></body></html>`))
	}))
	defer srv.Close()

	doc, err := NewClientWith(srv.Client()).Document(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc.Find("h1.title").Text())
}

func TestDocumentRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClientWith(srv.Client()).Document(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

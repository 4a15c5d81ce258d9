package renderservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsFilteredResume(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-remote"))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	pdf, err := c.Generate(context.Background(), "modern",
		&model.Resume{Basics: model.Basics{Name: "Ada"}},
		map[string]interface{}{"fontSize": "11pt"})
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-remote"), pdf)
	assert.Equal(t, "/v1/render", gotPath)
	assert.Equal(t, "modern", gotBody["template"])
	resume, _ := gotBody["resume"].(map[string]interface{})
	basics, _ := resume["basics"].(map[string]interface{})
	assert.Equal(t, "Ada", basics["name"])
}

func TestNewClientBaseURL(t *testing.T) {
	assert.Equal(t, "http://pdf.internal:9000", NewClient("http://pdf.internal:9000").BaseURL)
	assert.Equal(t, "http://render-service:8000", NewClient("").BaseURL)
}

func TestGenerateNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "template not found", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := c.Generate(context.Background(), "nope", &model.Resume{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestGenerateEmptyDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := c.Generate(context.Background(), "modern", &model.Resume{}, nil)
	assert.Error(t, err)
}

func TestGenerateContextCancelled(t *testing.T) {
	c := &Client{BaseURL: "http://127.0.0.1:1", HTTP: &http.Client{Timeout: 100 * time.Millisecond}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Generate(ctx, "modern", &model.Resume{}, nil)
	assert.Error(t, err)
}

package summarize

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/patrickprogramme/tubesum/internal/fetch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroLog() zerolog.Logger { return zerolog.Nop() }

type recorded struct {
	mu     sync.Mutex
	models []string
	auth   []string
	bodies []chatRequest
}

func (r *recorded) add(req chatRequest, auth string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, req.Model)
	r.auth = append(r.auth, auth)
	r.bodies = append(r.bodies, req)
}

func newProviderServer(t *testing.T, rec *recorded, handle func(model string, w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		require.NoError(t, json.Unmarshal(body, &req))
		rec.add(req, r.Header.Get("Authorization"))
		handle(req.Model, w)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProviderFallsThroughModels(t *testing.T) {
	rec := &recorded{}
	srv := newProviderServer(t, rec, func(model string, w http.ResponseWriter) {
		switch model {
		case "m404":
			http.NotFound(w, nil)
		case "m500":
			w.WriteHeader(http.StatusInternalServerError)
		case "mempty":
			_, _ = w.Write([]byte(`{"choices":[]}`))
		case "mslow":
			time.Sleep(300 * time.Millisecond)
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"trop tard"}}]}`))
		default:
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Résumé OK"}}]}`))
		}
	})

	p := &Provider{
		Client:       fetch.NewClient(fetch.Options{}),
		Endpoint:     srv.URL,
		APIKey:       "secret",
		Models:       []string{"m404", "m500", "mempty", "mslow", "good", "never"},
		ModelTimeout: 100 * time.Millisecond,
		Log:          zerolog.Nop(),
	}
	out, err := p.Summarize(context.Background(), "some transcript")
	require.NoError(t, err)
	assert.Equal(t, "Résumé OK", out)

	assert.Equal(t, []string{"m404", "m500", "mempty", "mslow", "good"}, rec.models)
	assert.Equal(t, "Bearer secret", rec.auth[0])

	req := rec.bodies[0]
	assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.NotEmpty(t, req.Messages[0].Content)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, userPrefix+"some transcript", req.Messages[1].Content)
}

func TestProviderAllModelsFail(t *testing.T) {
	rec := &recorded{}
	srv := newProviderServer(t, rec, func(_ string, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadGateway)
	})
	p := &Provider{Endpoint: srv.URL, APIKey: "k", Models: []string{"a", "b"}, Log: zerolog.Nop()}
	_, err := p.Summarize(context.Background(), "text")
	require.ErrorIs(t, err, ErrAllModelsFailed)
	require.ErrorIs(t, err, fetch.ErrStatus)
	assert.Len(t, rec.models, 2)
}

func TestProviderPreconditions(t *testing.T) {
	p := &Provider{Models: []string{"a"}}
	_, err := p.Summarize(context.Background(), "text")
	require.ErrorIs(t, err, ErrMissingAPIKey)

	p.APIKey = "k"
	_, err = p.Summarize(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyInput)

	p.Models = nil
	_, err = p.Summarize(context.Background(), "text")
	require.ErrorIs(t, err, ErrAllModelsFailed)
}

func TestSystemPromptEmbedded(t *testing.T) {
	prompt, err := SystemPrompt()
	require.NoError(t, err)
	assert.Contains(t, prompt, "summarizes YouTube transcripts")
}

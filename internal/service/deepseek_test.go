package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepSeekGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-chat", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "make me dinner", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"1. Recipe Name: Garlic Rice"}}]}`))
	}))
	defer server.Close()

	gen, err := NewDeepSeekGenerator("test-key", server.URL, "")
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "make me dinner")
	require.NoError(t, err)
	assert.Equal(t, "1. Recipe Name: Garlic Rice", text)
}

func TestDeepSeekGenerator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"non-200 status", http.StatusTooManyRequests, `{"error":"slow down"}`, "API request failed with status 429"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no response from API"},
		{"invalid json", http.StatusOK, `not json`, "failed to decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			gen, err := NewDeepSeekGenerator("test-key", server.URL, "deepseek-chat")
			require.NoError(t, err)

			_, err = gen.Generate(context.Background(), "p")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewDeepSeekGeneratorRequiresKey(t *testing.T) {
	_, err := NewDeepSeekGenerator("", "", "")
	assert.Error(t, err)
}

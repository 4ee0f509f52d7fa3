package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(url, 5*time.Second, nil)
}

func TestSend_PostsChatInputAndSessionID(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"output": "hello back"})
	}))
	defer srv.Close()

	reply, err := newTestClient(srv.URL).Send(context.Background(), "hello", "session-1")
	require.NoError(t, err)
	assert.Equal(t, "hello back", reply)
	assert.Equal(t, chatRequest{ChatInput: "hello", SessionID: "session-1"}, got)
}

func TestSend_ReplyFieldFallbackOrder(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"output wins", `{"output":"a","response":"b","message":"c","text":"d"}`, "a"},
		{"response", `{"response":"hi"}`, "hi"},
		{"message", `{"message":"m"}`, "m"},
		{"text", `{"text":"t"}`, "t"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			reply, err := newTestClient(srv.URL).Send(context.Background(), "x", "s")
			require.NoError(t, err)
			assert.Equal(t, tc.want, reply)
		})
	}
}

func TestSend_NoRecognizedField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Send(context.Background(), "x", "s")
	assert.ErrorIs(t, err, ErrNoReplyField)
}

func TestSend_NonSuccessStatusIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Send(context.Background(), "x", "s")
	require.Error(t, err)

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, "send request", clientErr.Op)
	assert.NotErrorIs(t, err, ErrNoReplyField)
}

func TestSend_UnparseableBodyIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Send(context.Background(), "x", "s")
	require.Error(t, err)

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, "decode reply", clientErr.Op)
}

func TestSend_ConnectionRefusedIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse everything

	_, err := newTestClient(srv.URL).Send(context.Background(), "x", "s")
	require.Error(t, err)

	var clientErr *ClientError
	assert.True(t, errors.As(err, &clientErr))
}

// Package assistant implements the webhook client for the landing page's
// conversation backend. One request is issued per outgoing message; the
// session id is passed explicitly by the caller rather than read from any
// ambient storage.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrNoReplyField is returned when the backend answers successfully but the
// payload carries none of the recognized reply fields.
var ErrNoReplyField = errors.New("reply contains no recognized field")

// ClientError wraps transport-level failures with the operation that failed.
type ClientError struct {
	Op  string
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// chatRequest is the webhook request body.
type chatRequest struct {
	ChatInput string `json:"chatInput"`
	SessionID string `json:"sessionId"`
}

// chatReply covers the reply field names the backend is known to use.
// The first non-empty field, in this order, is taken as the reply.
type chatReply struct {
	Output   string `json:"output"`
	Response string `json:"response"`
	Message  string `json:"message"`
	Text     string `json:"text"`
}

// Client talks to the conversation webhook.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a webhook client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts one message to the backend and returns the assistant's reply
// text. A non-2xx status or an unparseable body is a transport failure; a
// parseable body with no recognized reply field returns ErrNoReplyField.
func (c *Client) Send(ctx context.Context, text, sessionID string) (string, error) {
	bodyBytes, err := json.Marshal(chatRequest{ChatInput: text, SessionID: sessionID})
	if err != nil {
		return "", &ClientError{"marshal request", err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", &ClientError{"build request", err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("chat request failed", zap.Error(err))
		return "", &ClientError{"send request", err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("chat backend returned error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", &ClientError{"send request", fmt.Errorf("backend returned status %d", resp.StatusCode)}
	}

	var reply chatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		c.logger.Warn("chat reply parse failed", zap.Error(err))
		return "", &ClientError{"decode reply", err}
	}

	for _, candidate := range []string{reply.Output, reply.Response, reply.Message, reply.Text} {
		if candidate != "" {
			return candidate, nil
		}
	}

	c.logger.Warn("chat reply missing recognized fields")
	return "", ErrNoReplyField
}

package middleware

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/slot-booker/internal/httperr"
)

const (
	IdempotencyHeader         = "Idempotency-Key"
	IdempotencyReplayedHeader = "Idempotency-Replayed"
)

type CachedResponse struct {
	Pending     bool   `json:"pending,omitempty"`
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore keeps the first successful response per key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*CachedResponse, bool, error)
	// Reserve marks key as in flight. It returns false when the key is already known.
	Reserve(ctx context.Context, key string) (bool, error)
	Save(ctx context.Context, key string, resp *CachedResponse) error
	Release(ctx context.Context, key string) error
}

type responseCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

func (rc *responseCapture) WriteString(s string) (int, error) {
	rc.body.WriteString(s)
	return rc.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored 2xx response for a repeated key. A key
// still being processed is rejected with request_in_progress. Requests
// without the header are untouched.
func Idempotency(store IdempotencyStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if raw == "" {
			c.Next()
			return
		}

		key := c.Request.Method + ":" + c.FullPath() + ":" + actorOrAnonymous(c) + ":" + raw
		ctx := c.Request.Context()

		cached, found, err := store.Get(ctx, key)
		if err != nil {
			log.WithError(err).Warn("idempotency store unavailable")
			c.Next()
			return
		}
		if found {
			replay(c, cached)
			return
		}

		acquired, err := store.Reserve(ctx, key)
		if err != nil {
			log.WithError(err).Warn("idempotency store unavailable")
			c.Next()
			return
		}
		if !acquired {
			abortInProgress(c)
			return
		}

		capture := &responseCapture{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture
		c.Next()

		// the request context may already be expired
		bg := context.WithoutCancel(ctx)

		status := capture.Status()
		if status < 200 || status >= 300 {
			if err := store.Release(bg, key); err != nil {
				log.WithError(err).Warn("idempotency release failed")
			}
			return
		}

		if err := store.Save(bg, key, &CachedResponse{
			StatusCode:  status,
			ContentType: capture.Header().Get("Content-Type"),
			Body:        capture.body.Bytes(),
		}); err != nil {
			log.WithError(err).Warn("idempotency save failed")
		}
	}
}

func replay(c *gin.Context, cached *CachedResponse) {
	if cached.Pending {
		abortInProgress(c)
		return
	}
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(cached.StatusCode, cached.ContentType, cached.Body)
	c.Abort()
}

func abortInProgress(c *gin.Context) {
	httperr.Write(c, http.StatusConflict, httperr.CodeRequestInProgress, httperr.Message(httperr.CodeRequestInProgress))
	c.Abort()
}

func actorOrAnonymous(c *gin.Context) string {
	if id := c.GetString(ContextUserID); id != "" {
		return id
	}
	return "anonymous"
}

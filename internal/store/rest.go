package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/post"
)

// RestStore talks to the table-CRUD backend (the /posts resource of the
// db-utils service). Responses use the {data, count} / {data, message} /
// {error} envelopes that backend emits for every table.
type RestStore struct {
	baseURL  string
	client   *http.Client
	timeout  time.Duration
	pageSize int
}

// defaultListPageSize is the backend's maximum list response length.
const defaultListPageSize = 1000

func NewRestStore(baseURL string, timeout time.Duration) *RestStore {
	return &RestStore{
		baseURL:  baseURL,
		client:   &http.Client{},
		timeout:  timeout,
		pageSize: defaultListPageSize,
	}
}

type listEnvelope struct {
	Data  []models.Post `json:"data"`
	Count int           `json:"count"`
}

type dataEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (s *RestStore) List(ctx context.Context) ([]models.Post, error) {
	// The backend caps list responses, so walk pages until a short one.
	var all []models.Post
	for offset := 0; ; offset += s.pageSize {
		var out listEnvelope
		path := fmt.Sprintf("/posts?limit=%d&offset=%d", s.pageSize, offset)
		err := s.do(ctx, http.MethodGet, path, nil, func(status int, body []byte) error {
			if status != http.StatusOK {
				return s.backendError(status, body)
			}
			return json.Unmarshal(body, &out)
		})
		if err != nil {
			return nil, err
		}
		all = append(all, out.Data...)
		if len(out.Data) < s.pageSize {
			return all, nil
		}
	}
}

func (s *RestStore) Save(ctx context.Context, p models.Post) (models.Post, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return p, err
	}

	// Replace first; the backend answers 404 for an unknown ID and the
	// post is inserted instead.
	var notFound bool
	err = s.do(ctx, http.MethodPut, "/posts/"+p.ID, payload, func(status int, body []byte) error {
		switch status {
		case http.StatusOK:
			return nil
		case http.StatusNotFound:
			notFound = true
			return nil
		default:
			return s.backendError(status, body)
		}
	})
	if err != nil {
		return p, err
	}

	if notFound {
		err = s.do(ctx, http.MethodPost, "/posts", payload, func(status int, body []byte) error {
			if status != http.StatusCreated && status != http.StatusOK {
				return s.backendError(status, body)
			}
			return nil
		})
		if err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s *RestStore) Remove(ctx context.Context, id string) error {
	// A 404 means the row is already gone; delete-if-present semantics.
	return s.do(ctx, http.MethodDelete, "/posts/"+id, nil, func(status int, body []byte) error {
		if status != http.StatusOK && status != http.StatusNotFound {
			return s.backendError(status, body)
		}
		return nil
	})
}

// do runs one backend call with the configured per-call timeout and
// exponential backoff on transport errors and 5xx responses.
func (s *RestStore) do(ctx context.Context, method, path string, body []byte, handle func(status int, body []byte) error) error {
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(callCtx, method, s.baseURL+path, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := s.client.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return post.ErrGatewayTimeout
			}
			return fmt.Errorf("%w: %v", post.ErrGatewayUnavailable, err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", post.ErrGatewayUnavailable, err)
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return s.backendError(resp.StatusCode, respBody)
		}
		return backoffPermanentUnlessNil(handle(resp.StatusCode, respBody))
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	err := backoff.RetryNotify(operation, bo, func(err error, next time.Duration) {
		slog.Warn("gateway call failed, retrying", "method", method, "path", path, "error", err, "next_attempt_in", next.Round(time.Millisecond).String())
	})
	if errors.Is(err, context.DeadlineExceeded) {
		return post.ErrGatewayTimeout
	}
	return err
}

func (s *RestStore) backendError(status int, body []byte) error {
	var env dataEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return fmt.Errorf("%w: backend %d: %s", post.ErrGatewayUnavailable, status, env.Error)
	}
	return fmt.Errorf("%w: backend returned %d", post.ErrGatewayUnavailable, status)
}

// Responses the handler already classified should not be retried.
func backoffPermanentUnlessNil(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

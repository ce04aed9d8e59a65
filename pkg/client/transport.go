package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// dictionaryNotLoaded is the server message for a missing dictionary.
const dictionaryNotLoaded = "Slang dictionary not loaded"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Unwrap maps server answers onto the domain sentinels.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusBadRequest:
		return domain.ErrValidation
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status >= 500 && e.Message == dictionaryNotLoaded:
		return domain.ErrDictionaryUnavailable
	}
	return nil
}

// isClientError reports answers that another attempt or source cannot fix.
func isClientError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		var ve *domain.ValidationError
		return errors.As(err, &ve)
	}
	return apiErr.Status >= 400 && apiErr.Status < 500 && apiErr.Status != http.StatusTooManyRequests
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&env).
		SetError(&env).
		Post(path)
	return decode(resp, err, &env, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&env).
		Get(path)
	return decode(resp, err, &env, out)
}

func decode(resp *resty.Response, err error, env *envelope, out any) error {
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if resp.IsError() || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode()}
		if env.Error != nil {
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

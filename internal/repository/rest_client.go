package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"clinica-agenda/config"
	"clinica-agenda/internal/delivery/dto"
	"clinica-agenda/pkg/apierror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client is the shared HTTP transport for every collaborator gateway. It
// owns base URL, bearer token, envelope decoding and error classification;
// the per-entity repositories only know paths and payload shapes.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(cfg config.APIConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// do issues one JSON request and returns the decoded envelope. Every failure
// comes back as a *apierror.APIError so callers can switch on the closed
// variant set instead of inspecting response shapes.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*dto.Envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, apierror.Network(err)
		}
		reader = bytes.NewReader(buf)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, apierror.Network(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warnf("Collaborator request failed: %v", err)
		return nil, apierror.Network(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warnf("Failed to read collaborator response: %v", err)
		return nil, apierror.Network(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := apierror.Classify(resp.StatusCode, payload)
		logger.WithField("status", resp.StatusCode).Warnf("Collaborator rejected request: %v", apiErr)
		return nil, apiErr
	}

	var env dto.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		logger.Warnf("Failed to decode collaborator envelope: %v", err)
		return nil, apierror.Network(err)
	}
	return &env, nil
}

// decodeData unmarshals the envelope's data member into out.
func decodeData(env *dto.Envelope, out interface{}) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apierror.Network(err)
	}
	return nil
}

// Package api is the HTTP transport for the e-invoicing service. One helper
// per request/response shape, a single attempt per call, fixed timeouts.
package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "einvoice.api")

const (
	// ConvertTimeout applies to payload-bearing calls (conversion,
	// validation, extraction, batch).
	ConvertTimeout = 120 * time.Second
	// LookupTimeout applies to simple lookups like the user endpoint.
	LookupTimeout = 30 * time.Second

	apiKeyHeader = "X-API-KEY"
)

type Client interface {
	PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error
	PostJSONText(ctx context.Context, endpoint string, body interface{}) (string, error)
	PostJSONBinary(ctx context.Context, endpoint string, body interface{}) ([]byte, error)
	PostXML(ctx context.Context, endpoint string, xml string, result interface{}) error
	PostBinary(ctx context.Context, endpoint string, data []byte, contentType string, result interface{}) error
	GetJSON(ctx context.Context, endpoint string, result interface{}) error
}

type client struct {
	convert *resty.Client
	lookup  *resty.Client
	debug   bool
}

// New builds a transport bound to one base URL and one API key. Every request
// carries the key header; nothing else is shared between calls.
func New(baseURL, apiKey string, debug bool) Client {
	newResty := func(timeout time.Duration) *resty.Client {
		return resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader(apiKeyHeader, apiKey).
			SetRetryCount(0)
	}
	return &client{
		convert: newResty(ConvertTimeout),
		lookup:  newResty(LookupTimeout),
		debug:   debug,
	}
}

func (c *client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.convert.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		SetResult(result).
		Post(endpoint)

	c.printTraceInfo(endpoint, resp, err)
	return checkError(resp, err)
}

func (c *client) PostJSONText(ctx context.Context, endpoint string, body interface{}) (string, error) {
	resp, err := c.convert.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/xml").
		SetBody(body).
		Post(endpoint)

	c.printTraceInfo(endpoint, resp, err)
	if err := checkError(resp, err); err != nil {
		return "", err
	}
	return resp.String(), nil
}

func (c *client) PostJSONBinary(ctx context.Context, endpoint string, body interface{}) ([]byte, error) {
	resp, err := c.convert.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/octet-stream").
		SetBody(body).
		Post(endpoint)

	c.printTraceInfo(endpoint, resp, err)
	if err := checkError(resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *client) PostXML(ctx context.Context, endpoint string, xml string, result interface{}) error {
	resp, err := c.convert.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/xml; charset=utf-8").
		SetHeader("Accept", "application/json").
		SetBody(xml).
		SetResult(result).
		Post(endpoint)

	c.printTraceInfo(endpoint, resp, err)
	return checkError(resp, err)
}

func (c *client) PostBinary(ctx context.Context, endpoint string, data []byte, contentType string, result interface{}) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	resp, err := c.convert.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("Accept", "application/json").
		SetBody(data).
		SetResult(result).
		Post(endpoint)

	c.printTraceInfo(endpoint, resp, err)
	return checkError(resp, err)
}

func (c *client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.lookup.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(result).
		Get(endpoint)

	c.printTraceInfo(endpoint, resp, err)
	return checkError(resp, err)
}

func checkError(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		body := resp.String()

		var details errorBody
		if body != "" {
			_ = json.Unmarshal([]byte(body), &details)
		}

		return &RequestError{
			StatusCode:  resp.StatusCode(),
			Body:        body,
			Message:     details.Message,
			FieldErrors: details.Errors,
		}
	}
	return nil
}

func (c *client) printTraceInfo(endpoint string, resp *resty.Response, err error) {
	if !c.debug || resp == nil {
		return
	}
	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"status":   resp.StatusCode(),
		"time":     resp.Time(),
		"error":    err,
	}).Debug("API call")
}

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

const DefaultBaseURL = "https://prn-232-be.vercel.app/api/v1"

// Client sends requests to the rental API and decodes the response envelope.
type Client struct {
	transport *httptransport.Runtime
	schemes   []string
	tokens    ports.TokenSource
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
	formats   strfmt.Registry
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		rt := httptransport.NewWithClient(c.transport.Host, c.transport.BasePath, c.schemes, hc)
		rt.Consumers = c.transport.Consumers
		c.transport = rt
	}
}

func WithMetrics(m ports.MetricsPort) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func New(baseURL string, tokens ports.TokenSource, logger ports.LoggerPort, opts ...Option) (*Client, error) {
	const op = "apiclient.New"

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, baseURL)
	}
	basePath := strings.TrimRight(u.Path, "/")
	if basePath == "" {
		basePath = "/"
	}

	rt := httptransport.New(u.Host, basePath, []string{u.Scheme})
	// Bodies are parsed as JSON whatever content type the server declares.
	rt.Consumers[runtime.DefaultMime] = runtime.JSONConsumer()
	rt.Consumers["*/*"] = runtime.JSONConsumer()
	rt.Consumers[runtime.TextMime] = runtime.JSONConsumer()
	rt.Consumers[runtime.HTMLMime] = runtime.JSONConsumer()

	c := &Client{
		transport: rt,
		schemes:   []string{u.Scheme},
		tokens:    tokens,
		logger:    logger,
		formats:   strfmt.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithTokens returns a copy of the client that authenticates with tokens.
func (c *Client) WithTokens(tokens ports.TokenSource) *Client {
	cp := *c
	cp.tokens = tokens
	return &cp
}

// Do performs req and decodes the envelope whatever the HTTP status. An
// unreachable server or a body that is not a JSON envelope yields an error
// wrapping domain.ErrUnreachable.
func (c *Client) Do(ctx context.Context, req ports.APIRequest) (*domain.Envelope, error) {
	const op = "apiclient.Do"
	start := time.Now()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var auth runtime.ClientAuthInfoWriter
	token := req.BearerToken
	if token == "" && c.tokens != nil {
		token = c.tokens.GetAccessToken(ctx)
	}
	if token != "" {
		auth = httptransport.BearerToken(token)
	}

	var status int
	result, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 method + " " + req.Path,
		Method:             method,
		PathPattern:        req.Path,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Schemes:            c.schemes,
		Params:             requestWriter(req),
		Reader: runtime.ClientResponseReaderFunc(func(resp runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
			status = resp.Code()
			env := &domain.Envelope{}
			if err := consumer.Consume(resp.Body(), env); err != nil {
				return nil, fmt.Errorf("%w: status %d: %v", domain.ErrMalformedEnvelope, resp.Code(), err)
			}
			return env, nil
		}),
		AuthInfo: auth,
		Context:  ctx,
	})
	if err != nil {
		c.record(method, req.Path, "transport_error", start)
		c.logger.Error("Rental API call failed", map[string]interface{}{
			"method": method,
			"path":   req.Path,
			"status": status,
			"error":  err.Error(),
		})
		if errors.Is(err, domain.ErrMalformedEnvelope) {
			return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrUnreachable, err)
		}
		return nil, fmt.Errorf("%s: %w: %v", op, domain.ErrUnreachable, err)
	}

	env, ok := result.(*domain.Envelope)
	if !ok {
		c.record(method, req.Path, "transport_error", start)
		return nil, fmt.Errorf("%s: %w: unexpected result %T", op, domain.ErrUnreachable, result)
	}

	outcome := "ok"
	if !env.Success {
		outcome = "failed"
	}
	c.record(method, req.Path, outcome, start)
	c.logger.Debug("Rental API call", map[string]interface{}{
		"method":  method,
		"path":    req.Path,
		"status":  status,
		"success": env.Success,
	})
	return env, nil
}

func (c *Client) record(method, path, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordAPICall(method, path, outcome, time.Since(start))
	}
}

func requestWriter(req ports.APIRequest) runtime.ClientRequestWriter {
	return runtime.ClientRequestWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
		if err := r.SetHeaderParam(runtime.HeaderContentType, runtime.JSONMime); err != nil {
			return err
		}
		for k, v := range req.Headers {
			if err := r.SetHeaderParam(k, v); err != nil {
				return err
			}
		}
		for k, v := range req.PathParams {
			if err := r.SetPathParam(k, v); err != nil {
				return err
			}
		}
		for k, values := range req.Query {
			if err := r.SetQueryParam(k, values...); err != nil {
				return err
			}
		}
		if req.Body != nil {
			if err := r.SetBodyParam(req.Body); err != nil {
				return err
			}
		}
		return nil
	})
}

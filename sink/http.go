// FILE: lixenwraith/tlog/sink/http.go
package sink

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	defaultHTTPTimeout   = 5 * time.Second
	defaultMaxBatchBytes = 256 * 1024
)

// HTTPOptions configures an HTTPSink
type HTTPOptions struct {
	URL           string
	Timeout       time.Duration
	MaxBatchBytes int              // Batch is posted early once it grows past this
	Client        *fasthttp.Client // Optional preconfigured client

	// Authorization, all optional. JWTSecret wins over AuthToken.
	AuthToken string        // Static bearer token
	JWTSecret []byte        // HS256 signing key for per-batch tokens
	JWTIssuer string        // "iss" claim
	JWTTTL    time.Duration // Token lifetime, default 5m
}

// HTTPSink batches lines and POSTs them as text/plain on Flush.
// A failed batch is dropped; the error is returned to the caller.
type HTTPSink struct {
	url      string
	timeout  time.Duration
	maxBatch int
	client   *fasthttp.Client
	batch    bytes.Buffer
	lines    int
	auth     *bearer // Nil without authorization
}

// NewHTTP creates an HTTP sink
func NewHTTP(opts HTTPOptions) (*HTTPSink, error) {
	if !strings.HasPrefix(opts.URL, "http://") && !strings.HasPrefix(opts.URL, "https://") {
		return nil, fmt.Errorf("sink: http url must start with http:// or https://, got '%s'", opts.URL)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultHTTPTimeout
	}
	if opts.MaxBatchBytes <= 0 {
		opts.MaxBatchBytes = defaultMaxBatchBytes
	}

	client := opts.Client
	if client == nil {
		client = &fasthttp.Client{
			MaxConnsPerHost:               2,
			MaxIdleConnDuration:           10 * time.Second,
			ReadTimeout:                   opts.Timeout,
			WriteTimeout:                  opts.Timeout,
			DisableHeaderNamesNormalizing: true,
		}
	}

	return &HTTPSink{
		url:      opts.URL,
		timeout:  opts.Timeout,
		maxBatch: opts.MaxBatchBytes,
		client:   client,
		auth:     newBearer(opts),
	}, nil
}

// WriteLine implements Sink
func (s *HTTPSink) WriteLine(line string) error {
	s.batch.WriteString(line)
	s.batch.WriteByte('\n')
	s.lines++
	if s.batch.Len() >= s.maxBatch {
		return s.Flush()
	}
	return nil
}

// Flush implements Sink
func (s *HTTPSink) Flush() error {
	if s.lines == 0 {
		return nil
	}
	lines := s.lines
	defer func() {
		s.batch.Reset()
		s.lines = 0
	}()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("text/plain; charset=utf-8")
	req.SetBody(s.batch.Bytes())
	if s.auth != nil {
		token, err := s.auth.token(time.Now())
		if err != nil {
			return fmt.Errorf("sink: http auth for %d lines failed: %w", lines, err)
		}
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	}

	if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
		return fmt.Errorf("sink: http post of %d lines failed: %w", lines, err)
	}

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return fmt.Errorf("sink: http post of %d lines rejected with status %d", lines, code)
	}
	return nil
}

// Close implements Sink
func (s *HTTPSink) Close() error {
	err := s.Flush()
	s.client.CloseIdleConnections()
	return err
}

// FILE: lixenwraith/tlog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/tlog"
)

// Builder creates logger adapters for gnet and fasthttp.
// It can use an existing *tlog.Logger instance or create a new one from a *tlog.Config
type Builder struct {
	logger *tlog.Logger
	cfg    *tlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *tlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("tlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Used only if no logger was given via WithLogger; nil means defaults
func (b *Builder) WithConfig(cfg *tlog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*tlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l, err := tlog.NewLogger(b.cfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying logger, creating it on first use
func (b *Builder) GetLogger() (*tlog.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
//	appLogger, err := tlog.NewBuilder().File("app.log").Build()
//	if err != nil { /* handle error */ }
//	defer appLogger.Quit()
//
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	gnetLogger, _ := builder.BuildGnet()
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")

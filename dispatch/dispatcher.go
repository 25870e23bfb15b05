// Package dispatch issues calls against the remote comment API and routes
// their asynchronous outcomes back to the caller's callbacks.
//
// A call never blocks. Get sends a request whose response is a script that
// invokes a named handler; the name is derived from the call's correlation id
// and resolved through the Correlator. Post submits a hidden form whose
// response cannot be read; completion is all it can report. Every callback
// runs on the Loop, one turn at a time.
package dispatch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ScriptFetcher fetches a script resource. The body is expected to invoke a
// named callback with a JSON payload.
type ScriptFetcher interface {
	FetchScript(ctx context.Context, endpoint string, query map[string]string) ([]byte, error)
}

// FormSubmitter submits a form into a named target. It returns once the
// target has finished loading, whatever it loaded.
type FormSubmitter interface {
	SubmitForm(ctx context.Context, action, target string, fields map[string]string) error
}

// LogFunc receives one human-readable line per call start and completion.
type LogFunc func(string)

type Config struct {
	BaseURL     string
	Version     string
	Namespace   string
	SettleDelay time.Duration
}

// DefaultConfig matches the public API endpoint.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "http://disqus.com/api",
		Version:     "1.1",
		Namespace:   "disqus",
		SettleDelay: time.Millisecond,
	}
}

type Dispatcher struct {
	ctx        context.Context
	cfg        Config
	scripts    ScriptFetcher
	forms      FormSubmitter
	correlator *Correlator
	loop       *Loop
	document   *Document
	logger     *zap.Logger

	sinkMu sync.RWMutex
	sink   LogFunc
}

// New returns a Dispatcher. ctx bounds the transports for the lifetime of the
// process; individual calls cannot be cancelled.
func New(ctx context.Context, cfg Config, scripts ScriptFetcher, forms FormSubmitter, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		ctx:        ctx,
		cfg:        cfg,
		scripts:    scripts,
		forms:      forms,
		correlator: NewCorrelator(cfg.Namespace),
		loop:       NewLoop(logger),
		document:   NewDocument(),
		logger:     logger,
		sink:       func(string) {},
	}
}

func (d *Dispatcher) Loop() *Loop { return d.loop }

func (d *Dispatcher) Correlator() *Correlator { return d.correlator }

func (d *Dispatcher) Document() *Document { return d.document }

// SetSink installs fn as the logging sink. A nil fn restores the no-op sink.
func (d *Dispatcher) SetSink(fn LogFunc) {
	if fn == nil {
		fn = func(string) {}
	}
	d.sinkMu.Lock()
	d.sink = fn
	d.sinkMu.Unlock()
}

// Endpoint is the URL a method is invoked at.
func (d *Dispatcher) Endpoint(method string) string {
	return strings.TrimSuffix(d.cfg.BaseURL, "/") + "/" + method + "/"
}

func (d *Dispatcher) log(format string, args ...interface{}) {
	d.sinkMu.RLock()
	sink := d.sink
	d.sinkMu.RUnlock()

	sink(fmt.Sprintf(format, args...))
}

// Package transport carries dispatch calls over HTTP with fasthttp.
package transport

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

type Options struct {
	Name            string
	MaxConnsPerHost int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	// Dial overrides how connections are opened, e.g. for in-memory listeners.
	Dial fasthttp.DialFunc
}

// Remote implements dispatch.ScriptFetcher and dispatch.FormSubmitter.
type Remote struct {
	client *fasthttp.Client
	logger *zap.Logger
}

func NewRemote(opts Options, logger *zap.Logger) *Remote {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Remote{
		client: &fasthttp.Client{
			Name:            opts.Name,
			MaxConnsPerHost: opts.MaxConnsPerHost,
			ReadTimeout:     opts.ReadTimeout,
			WriteTimeout:    opts.WriteTimeout,
			Dial:            opts.Dial,
		},
		logger: logger,
	}
}

// FetchScript GETs endpoint with query and returns the script body. Only a
// 2xx response counts as a script; anything else never executes.
func (r *Remote) FetchScript(ctx context.Context, endpoint string, query map[string]string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "text/javascript, application/javascript")
	args := req.URI().QueryArgs()
	for _, k := range sortedKeys(query) {
		args.Set(k, query[k])
	}

	if err := r.client.Do(req, resp); err != nil {
		return nil, errors.Wrapf(err, "GET %s", endpoint)
	}
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, errors.Errorf("GET %s: unexpected status %d", endpoint, code)
	}

	r.logger.Debug("Fetched script",
		zap.String("endpoint", endpoint),
		zap.Int("bytes", len(resp.Body())))
	return append([]byte(nil), resp.Body()...), nil
}

// SubmitForm POSTs fields url-encoded to action. The body is discarded. The
// target name travels as a header so a server can tell submissions apart.
func (r *Remote) SubmitForm(ctx context.Context, action, target string, fields map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	for _, k := range sortedKeys(fields) {
		form.Set(k, fields[k])
	}

	req.SetRequestURI(action)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/x-www-form-urlencoded")
	req.Header.Set("X-Form-Target", target)
	req.SetBody(form.QueryString())

	if err := r.client.Do(req, resp); err != nil {
		return errors.Wrapf(err, "POST %s", action)
	}
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return errors.Errorf("POST %s: unexpected status %d", action, code)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package dispatch

import (
	"bytes"
	"encoding/json"

	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"disqus-client/models"
)

// Get issues a readable call. The response script invokes the handler
// registered for this call, which hands Success the shaped payload or Failure
// the remote code. A nil shape passes the raw payload through when T is
// json.RawMessage. Parameters that cannot be encoded fail the call with
// invalid-parameter without sending it.
func Get[T any](d *Dispatcher, call Call[T], method string, fixed Params, shape func([]byte) (T, error)) *Pending {
	id := d.correlator.Begin()
	p := newPending(id, method, d.loop)
	name := d.correlator.HandlerName(id)

	query, err := Merge(Params{
		"api_version":         d.cfg.Version,
		"api_response_format": "jsonp:" + name,
	}, fixed, call.Options).Strings()
	if err != nil {
		d.reject(p, err, func() {
			if call.Failure != nil {
				call.Failure(models.CodeInvalidParameter)
			}
		})
		return p
	}

	d.correlator.Register(id, func(resp models.Response) {
		defer p.settle()

		if !resp.Succeeded {
			d.log("%s (%d) failed (%s)", method, id, resp.Code)
			if call.Failure != nil {
				call.Failure(resp.Code)
			}
			return
		}

		d.log("%s (%d) succeeded", method, id)
		if call.Success == nil {
			return
		}
		v, err := applyShape(resp.Message, shape)
		if err != nil {
			d.logger.Warn("Failed to shape response",
				zap.Error(err),
				zap.String("method", method),
				zap.Int64("call_id", id))
			if call.Failure != nil {
				call.Failure(models.CodeMalformedResponse)
			}
			return
		}
		call.Success(v)
	})

	d.log("Invoking %s (%d)", method, id)
	go d.fetch(p, query)

	return p
}

func applyShape[T any](raw []byte, shape func([]byte) (T, error)) (T, error) {
	if shape != nil {
		return shape(raw)
	}
	if v, ok := any(json.RawMessage(raw)).(T); ok {
		return v, nil
	}
	var zero T
	return zero, errors.Errorf("no shape for %T", zero)
}

func (d *Dispatcher) fetch(p *Pending, query map[string]string) {
	body, err := d.scripts.FetchScript(d.ctx, d.Endpoint(p.Method()), query)
	if err != nil {
		d.logger.Warn("Script fetch failed, call stays pending",
			zap.Error(err),
			zap.String("method", p.Method()),
			zap.Int64("call_id", p.ID()))
		p.lose(err)
		return
	}

	d.loop.Post(func() {
		if err := d.ExecScript(body); err != nil {
			d.logger.Warn("Failed to execute response script",
				zap.Error(err),
				zap.String("method", p.Method()),
				zap.Int64("call_id", p.ID()))
			p.lose(err)
		}
	})
}

// reject fails a call whose request could not be built. The request is never
// sent; fail runs on the loop.
func (d *Dispatcher) reject(p *Pending, err error, fail func()) {
	d.logger.Warn("Rejected call parameters",
		zap.Error(err),
		zap.String("method", p.Method()),
		zap.Int64("call_id", p.ID()))
	d.log("%s (%d) rejected (%s)", p.Method(), p.ID(), models.CodeInvalidParameter)

	p.reject(err)
	d.loop.Post(func() {
		p.settle()
		fail()
	})
}

// ExecScript runs a response script: it decodes the envelope and invokes the
// handler the script names. A script naming a handler that already fired is
// ignored.
func (d *Dispatcher) ExecScript(body []byte) error {
	name, payload, err := ParseScript(body)
	if err != nil {
		return err
	}

	var resp models.Response
	if err := easyjson.Unmarshal(payload, &resp); err != nil {
		return errors.Wrapf(err, "decode response for %s", name)
	}

	id, ok := d.correlator.Resolve(name)
	if !ok {
		return errors.Errorf("no handler named %s", name)
	}
	if !d.correlator.Deliver(id, resp) {
		d.logger.Debug("Dropped response for settled call",
			zap.String("handler", name),
			zap.Int64("call_id", id))
	}
	return nil
}

// ParseScript splits a body of the form `name(payload);` into its callback
// name and payload.
func ParseScript(body []byte) (string, []byte, error) {
	s := bytes.TrimSpace(body)
	s = bytes.TrimSpace(bytes.TrimSuffix(s, []byte(";")))

	open := bytes.IndexByte(s, '(')
	if open <= 0 || s[len(s)-1] != ')' {
		return "", nil, errors.Errorf("not a callback invocation: %.40q", s)
	}
	name := string(bytes.TrimSpace(s[:open]))
	return name, s[open+1 : len(s)-1], nil
}

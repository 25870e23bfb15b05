package dispatch

import (
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Post issues a write-only call through a hidden form. Once the form's target
// has loaded and the settle delay has passed, the surface is removed and
// Success runs with no data. Failure is never invoked: the response cannot be
// read. A call whose parameters cannot be encoded is never submitted; it
// settles with no callback and Err reports why.
func (d *Dispatcher) Post(call Call[Void], method string, fixed Params) *Pending {
	id := d.correlator.Begin()
	p := newPending(id, method, d.loop)

	fields, err := Merge(Params{
		"api_version":         d.cfg.Version,
		"api_response_format": "jsonp:void",
	}, fixed, call.Options).Strings()
	if err != nil {
		d.reject(p, err, func() {})
		return p
	}

	s := &Surface{
		ID:     id,
		Target: "_target" + strconv.FormatInt(id, 10),
		Action: d.Endpoint(method),
		Fields: fields,
	}
	d.document.Attach(s)

	d.log("Invoking %s (%d)", method, id)
	go d.submit(s, method, func() {
		d.log("%s (%d) done", method, id)
		d.document.Remove(s)
		p.settle()
		if call.Success != nil {
			call.Success(Void{})
		}
	})

	return p
}

func (d *Dispatcher) submit(s *Surface, method string, loaded func()) {
	if err := d.forms.SubmitForm(d.ctx, s.Action, s.Target, s.Fields); err != nil {
		d.logger.Debug("Form target loaded with an error",
			zap.Error(err),
			zap.String("method", method),
			zap.Int64("call_id", s.ID))
	}

	time.AfterFunc(d.cfg.SettleDelay, func() {
		d.loop.Post(loaded)
	})
}

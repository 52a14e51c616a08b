package delivery

import (
	"context"
	"errors"
	"strings"

	"team-lifecycle-backend/internal/service"
)

// FanoutSink offers each notification to every sink in order.
// It reports delivered if any sink delivered and fails only when every sink failed.
type FanoutSink struct {
	sinks []service.NotificationSink
}

var _ service.NotificationSink = (*FanoutSink)(nil)

// NewFanoutSink builds a fanout over the non-nil sinks
func NewFanoutSink(sinks ...service.NotificationSink) *FanoutSink {
	f := &FanoutSink{}
	for _, s := range sinks {
		if s != nil {
			f.sinks = append(f.sinks, s)
		}
	}
	return f
}

// Notify implements service.NotificationSink.
func (f *FanoutSink) Notify(ctx context.Context, n service.Notification) (service.Delivery, error) {
	var (
		refs []string
		errs []error
	)
	for _, s := range f.sinks {
		d, err := s.Notify(ctx, n)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if d.Delivered {
			refs = append(refs, d.Ref)
		}
	}

	if len(refs) > 0 {
		return service.Delivery{Delivered: true, Ref: strings.Join(refs, ",")}, nil
	}
	if len(f.sinks) > 0 && len(errs) == len(f.sinks) {
		return service.Delivery{}, errors.Join(errs...)
	}
	return service.Delivery{}, nil
}

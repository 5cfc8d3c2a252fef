package observability

import (
	"context"

	"integra-recife/pkg/datemath"
	"integra-recife/pkg/log"
)

type dateReporter struct {
	l log.Logger
	o Observer
}

// NewDateReporter logs unparseable event dates as warnings and counts them.
func NewDateReporter(l log.Logger, o Observer) datemath.Reporter {
	if o == nil {
		o = NewNopObserver()
	}
	return &dateReporter{l: l, o: o}
}

func (r *dateReporter) ReportUnparseable(raw string) {
	r.l.Warnf(context.Background(), "observability.ReportUnparseable: unrecognized event date %q, using now", raw)
	r.o.RecordUnparseableDate()
}

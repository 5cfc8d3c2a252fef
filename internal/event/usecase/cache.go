package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"strconv"

	"integra-recife/internal/calendar"
	"integra-recife/internal/model"
)

// indexFor returns the date index of events, building it on a cache miss.
// The cache key is a fingerprint of the collection, so any change forces a rebuild.
func (uc *implUseCase) indexFor(ctx context.Context, events []model.Event) *calendar.Index {
	key := fingerprint(events)
	if idx, ok := uc.indexes.Get(key); ok {
		uc.observer.RecordIndexLookup(true)
		return idx
	}

	uc.observer.RecordIndexLookup(false)
	idx := calendar.Build(events, uc.parser)
	uc.indexes.Add(key, idx)
	uc.l.Debugf(ctx, "uc.indexFor: built index of %d events", idx.Len())
	return idx
}

func fingerprint(events []model.Event) string {
	h := fnv.New64a()
	for _, ev := range events {
		io.WriteString(h, strconv.FormatInt(ev.ID, 10))
		h.Write([]byte{0})
		io.WriteString(h, ev.RawDate)
		h.Write([]byte{0})
		io.WriteString(h, string(ev.Status))
		h.Write([]byte{0})
		io.WriteString(h, strconv.FormatInt(ev.UpdatedAt.UnixNano(), 10))
		h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%d:%x", len(events), h.Sum64())
}

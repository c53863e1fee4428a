package notify

import (
	"context"
	"time"
)

// JournalEntry captures one dispatch attempt for diagnostics. It is not an
// outbox: nothing ever replays a journaled entry.
type JournalEntry struct {
	OrderID      string
	Channels     []string
	Failures     []string
	DispatchedAt time.Time
}

// Journal records dispatch outcomes. Implementations should be cheap;
// recording errors are logged and dropped by the dispatcher.
type Journal interface {
	Record(ctx context.Context, entry JournalEntry) error
}

// NoopJournal discards entries.
var NoopJournal Journal = noopJournal{}

type noopJournal struct{}

func (noopJournal) Record(_ context.Context, _ JournalEntry) error { return nil }

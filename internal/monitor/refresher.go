package monitor

import (
	"context"
	"time"

	"roswatch/internal/logging"
	"roswatch/internal/syncval"
)

// DefaultRefreshInterval is how often the graph is re-listed. One
// second keeps the lists fresh without hammering the ros2 daemon.
const DefaultRefreshInterval = time.Second

// Refresher polls a provider's ListItems on an interval and publishes
// the result through a shared value. It is the background unit that
// keeps list windows' ProduceContent cheap: the render path only ever
// snapshots Items.
type Refresher struct {
	provider Provider
	interval time.Duration
	items    *syncval.Value[[]string]

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher creates a stopped refresher. Items starts empty.
func NewRefresher(p Provider, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		provider: p,
		interval: interval,
		items:    syncval.New([]string{}),
	}
}

// Items is the shared label source to hand to a ListWindow.
func (r *Refresher) Items() *syncval.Value[[]string] {
	return r.items
}

// Start launches the poll loop. The first fetch happens immediately so
// the UI is not blank for a full interval.
func (r *Refresher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(ctx)
}

// Stop signals the loop and waits for it to exit. Idempotent on a
// never-started refresher.
func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
}

func (r *Refresher) loop(ctx context.Context) {
	defer close(r.done)
	r.fetch(ctx)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetch(ctx)
		}
	}
}

// fetch publishes a fresh listing. On failure the last known items are
// kept; a flickering empty list helps nobody.
func (r *Refresher) fetch(ctx context.Context) {
	items, err := r.provider.ListItems(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logging.Warnf("list refresh failed: %v", err)
		}
		return
	}
	r.items.Set(items)
}

package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeProvider serves a mutable listing for refresher tests.
type fakeProvider struct {
	mu    sync.Mutex
	items []string
	err   error
}

func (f *fakeProvider) set(items []string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
	f.err = err
}

func (f *fakeProvider) ListItems(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.items...), nil
}

func (f *fakeProvider) Describe(ctx context.Context, item string) (string, error) {
	return "", nil
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRefresherFetchesImmediately(t *testing.T) {
	fp := &fakeProvider{items: []string{"/talker"}}
	// A long interval proves the first fetch does not wait a tick.
	r := NewRefresher(fp, time.Hour)
	r.Start()
	defer r.Stop()

	waitFor(t, func() bool {
		items := r.Items().Get()
		return len(items) == 1 && items[0] == "/talker"
	})
}

func TestRefresherPicksUpChanges(t *testing.T) {
	fp := &fakeProvider{items: []string{"/a"}}
	r := NewRefresher(fp, 5*time.Millisecond)
	r.Start()
	defer r.Stop()

	waitFor(t, func() bool { return len(r.Items().Get()) == 1 })
	fp.set([]string{"/a", "/b"}, nil)
	waitFor(t, func() bool { return len(r.Items().Get()) == 2 })
}

func TestRefresherKeepsLastItemsOnError(t *testing.T) {
	fp := &fakeProvider{items: []string{"/a"}}
	r := NewRefresher(fp, 5*time.Millisecond)
	r.Start()
	defer r.Stop()

	waitFor(t, func() bool { return len(r.Items().Get()) == 1 })
	fp.set(nil, errors.New("daemon restarting"))
	time.Sleep(25 * time.Millisecond)
	require.Equal(t, []string{"/a"}, r.Items().Get())

	// Recovery resumes publishing.
	fp.set([]string{"/a", "/b"}, nil)
	waitFor(t, func() bool { return len(r.Items().Get()) == 2 })
}

func TestRefresherStop(t *testing.T) {
	fp := &fakeProvider{items: []string{"/a"}}
	r := NewRefresher(fp, time.Millisecond)
	r.Start()
	r.Stop()
	r.Stop() // idempotent

	// No fetches after Stop.
	fp.set([]string{"/a", "/b"}, nil)
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, []string{"/a"}, r.Items().Get())
}

func TestRefresherStopWithoutStart(t *testing.T) {
	r := NewRefresher(&fakeProvider{}, time.Second)
	r.Stop() // must not panic or hang
}

func TestRefresherDefaultInterval(t *testing.T) {
	r := NewRefresher(&fakeProvider{}, 0)
	require.Equal(t, DefaultRefreshInterval, r.interval)
}

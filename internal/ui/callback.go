package ui

import (
	"context"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("roswatch/ui")

// Callback is a named unit of work bound to a target window. Run maps
// the activated label to display content; it may be slow (subprocess,
// network) and is always invoked from a background command, never from
// the input or render path.
type Callback interface {
	Name() string
	TargetWindow() string
	Run(ctx context.Context, input string) (string, error)
}

// ModeCycler is implemented by stateful callbacks that support more
// than one operation (e.g. a one-shot info query vs a continuous
// subscription). CycleMode switches to the next mode and returns its
// name for display.
type ModeCycler interface {
	CycleMode() string
}

// Streamer is implemented by callbacks whose current mode is a
// continuous subscription. Stream emits output lines until ctx is
// cancelled; the returned channel is closed when the stream ends.
type Streamer interface {
	Stream(ctx context.Context, input string) (<-chan string, error)
	// Streaming reports whether the callback's current mode is the
	// streaming one; when false, activations use Run.
	Streaming() bool
}

// streamBufferLines bounds how much streamed output a binding retains.
const streamBufferLines = 1000

// Binding pairs a Callback with the bookkeeping the Session needs to
// supersede and stop invocations: a generation counter and the cancel
// function for the in-flight context. Starting a new invocation cancels
// the previous one, and a background unit re-checks its generation
// before writing, so a stale result never overwrites a newer one.
type Binding struct {
	Callback Callback

	mu     sync.Mutex
	gen    int64
	ctx    context.Context
	cancel context.CancelFunc
	notify chan struct{}
}

// Bind wraps a callback for use in a ListWindow.
func Bind(cb Callback) *Binding {
	return &Binding{Callback: cb}
}

// begin supersedes any in-flight invocation: the previous context is
// cancelled and a fresh context, generation token, and notify channel
// are issued for the new one.
func (b *Binding) begin() (context.Context, int64, chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.ctx = ctx
	b.cancel = cancel
	b.gen++
	b.notify = make(chan struct{}, 1)
	return ctx, b.gen, b.notify
}

// current reports whether gen is still the live invocation.
func (b *Binding) current(gen int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen == gen
}

// Stop cancels the in-flight invocation, if any. Called when the mode
// cycles away from a stream, when the owning window is removed, and on
// session shutdown; background units must never be left running.
func (b *Binding) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.gen++
}

// runCmd invokes the callback once in the background and pushes the
// result (or the error text) into sink, unless the invocation was
// superseded while it ran.
func runCmd(b *Binding, sink ContentSink, window, input string) tea.Cmd {
	ctx, gen, _ := b.begin()
	cb := b.Callback
	return func() tea.Msg {
		ctx, span := tracer.Start(ctx, "callback.run")
		span.SetAttributes(
			attribute.String("window", window),
			attribute.String("callback", cb.Name()),
			attribute.String("input", input),
		)
		defer span.End()

		out, err := cb.Run(ctx, input)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			out = "Error: " + err.Error()
		}
		if !b.current(gen) {
			span.SetAttributes(attribute.Bool("superseded", true))
			return CallbackDoneMsg{Window: window, Callback: cb.Name(), Target: cb.TargetWindow(), Stale: true}
		}
		sink.Push(out)
		return CallbackDoneMsg{Window: window, Callback: cb.Name(), Target: cb.TargetWindow()}
	}
}

// streamCmd starts the callback's continuous subscription. A reader
// goroutine folds incoming lines into a bounded ring, pushes the joined
// snapshot into sink, and signals the notify channel; the returned
// command waits for the first signal. The goroutine exits when the
// stream channel closes, which the streamer guarantees on cancel.
func streamCmd(b *Binding, st Streamer, sink ContentSink, window, input string) tea.Cmd {
	ctx, gen, notify := b.begin()
	cb := b.Callback
	ch, err := st.Stream(ctx, input)
	if err != nil {
		sink.Push("Error: " + err.Error())
		return func() tea.Msg {
			return CallbackDoneMsg{Window: window, Callback: cb.Name(), Target: cb.TargetWindow()}
		}
	}

	go func() {
		var ring []string
		for line := range ch {
			if !b.current(gen) {
				return
			}
			ring = append(ring, line)
			if len(ring) > streamBufferLines {
				ring = ring[len(ring)-streamBufferLines:]
			}
			sink.Push(strings.Join(ring, "\n"))
			select {
			case notify <- struct{}{}:
			default:
				// Repaint already pending; drop.
			}
		}
	}()

	return b.Await(window)
}

// Await returns a command that blocks on the stream's next signal and
// turns it into a repaint message, or nil if no stream is live. The
// Session re-arms it on every StreamTickMsg until the stream stops.
func (b *Binding) Await(window string) tea.Cmd {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel == nil || b.notify == nil {
		return nil
	}
	ctx := b.ctx
	notify := b.notify
	name := b.Callback.Name()
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-notify:
			return StreamTickMsg{Window: window, Callback: name}
		}
	}
}

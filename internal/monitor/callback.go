package monitor

import (
	"context"
	"sync"
)

// DescribeCallback shows a provider's Describe output in the target
// window. It satisfies the ui callback contract: run from a background
// unit, result delivered through the target's sink.
type DescribeCallback struct {
	name     string
	target   string
	provider Provider
}

// NewDescribeCallback binds provider detail to the named target
// window.
func NewDescribeCallback(name, target string, p Provider) *DescribeCallback {
	return &DescribeCallback{name: name, target: target, provider: p}
}

// Name identifies the callback in logs and messages.
func (c *DescribeCallback) Name() string { return c.name }

// TargetWindow names the window receiving results.
func (c *DescribeCallback) TargetWindow() string { return c.target }

// Run describes the selected item.
func (c *DescribeCallback) Run(ctx context.Context, input string) (string, error) {
	return c.provider.Describe(ctx, input)
}

// Topic callback modes.
const (
	ModeInfo = "info"
	ModeEcho = "echo"
)

// TopicCallback is the stateful callback for the topics list: it
// cycles between a one-shot `topic info` query and a continuous
// `topic echo` subscription. The streamer owns the subprocess; the
// binding in the ui layer owns when it is started and stopped.
type TopicCallback struct {
	name     string
	target   string
	provider Provider
	streamer *EchoStreamer

	mu   sync.Mutex
	mode string
}

// NewTopicCallback creates the callback in info mode.
func NewTopicCallback(name, target string, p Provider, streamer *EchoStreamer) *TopicCallback {
	return &TopicCallback{
		name:     name,
		target:   target,
		provider: p,
		streamer: streamer,
		mode:     ModeInfo,
	}
}

// Name identifies the callback in logs and messages.
func (c *TopicCallback) Name() string { return c.name }

// TargetWindow names the window receiving results.
func (c *TopicCallback) TargetWindow() string { return c.target }

// Mode returns the current mode.
func (c *TopicCallback) Mode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// CycleMode toggles info <-> echo and returns the new mode. It only
// affects which operation future activations start; the caller stops
// any running stream.
func (c *TopicCallback) CycleMode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeInfo {
		c.mode = ModeEcho
	} else {
		c.mode = ModeInfo
	}
	return c.mode
}

// Streaming reports whether activations currently start a
// subscription.
func (c *TopicCallback) Streaming() bool {
	return c.Mode() == ModeEcho
}

// Run is the one-shot operation: topic info.
func (c *TopicCallback) Run(ctx context.Context, input string) (string, error) {
	return c.provider.Describe(ctx, input)
}

// Stream is the continuous operation: topic echo.
func (c *TopicCallback) Stream(ctx context.Context, input string) (<-chan string, error) {
	return c.streamer.Stream(ctx, input)
}

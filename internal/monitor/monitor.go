// Package monitor is the ROS 2 introspection collaborator: it lists
// nodes, topics, and services and describes them by shelling out to
// the ros2 CLI. It implements the content-provider and callback
// contracts the ui package consumes, and is injected explicitly so
// tests can substitute fakes.
package monitor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Provider supplies list content and per-item detail. Both operations
// may be slow and must only be called from background units; the ui
// render path reads cached snapshots instead.
type Provider interface {
	ListItems(ctx context.Context) ([]string, error)
	Describe(ctx context.Context, item string) (string, error)
}

// CommandRunner executes one introspection command and returns its
// combined output. Injected so tests never spawn processes.
type CommandRunner func(ctx context.Context, name string, args ...string) (string, error)

// commandLine builds the exec name and args, sourcing the ROS setup
// script first when one is configured (the ros2 CLI is unusable
// without its environment).
func commandLine(setup string, args ...string) (string, []string) {
	if setup == "" {
		return args[0], args[1:]
	}
	return "/bin/bash", []string{"-c", "source " + setup + "; " + strings.Join(args, " ")}
}

// execRunner returns a CommandRunner backed by os/exec.
func execRunner(setup string) CommandRunner {
	return func(ctx context.Context, name string, args ...string) (string, error) {
		bin, argv := commandLine(setup, append([]string{name}, args...)...)
		out, err := exec.CommandContext(ctx, bin, argv...).CombinedOutput()
		if err != nil {
			return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}
		return string(out), nil
	}
}

// defaultDescribeTTL bounds how long per-item detail is served from
// cache before the CLI is consulted again.
const defaultDescribeTTL = 5 * time.Second

// Ros2 introspects a ROS 2 graph via the ros2 CLI. Describe results
// are cached per item for a short TTL so re-activating the same
// selection does not re-spawn the subprocess.
type Ros2 struct {
	run CommandRunner
	ttl time.Duration

	mu    sync.Mutex
	cache map[string]describeEntry
}

type describeEntry struct {
	out string
	at  time.Time
}

// Option configures a Ros2 monitor.
type Option func(*Ros2)

// WithRunner substitutes the command runner (used by tests).
func WithRunner(run CommandRunner) Option {
	return func(r *Ros2) { r.run = run }
}

// WithDescribeTTL overrides the describe cache TTL.
func WithDescribeTTL(ttl time.Duration) Option {
	return func(r *Ros2) { r.ttl = ttl }
}

// NewRos2 creates a monitor. setup is the ROS environment script to
// source before each command ("" to inherit the current environment).
func NewRos2(setup string, opts ...Option) *Ros2 {
	r := &Ros2{
		run:   execRunner(setup),
		ttl:   defaultDescribeTTL,
		cache: make(map[string]describeEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Nodes returns the provider enumerating graph nodes.
func (r *Ros2) Nodes() Provider {
	return provider{r: r, list: []string{"ros2", "node", "list"}, describe: []string{"ros2", "node", "info"}}
}

// Topics returns the provider enumerating topics.
func (r *Ros2) Topics() Provider {
	return provider{r: r, list: []string{"ros2", "topic", "list"}, describe: []string{"ros2", "topic", "info"}}
}

// Services returns the provider enumerating services. Detail is the
// service type, the most the CLI offers.
func (r *Ros2) Services() Provider {
	return provider{r: r, list: []string{"ros2", "service", "list"}, describe: []string{"ros2", "service", "type"}}
}

// provider binds one entity kind's list and describe commands to the
// shared monitor.
type provider struct {
	r        *Ros2
	list     []string
	describe []string
}

// ListItems runs the list command and returns one item per line.
func (p provider) ListItems(ctx context.Context) ([]string, error) {
	out, err := p.r.run(ctx, p.list[0], p.list[1:]...)
	if err != nil {
		return nil, err
	}
	return parseList(out), nil
}

// Describe runs the describe command for item, consulting the TTL
// cache first.
func (p provider) Describe(ctx context.Context, item string) (string, error) {
	key := strings.Join(p.describe, " ") + " " + item
	p.r.mu.Lock()
	if e, ok := p.r.cache[key]; ok && time.Since(e.at) < p.r.ttl {
		p.r.mu.Unlock()
		return e.out, nil
	}
	p.r.mu.Unlock()

	out, err := p.r.run(ctx, p.describe[0], append(p.describe[1:], item)...)
	if err != nil {
		return "", err
	}
	p.r.mu.Lock()
	p.r.cache[key] = describeEntry{out: out, at: time.Now()}
	p.r.mu.Unlock()
	return out, nil
}

// parseList splits command output into trimmed, non-empty items and
// collapses the doubled slash the graph reports for root-namespace
// entities.
func parseList(out string) []string {
	var items []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, strings.ReplaceAll(line, "//", "/"))
	}
	return items
}

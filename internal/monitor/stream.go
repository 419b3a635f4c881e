package monitor

import (
	"bufio"
	"context"
	"os/exec"
	"strings"

	"roswatch/internal/logging"
	"roswatch/internal/pty"
)

// EchoStreamer runs `ros2 topic echo <topic>` and emits its output
// line by line until the context is cancelled. The process runs under
// a PTY so the CLI does not block-buffer its stdout.
type EchoStreamer struct {
	runner pty.Runner
	setup  string
}

// NewEchoStreamer creates a streamer sourcing the given setup script
// (may be empty). runner may be nil, defaulting to a real PTY.
func NewEchoStreamer(setup string, runner pty.Runner) *EchoStreamer {
	if runner == nil {
		runner = &pty.CreackPTY{}
	}
	return &EchoStreamer{runner: runner, setup: setup}
}

// Stream starts the echo subscription for topic. The returned channel
// closes when the process exits or ctx is cancelled; cancellation
// terminates the process, so a stopped stream never leaks a
// subprocess.
func (e *EchoStreamer) Stream(ctx context.Context, topic string) (<-chan string, error) {
	bin, argv := commandLine(e.setup, "ros2", "topic", "echo", topic)
	cmd := exec.Command(bin, argv...)

	f, err := e.runner.Start(cmd, pty.Size{Rows: 40, Cols: 200})
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 64)

	// Reaper: on cancel, kill the process and detach the PTY, which
	// unblocks the scanner below.
	go func() {
		<-ctx.Done()
		if cmd.Process != nil {
			if err := cmd.Process.Kill(); err != nil {
				logging.Debugf("echo %s: kill: %v", topic, err)
			}
		}
		f.Close()
		_ = cmd.Wait()
		logging.Infof("echo %s: stopped", topic)
	}()

	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			select {
			case ch <- line:
			case <-ctx.Done():
				return
			}
		}
		// EOF or PTY closed; either way the stream is over.
	}()

	logging.Infof("echo %s: started", topic)
	return ch, nil
}

// Package pty spawns subprocesses under a pseudo-terminal. Streaming
// introspection commands (ros2 topic echo) block-buffer their stdout
// when attached to a pipe; a PTY keeps their output line-by-line.
package pty

import (
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner is the interface for spawning a process under a PTY.
// Implementations can be swapped (creack/pty, or a mock for tests).
type Runner interface {
	Start(cmd *exec.Cmd, size Size) (io.ReadCloser, error)
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

// Ensure CreackPTY implements Runner.
var _ Runner = (*CreackPTY)(nil)

// Start spawns cmd in a PTY with the given size. The caller owns the
// returned reader; closing it detaches the PTY, and the caller is
// responsible for terminating the process.
func (c *CreackPTY) Start(cmd *exec.Cmd, size Size) (io.ReadCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	return pty.StartWithSize(cmd, ws)
}

package ui

// ActivateMsg is sent when a list window's selection is activated.
// The Session resolves each bound callback's target window and spawns
// one background command per binding.
type ActivateMsg struct {
	Window string // list window that fired
	Label  string // selected label passed to callbacks
}

// CycleModeMsg is sent when the cycle-mode key is pressed on a list
// window. Stateful callbacks switch which operation future activations
// start; any running stream for the binding is stopped.
type CycleModeMsg struct {
	Window string
}

// CallbackDoneMsg reports a completed one-shot callback invocation.
// By the time it arrives the result (or error text) is already in the
// target window's sink; the message exists to trigger a repaint and to
// tell tests when an invocation finished.
type CallbackDoneMsg struct {
	Window   string // list window that activated
	Callback string
	Target   string
	Stale    bool // result was superseded and discarded
}

// StreamTickMsg signals that a streaming callback pushed new output
// into its target sink. The Session re-arms the stream wait command
// while the stream is live.
type StreamTickMsg struct {
	Window   string
	Callback string
}

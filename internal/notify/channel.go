// Package notify is the console's single-slot toast: showing a notification
// replaces whatever is visible, and each one dismisses itself after a fixed duration.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 6 * time.Second

// Severity is presentational metadata only.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Notification is the current contents of the slot.
type Notification struct {
	Visible  bool
	Message  string
	Severity Severity
	// Generation increases with every Show so stale timers can be recognised.
	Generation uint64
}

// ExpiredMsg is delivered when a notification's display time has elapsed.
type ExpiredMsg struct {
	Generation uint64
}

// Channel holds the slot. It is owned by the UI loop and is not safe for
// concurrent use.
type Channel struct {
	current  Notification
	duration time.Duration
}

// New returns an empty channel. A duration <= 0 disables auto-dismiss.
func New(duration time.Duration) *Channel {
	return &Channel{duration: duration}
}

// Duration is the auto-dismiss delay.
func (c *Channel) Duration() time.Duration { return c.duration }

// Current returns a copy of the slot.
func (c *Channel) Current() Notification { return c.current }

// Show overwrites the slot and returns the command that will expire it.
func (c *Channel) Show(message string, severity Severity) tea.Cmd {
	c.current = Notification{
		Visible:    true,
		Message:    message,
		Severity:   severity,
		Generation: c.current.Generation + 1,
	}
	if c.duration <= 0 {
		return nil
	}
	gen := c.current.Generation
	return tea.Tick(c.duration, func(time.Time) tea.Msg {
		return ExpiredMsg{Generation: gen}
	})
}

// Success is shorthand for Show(message, SeveritySuccess).
func (c *Channel) Success(message string) tea.Cmd { return c.Show(message, SeveritySuccess) }

// Error is shorthand for Show(message, SeverityError).
func (c *Channel) Error(message string) tea.Cmd { return c.Show(message, SeverityError) }

// Dismiss hides the current notification immediately.
func (c *Channel) Dismiss() {
	c.current.Visible = false
}

// Expire hides the notification if it is still the one the timer was started for.
// It reports whether anything changed.
func (c *Channel) Expire(msg ExpiredMsg) bool {
	if !c.current.Visible || msg.Generation != c.current.Generation {
		return false
	}
	c.current.Visible = false
	return true
}

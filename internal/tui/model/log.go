package model

import (
	"smscctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewLogEntryMsg carries one entry from the logging channel into Update.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the
// channel is closed or when there is no channel.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

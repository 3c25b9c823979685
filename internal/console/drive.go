package console

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Drive runs cmd and every follow-up it produces to completion on the calling
// goroutine, feeding each message through ctrl.Handle. It returns the results
// of settled operations in the order they were handled.
//
// Drive is for callers without a bubbletea program (CLI subcommands, the MCP
// server). Construct the store with a zero notification duration, otherwise
// Drive blocks for each expiry timer.
func Drive(ctrl *Controller, cmd tea.Cmd) []Result {
	var results []Result
	queue := []tea.Cmd{cmd}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}

		res, follow, handled := ctrl.Handle(msg)
		if !handled {
			continue
		}
		if res.Op != OpNone {
			results = append(results, res)
		}
		if follow != nil {
			queue = append(queue, follow)
		}
	}
	return results
}

// Last returns the final result produced by Drive for op.
func Last(results []Result, op Op) (Result, bool) {
	for i := len(results) - 1; i >= 0; i-- {
		if results[i].Op == op {
			return results[i], true
		}
	}
	return Result{}, false
}

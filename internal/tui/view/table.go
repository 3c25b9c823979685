package view

import (
	"strconv"

	"smscctl/internal/operator"
	"smscctl/internal/tui/design"
	"smscctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	minNameWidth   = 8
	maxNameWidth   = 40
	numberColWidth = 9
	statusColWidth = 12
	deletingStatus = "deleting…"
)

// OperatorColumns sizes the table for the given content width. Only the
// Name column grows; the others fit their content.
func OperatorColumns(width int, ops []operator.Operator) []table.Column {
	idWidth := runewidth.StringWidth("ID")
	nameWidth := minNameWidth
	for _, op := range ops {
		if w := runewidth.StringWidth(op.ID.String()); w > idWidth {
			idWidth = w
		}
		if w := runewidth.StringWidth(op.Name); w > nameWidth {
			nameWidth = w
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}

	// Each cell carries one column of padding on either side.
	fixed := idWidth + 3*numberColWidth + statusColWidth + 6*2
	if width > 0 && fixed+nameWidth > width {
		nameWidth = max(minNameWidth, width-fixed)
	}

	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Priority", Width: numberColWidth},
		{Title: "Weight", Width: numberColWidth},
		{Title: "Max TPS", Width: numberColWidth},
		{Title: "Status", Width: statusColWidth},
	}
}

// OperatorRows renders the canonical list in server order.
func OperatorRows(m *model.Model) []table.Row {
	ops := m.Store.Operators()
	rows := make([]table.Row, 0, len(ops))
	for _, op := range ops {
		status := op.Status
		if m.Store.Deleting(op.ID) {
			status = deletingStatus
		}
		rows = append(rows, table.Row{
			op.ID.String(),
			op.Name,
			strconv.Itoa(op.Priority),
			strconv.Itoa(op.Weight),
			strconv.Itoa(op.MaxTPS),
			status,
		})
	}
	return rows
}

// SyncTable copies the store's list into the table and fits it to the window.
func SyncTable(m *model.Model) {
	contentWidth := m.Width - design.AppStyle.GetHorizontalFrameSize() - design.TableBorderStyle.GetHorizontalFrameSize()
	ops := m.Store.Operators()

	// Columns first: rows wider than the current columns would be mis-rendered.
	m.Table.SetColumns(OperatorColumns(contentWidth, ops))
	m.Table.SetRows(OperatorRows(m))

	height := m.Height - chromeHeight - design.TableBorderStyle.GetVerticalFrameSize()
	if height < design.MinTableHeight {
		height = design.MinTableHeight
	}
	m.Table.SetHeight(height)
	if contentWidth > 0 {
		m.Table.SetWidth(contentWidth)
	}

	if n := len(ops); n == 0 {
		m.Table.SetCursor(0)
	} else if m.Table.Cursor() >= n {
		m.Table.SetCursor(n - 1)
	}
}

// TableStyles adapts the bubbles defaults to the design palette.
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(design.ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(design.ColorText).
		Background(design.ColorHighlight).
		Bold(true)
	return s
}

func renderTable(m *model.Model) string {
	if len(m.Store.Operators()) == 0 {
		msg := "No operators configured. Press a to add one."
		if !m.Store.Loaded() {
			msg = "Loading operators…"
		}
		return design.TableBorderStyle.Render(design.EmptyStateStyle.Render(msg))
	}
	return design.TableBorderStyle.Render(m.Table.View())
}

// Package cli formats operator console results for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"smscctl/internal/console"
	"smscctl/internal/operator"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat accepts table, json or yaml, case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// Printer writes operators and results in one format.
type Printer struct {
	Format OutputFormat
	Out    io.Writer
	Quiet  bool
}

// NewPrinter returns a printer writing to out.
func NewPrinter(format OutputFormat, out io.Writer) *Printer {
	return &Printer{Format: format, Out: out}
}

// PrintOperators writes the list in server order.
func (p *Printer) PrintOperators(ops []operator.Operator) error {
	if ops == nil {
		ops = []operator.Operator{}
	}
	switch p.Format {
	case OutputFormatJSON:
		return p.outputJSON(ops)
	case OutputFormatYAML:
		return p.outputYAML(ops)
	case OutputFormatTable, "":
		return p.outputTable(ops)
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

// PrintResult writes a settled write's notification text, followed by the
// saved operator for creates and updates in the structured formats.
func (p *Printer) PrintResult(res console.Result) error {
	if !res.OK() {
		return fmt.Errorf("%s", res.Message)
	}
	if p.Quiet {
		return nil
	}

	switch p.Format {
	case OutputFormatJSON:
		if res.Op == console.OpDelete {
			return p.outputJSON(map[string]string{"message": res.Message})
		}
		return p.outputJSON(res.Operator)
	case OutputFormatYAML:
		if res.Op == console.OpDelete {
			return p.outputYAML(map[string]string{"message": res.Message})
		}
		return p.outputYAML(res.Operator)
	}

	fmt.Fprintln(p.Out, text.FgGreen.Sprint(res.Message))
	if res.Op != console.OpDelete && !res.Operator.ID.IsZero() {
		return p.outputTable([]operator.Operator{res.Operator})
	}
	return nil
}

func (p *Printer) outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.Out, string(data))
	return err
}

func (p *Printer) outputYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = fmt.Fprint(p.Out, string(data))
	return err
}

// outputTable renders a rounded table with a coloured header.
func (p *Printer) outputTable(ops []operator.Operator) error {
	if len(ops) == 0 {
		fmt.Fprintln(p.Out, text.FgYellow.Sprint("No operators found"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("ID"),
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("PRIORITY"),
		text.FgHiCyan.Sprint("WEIGHT"),
		text.FgHiCyan.Sprint("MAX TPS"),
		text.FgHiCyan.Sprint("STATUS"),
	})
	for _, op := range ops {
		t.AppendRow(table.Row{
			op.ID.String(),
			op.Name,
			strconv.Itoa(op.Priority),
			strconv.Itoa(op.Weight),
			strconv.Itoa(op.MaxTPS),
			formatStatus(op.Status),
		})
	}
	t.Render()
	return nil
}

func formatStatus(status string) string {
	switch status {
	case "active":
		return text.FgGreen.Sprint(status)
	case "":
		return text.FgHiBlack.Sprint("-")
	default:
		return text.FgYellow.Sprint(status)
	}
}

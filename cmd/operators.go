package cmd

import (
	"fmt"

	"smscctl/internal/app"
	"smscctl/internal/cli"
	"smscctl/internal/console"
	"smscctl/internal/operator"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// operatorFlags are the raw field values given on the command line. They are
// kept as text so they go through the same validation as the edit dialog.
type operatorFlags struct {
	name     string
	priority string
	weight   string
	maxTPS   string
}

func (f *operatorFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.name, "name", "", "Operator name")
	c.Flags().StringVar(&f.priority, "priority", "", "Routing priority (integer)")
	c.Flags().StringVar(&f.weight, "weight", "", "Routing weight (integer)")
	c.Flags().StringVar(&f.maxTPS, "max-tps", "", "Maximum messages per second (integer, 0 or more)")
}

// apply copies the flags the user actually set onto d.
func (f *operatorFlags) apply(c *cobra.Command, d operator.Draft) operator.Draft {
	set := map[string]struct {
		field operator.Field
		value string
	}{
		"name":     {operator.FieldName, f.name},
		"priority": {operator.FieldPriority, f.priority},
		"weight":   {operator.FieldWeight, f.weight},
		"max-tps":  {operator.FieldMaxTPS, f.maxTPS},
	}
	for flag, v := range set {
		if c.Flags().Changed(flag) {
			d = d.Set(v.field, v.value)
		}
	}
	return d
}

// operatorsOptions holds the flags shared by every operators subcommand.
type operatorsOptions struct {
	output string
	quiet  bool
}

func newOperatorsCmd() *cobra.Command {
	opts := &operatorsOptions{}

	c := &cobra.Command{
		Use:     "operators",
		Aliases: []string{"operator", "op"},
		Short:   "List and edit operators without the interactive console",
		Long: `One-shot operator commands for scripting. Each write is validated
locally, sent to the gateway and followed by a list refresh, exactly like the
console. The command prints the resulting notification and exits non-zero
when the write failed.`,
	}
	c.PersistentFlags().StringVarP(&opts.output, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	c.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Print nothing on a successful write; failures still exit non-zero")

	c.AddCommand(newOperatorsListCmd(opts))
	c.AddCommand(newOperatorsAddCmd(opts))
	c.AddCommand(newOperatorsUpdateCmd(opts))
	c.AddCommand(newOperatorsDeleteCmd(opts))
	return c
}

// operatorSession bundles what every operators subcommand needs.
type operatorSession struct {
	ctrl    *console.Controller
	printer *cli.Printer
}

func newOperatorSession(c *cobra.Command, opts *operatorsOptions) (*operatorSession, error) {
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return nil, err
	}
	application, err := newApplication(app.ModeCLI, false, app.Overrides{})
	if err != nil {
		return nil, err
	}
	printer := cli.NewPrinter(format, c.OutOrStdout())
	printer.Quiet = opts.quiet
	return &operatorSession{
		ctrl:    application.Services().Controller,
		printer: printer,
	}, nil
}

// load fetches the list and returns the failure notification as an error.
func (s *operatorSession) load() error {
	res, ok := console.Last(console.Drive(s.ctrl, s.ctrl.LoadAll()), console.OpList)
	if !ok {
		return fmt.Errorf("%s", console.MsgLoadFailed)
	}
	if !res.OK() {
		return fmt.Errorf("%s", res.Message)
	}
	return nil
}

// write runs a dispatched write to completion and prints its notification.
func (s *operatorSession) write(op console.Op, dispatch func() (tea.Cmd, error)) error {
	cmd, err := dispatch()
	if err != nil {
		return fmt.Errorf("%s", console.Rejected(op, err).Message)
	}
	res, ok := console.Last(console.Drive(s.ctrl, cmd), op)
	if !ok {
		return fmt.Errorf("%s produced no result", op)
	}
	return s.printer.PrintResult(res)
}

func newOperatorsListCmd(opts *operatorsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List operators in server order",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s, err := newOperatorSession(c, opts)
			if err != nil {
				return err
			}
			if err := s.load(); err != nil {
				return err
			}
			return s.printer.PrintOperators(s.ctrl.Store().Operators())
		},
	}
}

func newOperatorsAddCmd(opts *operatorsOptions) *cobra.Command {
	var flags operatorFlags
	c := &cobra.Command{
		Use:   "add",
		Short: "Add an operator",
		Example: `  smscctl operators add --name "Carrier A" --priority 1 --weight 50 --max-tps 100`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s, err := newOperatorSession(c, opts)
			if err != nil {
				return err
			}
			draft := flags.apply(c, operator.Draft{})
			return s.write(console.OpCreate, func() (tea.Cmd, error) {
				return s.ctrl.Create(draft)
			})
		},
	}
	flags.register(c)
	return c
}

func newOperatorsUpdateCmd(opts *operatorsOptions) *cobra.Command {
	var flags operatorFlags
	c := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an operator; omitted fields keep their current value",
		Example: `  smscctl operators update 7 --max-tps 250`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := newOperatorSession(c, opts)
			if err != nil {
				return err
			}
			if err := s.load(); err != nil {
				return err
			}
			id := operator.ID(args[0])
			current, ok := s.ctrl.Store().Find(id)
			if !ok {
				return fmt.Errorf("operator %s not found", id)
			}
			draft := flags.apply(c, operator.DraftFrom(current))
			return s.write(console.OpUpdate, func() (tea.Cmd, error) {
				return s.ctrl.Update(id, draft)
			})
		},
	}
	flags.register(c)
	return c
}

func newOperatorsDeleteCmd(opts *operatorsOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an operator (no confirmation)",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := newOperatorSession(c, opts)
			if err != nil {
				return err
			}
			id := operator.ID(args[0])
			return s.write(console.OpDelete, func() (tea.Cmd, error) {
				return s.ctrl.Delete(id)
			})
		},
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/unbound-force/labkit/internal/audit"
	"github.com/unbound-force/labkit/internal/cases"
	"github.com/unbound-force/labkit/internal/config"
	"github.com/unbound-force/labkit/internal/console"
	"github.com/unbound-force/labkit/internal/lab"
	"github.com/unbound-force/labkit/internal/report"
	"github.com/unbound-force/labkit/internal/scaffold"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "labkit",
		Short: "labkit runs small numeric and text programming exercises",
		Long: `labkit bundles a set of classroom exercises (leap years, primes,
perfect and Armstrong numbers, factorials, text utilities and a unit
converter). Each lab prints a fixed set of demonstration cases and
then reads one optional line of input.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAuditCmd())
	return root
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	listBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	listMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// runList writes the registered labs in classroom order.
func runList(w io.Writer) error {
	reg := lab.Default()

	rows := make([][]string, 0, len(lab.Order))
	for _, name := range lab.Order {
		l, ok := reg.Resolve(name)
		if !ok {
			return fmt.Errorf("lab %q is listed but not registered", name)
		}
		rows = append(rows, []string{l.Name, strings.Join(l.Aliases, ", "), l.Summary})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(listBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			if col == 1 {
				return listMutedStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("LAB", "ALIASES", "DESCRIPTION").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t)
	return err
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available labs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

// ---------------------------------------------------------------------------
// run
// ---------------------------------------------------------------------------

// runParams holds the parsed flags for the run command.
type runParams struct {
	labs        []string
	format      string
	noInput     bool
	casesPath   string
	configPath  string
	interactive bool
	workDir     string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

// runLabs is the extracted, testable body of the run command.
func runLabs(p runParams) error {
	cfg, err := config.Load(p.configPath)
	if err != nil {
		return err
	}

	format := p.format
	if format == "" {
		format = cfg.Output.Format
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}

	reg := lab.Default()
	selected, err := resolveLabs(reg, p.labs)
	if err != nil {
		return err
	}

	set, err := loadCases(reg, p.casesPath)
	if err != nil {
		return err
	}

	var input console.LineSource = console.NoInput()
	if !p.noInput && !p.interactive && cfg.Input.Enabled && p.stdin != nil {
		input = console.NewPrompter(p.stdin, p.stderr)
	}

	env := &lab.Env{
		Input:   input,
		Logger:  logger,
		Cases:   set,
		Config:  cfg,
		WorkDir: p.workDir,
	}

	// Text output is streamed so each lab's cases are on screen
	// before its prompt. JSON and the TUI need the whole run.
	var stream *report.Stream
	if !p.interactive && format == "text" {
		stream = report.NewStream(p.stdout)
		env.Progress = stream.Flush
	}

	reports := make([]report.LabReport, 0, len(selected))
	for _, l := range selected {
		logger.Debug("running lab", "lab", l.Name)
		rep, err := l.Run(env)
		if err != nil {
			return fmt.Errorf("lab %s: %w", l.Name, err)
		}
		if stream != nil {
			stream.Flush(rep)
		}
		reports = append(reports, *rep)
	}

	switch {
	case p.interactive:
		return runInteractiveReport(reports)
	case format == "json":
		return report.WriteJSON(p.stdout, reports)
	default:
		return nil
	}
}

// resolveLabs maps names and aliases to labs, in the order given.
// No names selects every lab in classroom order.
func resolveLabs(reg *lab.Registry, names []string) ([]lab.Lab, error) {
	if len(names) == 0 {
		names = lab.Order
	}
	out := make([]lab.Lab, 0, len(names))
	for _, name := range names {
		l, ok := reg.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("unknown lab %q (see 'labkit list')", name)
		}
		out = append(out, l)
	}
	return out, nil
}

// loadCases reads the cases file at path, if any, and checks that
// every block names a registered lab by its primary name.
func loadCases(reg *lab.Registry, path string) (*cases.Set, error) {
	if path == "" {
		return nil, nil
	}
	set, err := cases.Load(path)
	if err != nil {
		return nil, err
	}
	for _, name := range set.Names() {
		l, ok := reg.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("cases file %s: unknown lab %q", path, name)
		}
		if l.Name != name {
			return nil, fmt.Errorf("cases file %s: use lab name %q instead of alias %q", path, l.Name, name)
		}
	}
	logger.Debug("loaded cases", "file", path, "labs", len(set.Names()))
	return set, nil
}

func newRunCmd() *cobra.Command {
	var (
		format      string
		noInput     bool
		casesPath   string
		configPath  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "run [lab...]",
		Short: "Run lab demonstrations",
		Long: `Run one or more labs by name or alias (all labs when none are
given). Each lab prints its demonstration cases, then prompts for one
line of input on stderr. Press Enter or close stdin to skip the prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			return runLabs(runParams{
				labs:        args,
				format:      format,
				noInput:     noInput,
				casesPath:   casesPath,
				configPath:  configPath,
				interactive: interactive,
				workDir:     wd,
				stdin:       os.Stdin,
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "",
		"output format: text or json (default from config, else text)")
	cmd.Flags().BoolVar(&noInput, "no-input", false,
		"skip the interactive prompt of every lab")
	cmd.Flags().StringVar(&casesPath, "cases", "",
		"HCL file replacing the demonstration inputs of some labs")
	cmd.Flags().StringVar(&configPath, "config", "",
		"config file (default: ./"+config.DefaultFileName+" if present)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"browse the results in a TUI (implies --no-input)")

	return cmd
}

// ---------------------------------------------------------------------------
// eval
// ---------------------------------------------------------------------------

// evalParams holds the arguments of the eval command.
type evalParams struct {
	lab    string
	input  string
	stdout io.Writer
}

// runEval applies a single lab to one input.
func runEval(p evalParams) error {
	l, ok := lab.Default().Resolve(p.lab)
	if !ok {
		return fmt.Errorf("unknown lab %q (see 'labkit list')", p.lab)
	}
	out, err := l.Eval(p.input)
	if err != nil {
		return fmt.Errorf("%s: %w", l.Name, err)
	}
	_, err = fmt.Fprintln(p.stdout, out)
	return err
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <lab> <input...>",
		Short: "Evaluate one input with a lab",
		Long: `Apply a lab's function to one input and print the result.
Remaining arguments are joined with spaces, so
'labkit eval stats 1 2 3' evaluates the list "1 2 3".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(evalParams{
				lab:    args[0],
				input:  strings.Join(args[1:], " "),
				stdout: cmd.OutOrStdout(),
			})
		},
	}
}

// ---------------------------------------------------------------------------
// schema
// ---------------------------------------------------------------------------

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for labkit run output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of labkit run --format=json output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

// ---------------------------------------------------------------------------
// init
// ---------------------------------------------------------------------------

// initParams holds the parsed flags for the init command.
type initParams struct {
	targetDir string
	force     bool
	stdout    io.Writer
}

func runInit(p initParams) error {
	_, err := scaffold.Run(scaffold.Options{
		TargetDir: p.targetDir,
		Force:     p.force,
		Version:   version,
		Stdout:    p.stdout,
	})
	return err
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write starter config, cases and sample files",
		Long: `Write .labkit.yaml, cases.hcl and sample.txt into the current
directory. Existing files are left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initParams{
				force:  force,
				stdout: cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

// ---------------------------------------------------------------------------
// audit
// ---------------------------------------------------------------------------

// auditParams holds the parsed flags for the audit command.
type auditParams struct {
	patterns      []string
	format        string
	configPath    string
	maxComplexity int
	coverProfile  string
	fail          bool
	moduleDir     string
	stdout        io.Writer
	stderr        io.Writer
}

// runAudit is the extracted, testable body of the audit command.
func runAudit(p auditParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	opts := audit.DefaultOptions()
	opts.CoverProfile = p.coverProfile
	if p.maxComplexity > 0 {
		opts.MaxComplexity = p.maxComplexity
	} else {
		cfg, err := config.Load(p.configPath)
		if err != nil {
			return err
		}
		opts.MaxComplexity = cfg.Audit.MaxComplexity
	}

	logger.Info("auditing complexity", "patterns", p.patterns, "budget", opts.MaxComplexity)
	rpt, err := audit.Analyze(p.patterns, p.moduleDir, opts)
	if err != nil {
		return err
	}
	logger.Info("audit complete", "functions", len(rpt.Scores))

	if err := writeAuditReport(p.stdout, p.format, rpt); err != nil {
		return err
	}

	if !p.fail {
		return nil
	}
	printBudgetSummary(p.stderr, rpt)
	return checkBudget(rpt)
}

func writeAuditReport(w io.Writer, format string, rpt *audit.Report) error {
	switch format {
	case "json":
		return audit.WriteJSON(w, rpt)
	default:
		return audit.WriteText(w, rpt)
	}
}

// printBudgetSummary prints a one-line CI summary.
func printBudgetSummary(w io.Writer, rpt *audit.Report) {
	status := "PASS"
	if rpt.Exceeded() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "Over budget: %d/%d functions above %d (%s)\n",
		rpt.Summary.OverBudget, rpt.Summary.TotalFunctions, rpt.Summary.Budget, status)
}

// checkBudget returns an error when any function is over budget.
func checkBudget(rpt *audit.Report) error {
	if rpt.Exceeded() {
		return fmt.Errorf("%d function(s) exceed complexity budget %d",
			rpt.Summary.OverBudget, rpt.Summary.Budget)
	}
	return nil
}

func newAuditCmd() *cobra.Command {
	var (
		format        string
		configPath    string
		maxComplexity int
		coverProfile  string
		fail          bool
	)

	cmd := &cobra.Command{
		Use:   "audit [packages...]",
		Short: "Check Go functions against a complexity budget",
		Long: `Compute the cyclomatic complexity of every non-test function
under the given package patterns (default ./...) and flag those above
the budget (audit.max_complexity in the config, default 10).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			return runAudit(auditParams{
				patterns:      args,
				format:        format,
				configPath:    configPath,
				maxComplexity: maxComplexity,
				coverProfile:  coverProfile,
				fail:          fail,
				moduleDir:     moduleDir,
				stdout:        os.Stdout,
				stderr:        os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().StringVar(&configPath, "config", "",
		"config file (default: ./"+config.DefaultFileName+" if present)")
	cmd.Flags().IntVar(&maxComplexity, "max-complexity", 0,
		"complexity budget (default from config)")
	cmd.Flags().StringVar(&coverProfile, "coverprofile", "",
		"coverage profile to report per-function coverage")
	cmd.Flags().BoolVar(&fail, "fail", false,
		"exit non-zero when any function is over budget")

	return cmd
}

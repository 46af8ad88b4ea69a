// Package main provides the CLI entrypoint for grind.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"grind/internal/catalog"
	"grind/internal/config"
	"grind/internal/model"
	"grind/internal/payload"
	"grind/internal/solvedlog"
	"grind/internal/stats"
	"grind/internal/statsui"
)

var (
	dataCatalogPath string
	dataSolvedPath  string
	statsYear       int
	statsCatGoal    int
	statsAllGoal    int

	payloadDate       string
	payloadProblem    string
	payloadDifficulty string
	payloadCodeFile   string
	payloadApproach   string
	payloadOut        string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "grind",
		Short:         "Terminal progress tracker for a coding-practice catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dataCatalogPath, "catalog", "", "path to the problem catalog JSON")
	rootCmd.PersistentFlags().StringVar(&dataSolvedPath, "solved", "", "path to the solved log JSON")
	rootCmd.PersistentFlags().IntVar(&statsYear, "year", 0, "active year (default: current year)")
	rootCmd.PersistentFlags().IntVar(&statsCatGoal, "catalog-goal", stats.DefaultCatalogGoal, "catalog completion goal")
	rootCmd.PersistentFlags().IntVar(&statsAllGoal, "overall-goal", stats.DefaultOverallGoal, "overall completion goal")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newPayloadCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// resolveSettings merges flags over the TOML config over defaults.
func resolveSettings(cmd *cobra.Command) (catalogPath, solvedPath string, opts model.Options, err error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", "", model.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "catalog", &dataCatalogPath, fileCfg.Data.Catalog)
	applyStringConfig(cmd, "solved", &dataSolvedPath, fileCfg.Data.Solved)
	applyIntConfig(cmd, "year", &statsYear, fileCfg.Stats.Year)
	applyIntConfig(cmd, "catalog-goal", &statsCatGoal, fileCfg.Stats.CatalogGoal)
	applyIntConfig(cmd, "overall-goal", &statsAllGoal, fileCfg.Stats.OverallGoal)

	catalogPath = dataCatalogPath
	if catalogPath == "" {
		catalogPath = config.DefaultCatalogPath()
	}
	solvedPath = dataSolvedPath
	if solvedPath == "" {
		solvedPath = config.DefaultSolvedPath()
	}
	opts = model.Options{
		Year:        statsYear,
		Now:         time.Now(),
		CatalogGoal: statsCatGoal,
		OverallGoal: statsAllGoal,
	}
	return catalogPath, solvedPath, opts, nil
}

func loadCollections(catalogPath, solvedPath string) ([]model.Section, []model.SolvedEntry, error) {
	sections, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, nil, err
	}
	solved, err := solvedlog.Load(solvedPath)
	if err != nil {
		return nil, nil, err
	}
	return sections, solved, nil
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	catalogPath, solvedPath, opts, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	sections, solved, err := loadCollections(catalogPath, solvedPath)
	if err != nil {
		return err
	}
	ui := statsui.NewModel(sections, solved, opts)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print a one-shot stats report",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	catalogPath, solvedPath, opts, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	sections, solved, err := loadCollections(catalogPath, solvedPath)
	if err != nil {
		return err
	}
	snapshot := stats.Compute(sections, solved, opts)
	return stats.RenderReport(cmd.OutOrStdout(), sections, snapshot, stats.TerminalWidth())
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <payload.json>",
		Short: "Validate and append a solved entry to the log",
		Args:  cobra.ExactArgs(1),
		RunE:  runAddCmd,
	}
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	_, solvedPath, _, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	entry, err := solvedlog.LoadPayload(args[0])
	if err != nil {
		return err
	}
	total, err := solvedlog.Append(solvedPath, entry)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Added problem %d: %q (%d entries total)\n",
		*entry.Number, entry.Name, total); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPayloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Build a solved-entry payload JSON",
		Args:  cobra.NoArgs,
		RunE:  runPayloadCmd,
	}
	cmd.Flags().StringVar(&payloadDate, "date", "", "solve date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&payloadProblem, "problem", "", `problem line, e.g. "1929. Concatenation of Array"`)
	cmd.Flags().StringVar(&payloadDifficulty, "difficulty", "", "Easy, Medium, or Hard")
	cmd.Flags().StringVar(&payloadCodeFile, "code-file", "", "file with the solution code (default: stdin)")
	cmd.Flags().StringVar(&payloadApproach, "approach", "", "short description of the approach")
	cmd.Flags().StringVar(&payloadOut, "out", "", "write the payload to a file instead of stdout")
	return cmd
}

func runPayloadCmd(cmd *cobra.Command, _ []string) error {
	code, err := readCode(payloadCodeFile)
	if err != nil {
		return err
	}
	entry, err := payload.Build(payload.Params{
		Date:        payloadDate,
		ProblemLine: payloadProblem,
		Difficulty:  payloadDifficulty,
		Code:        code,
		MyApproach:  payloadApproach,
	}, time.Now())
	if err != nil {
		return err
	}
	if errs := solvedlog.Validate(entry); len(errs) > 0 {
		return &solvedlog.ValidationError{Errs: errs}
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	data = append(data, '\n')
	logErrf("fingerprint: %s\n", payload.Fingerprint(string(data)))

	if payloadOut != "" {
		if err := os.WriteFile(payloadOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write payload: %w", err)
		}
		logErrf("Wrote %s\n", payloadOut)
		return nil
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readCode(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read code file: %w", err)
		}
		return string(data), nil
	}
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		// No piped input; the validator will flag the missing code.
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read code from stdin: %w", err)
	}
	return string(data), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# grind configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# catalog = %q
# solved = %q

[stats]
# year = 2026            # Active year for year-scoped aggregates
# catalog-goal = %d      # Catalog completion goal
# overall-goal = %d      # Overall completion goal
`,
		config.DefaultCatalogPath(),
		config.DefaultSolvedPath(),
		stats.DefaultCatalogGoal,
		stats.DefaultOverallGoal,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/contactform/internal/config"
	"github.com/andyrewlee/contactform/internal/tui"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contactform",
		Short: "Fill in and submit a contact form in the terminal.",
		Long: "contactform shows a contact form with first name, last name, email and an\n" +
			"optional message. Fields are validated as you type; a valid submit shows\n" +
			"the submitted values below the form.",
		Example:       "contactform --output json",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       os.Getenv("VERSION"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/contactform/config.yaml)")
	flags.Bool("clear-on-submit", false, "empty the form after an accepted submission")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("output", "", "print the last submission on exit: none, text, json")
	flags.Bool("alt-screen", false, "use the terminal's alternate screen")

	return cmd
}

// resolveConfig layers defaults, the config file, .env and CONTACTFORM_*
// variables, then any flags set on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	if err := config.LoadDotEnv(""); err != nil {
		return config.Config{}, err
	}

	path, _ := flags.GetString("config")
	if path == "" {
		// No usable config dir just means no config file.
		path, _ = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if flags.Changed("clear-on-submit") {
		cfg.Form.ClearOnSubmit, _ = flags.GetBool("clear-on-submit")
	}
	if flags.Changed("alt-screen") {
		cfg.AltScreen, _ = flags.GetBool("alt-screen")
	}
	if flags.Changed("log-file") {
		cfg.Logging.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger opens the configured log file. Without one, logs are discarded
// since the TUI owns the terminal.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Logging.File == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		Prefix:          "contactform",
		ReportTimestamp: true,
	})
	return logger, f.Close, nil
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	form := tui.NewContactForm(tui.WithClearOnSubmit(cfg.Form.ClearOnSubmit))
	model := tui.New(tui.WithLogger(logger), tui.WithForm(form))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting", "clear_on_submit", cfg.Form.ClearOnSubmit, "output", cfg.Output)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	values, ok := m.Submitted()
	if !ok {
		logger.Debug("exited without a submission")
		return nil
	}
	return writeSubmission(out, cfg.Output, values)
}

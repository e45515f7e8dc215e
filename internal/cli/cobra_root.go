package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"todo/internal/config"
)

// Launcher opens the application window with a fully resolved configuration
type Launcher func(ctx context.Context, cfg *config.Config) error

// RootCommand represents the todo command
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	launch Launcher
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, launch Launcher) *RootCommand {
	root := &RootCommand{
		loader: loader,
		launch: launch,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A single-window task list",
		Long: `todo opens a terminal window for managing a task list.

Tasks have a title, a description and a priority from 1 to 5, and can be
marked complete. Tasks live in memory and are gone when the window closes.

CONTROLS:
  tab / shift+tab                          Move focus between the list and the buttons
  up / down                                Select a task
  left / right                             Choose Add Task, Edit Task, Delete Task or Mark Complete
  enter                                    Press the focused button
  esc / ctrl+c                             Close the window

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TODO_DB_QUERY_TIMEOUT                  Task store query timeout (default: 5s)
    TODO_DISPLAY_TITLE                     Window title (default: TODO List Application)
    TODO_DISPLAY_LIST_WIDTH                Task list width, 0 splits evenly (default: 0)
    TODO_DISPLAY_CHECKMARK                 Prefix of completed tasks (default: "✓ ")
    TODO_LOG_FILE                          Log file, empty discards logs (default: "")
    TODO_VERBOSE                           Enable debug logging (default: false)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return root.launch(ctx, root.config)
		},
	}

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides the command line arguments
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved by the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.Duration("query-timeout", 0, "Task store query timeout (overrides TODO_DB_QUERY_TIMEOUT)")

	// Display configuration
	flags.String("title", "", "Window title (overrides TODO_DISPLAY_TITLE)")
	flags.Int("list-width", 0, "Task list width in columns (overrides TODO_DISPLAY_LIST_WIDTH)")
	flags.String("checkmark", "", "Prefix of completed tasks (overrides TODO_DISPLAY_CHECKMARK)")

	// Logging configuration
	flags.String("log-file", "", "Write logs to this file (overrides TODO_LOG_FILE)")
	flags.Bool("verbose", false, "Enable debug logging (overrides TODO_VERBOSE)")
}

// getConfigFromFlags loads the configuration and applies the flags the user set
func (r *RootCommand) getConfigFromFlags() error {
	if r.loader == nil {
		return fmt.Errorf("configuration loader not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	// Database configuration
	if flags.Changed("query-timeout") {
		queryTimeout, _ := flags.GetDuration("query-timeout")
		overrides.QueryTimeout = &queryTimeout
	}

	// Display configuration
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		overrides.WindowTitle = &title
	}
	if flags.Changed("list-width") {
		listWidth, _ := flags.GetInt("list-width")
		overrides.ListWidth = &listWidth
	}
	if flags.Changed("checkmark") {
		checkmark, _ := flags.GetString("checkmark")
		overrides.Checkmark = &checkmark
	}

	// Logging configuration
	if flags.Changed("log-file") {
		logFile, _ := flags.GetString("log-file")
		overrides.LogFile = &logFile
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg
	return nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	app      *App
	config   *config.Config
	registry *CommandRegistry
	logFile  io.Closer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
		app:    NewApp(cfg, nil),
	}
	root.registry = NewCommandRegistry(root.app)

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line todo list manager",
		Long: `todo manages an ordered list of prioritized tasks.

Tasks carry a status (pending, in_progress, completed, cancelled) and a
priority from 1 (lowest) to 5 (highest). Without --file the commands work on
a built-in sample project list.

EXAMPLES:
  todo demo                                # Walk through the collection operations
  todo list --status pending --stats       # Pending tasks with completion summary
  todo list --sort priority                # Highest priority first
  todo stats --json                        # Statistics as JSON
  todo export --format yaml > tasks.yaml   # Export records
  todo import tasks.yaml                   # Import records and report skipped ones

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > .env file > defaults

    TODO_COLLECTION_NAME                   Collection name for loaded files (default: My ToDo List)
    TODO_TIME_FORMAT                       Time format (default: 2006-01-02 15:04:05)
    TODO_RELATIVE_TIMES                    Show relative creation times (default: false)
    TODO_LOG_LEVEL                         Log level (default: info)
    TODO_LOG_FILE                          Rotating log file (default: none)
    TODO_LOG_MAX_SIZE_MB                   Log size before rotation (default: 10)
    TODO_LOG_MAX_BACKUPS                   Rotated files kept (default: 3)
    TODO_LOG_MAX_AGE_DAYS                  Days rotated files are kept (default: 28)
    TODO_LOG_COMPRESS                      Compress rotated files (default: true)
    TODO_VERBOSE                           Verbose output and logging (default: false)
    TODO_LIST_DEFAULT_SORT                 none, priority, name or created (default: none)
    TODO_EXPORT_DEFAULT_FORMAT             json, yaml or csv (default: json)
    TODO_DEBUG                             Force debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.setupLogger()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the log file afterwards
func (r *RootCommand) Execute() error {
	defer r.closeLogger()
	return r.cmd.Execute()
}

func (r *RootCommand) closeLogger() {
	if r.logFile == nil {
		return
	}
	if err := r.logFile.Close(); err != nil {
		logging.Debugln("closing log file:", err)
	}
	r.logFile = nil
}

// SetArgs sets the arguments used instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput directs command output and errors to w
func (r *RootCommand) SetOutput(w io.Writer) {
	r.cmd.SetOut(w)
	r.cmd.SetErr(w)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("file", "", "Record file (JSON or YAML) to load instead of the sample list")
	flags.String("name", "", "Collection name for loaded files (overrides TODO_COLLECTION_NAME)")
	flags.Bool("verbose", false, "Show timestamps and log to stderr (overrides TODO_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides TODO_LOG_LEVEL)")
	flags.String("log-file", "", "Rotating log file (overrides TODO_LOG_FILE)")
	flags.String("time-format", "", "Time display format (overrides TODO_TIME_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Demonstrate the collection operations on the sample list",
		Args:  cobra.NoArgs,
		RunE:  r.run("demo"),
	}

	listHandler := r.mustGet("list").(*ListCommand)
	listOpts := listHandler.Options()
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks as a numbered table.

Examples:
  todo list                                # All tasks in insertion order
  todo list --status in_progress           # Only tasks in progress
  todo list --sort name --reverse          # Z to A
  todo list --relative                     # "created 3 minutes ago"`,
		Args: cobra.NoArgs,
		RunE: r.run("list"),
	}
	listCmd.Flags().StringVar(&listOpts.Status, "status", "", "Show only tasks with this status")
	listCmd.Flags().StringVar(&listOpts.Sort, "sort", "", "Sort by none, priority, name or created (overrides TODO_LIST_DEFAULT_SORT)")
	listCmd.Flags().BoolVar(&listOpts.Reverse, "reverse", false, "Reverse the sort order")
	listCmd.Flags().BoolVar(&listOpts.Stats, "stats", false, "Append completion statistics")
	listCmd.Flags().BoolVar(&listOpts.Relative, "relative", false, "Show creation times relative to now")

	statsHandler := r.mustGet("stats").(*StatsCommand)
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Args:  cobra.NoArgs,
		RunE:  r.run("stats"),
	}
	statsCmd.Flags().BoolVar(&statsHandler.AsJSON, "json", false, "Print statistics as JSON")

	exportHandler := r.mustGet("export").(*ExportCommand)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write task records to stdout",
		Long: `Write every task as a record with name, status, priority, createdAt and updatedAt.

Supported formats:
  json - indented JSON list
  yaml - YAML sequence, readable by import
  csv  - comma-separated values with a header row`,
		Args: cobra.NoArgs,
		RunE: r.run("export"),
	}
	exportCmd.Flags().StringVar(&exportHandler.Format, "format", "", "json, yaml or csv (overrides TODO_EXPORT_DEFAULT_FORMAT)")

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import task records from a JSON or YAML file",
		Long: `Import task records into a new collection and print it.

Records with a missing name, an unknown status, a priority outside 1-5 or an
unreadable timestamp are skipped and reported; the rest are imported.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run("import"),
	}

	r.cmd.AddCommand(
		demoCmd,
		listCmd,
		statsCmd,
		exportCmd,
		importCmd,
	)
}

func (r *RootCommand) run(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return r.registry.Execute(name, cmd.OutOrStdout(), args)
	}
}

func (r *RootCommand) mustGet(name string) Command {
	command, ok := r.registry.Get(name)
	if !ok {
		panic(fmt.Sprintf("command %q is not registered", name))
	}
	return command
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		overrides.CollectionName = &name
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		overrides.LogLevel = &level
	}
	if flags.Changed("log-file") {
		file, _ := flags.GetString("log-file")
		overrides.LogFile = &file
	}
	if flags.Changed("time-format") {
		format, _ := flags.GetString("time-format")
		overrides.TimeFormat = &format
	}

	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	file, _ := flags.GetString("file")
	r.app.SetSource(file)
	return nil
}

// setupLogger attaches a logger when diagnostics were asked for. Without
// --verbose or a log file, collection events are discarded.
func (r *RootCommand) setupLogger() error {
	if !r.config.Application.Verbose && r.config.Logging.File == "" && !logging.DebugEnabled() {
		return nil
	}

	logger, logFile, err := logging.New(logging.Options{
		Level:      r.config.Logging.Level,
		File:       r.config.Logging.File,
		MaxSizeMB:  r.config.Logging.MaxSizeMB,
		MaxBackups: r.config.Logging.MaxBackups,
		MaxAgeDays: r.config.Logging.MaxAgeDays,
		Compress:   r.config.Logging.Compress,
	})
	if err != nil {
		return err
	}
	r.closeLogger()
	r.logFile = logFile
	r.app.SetLogger(logger)
	logging.Debugf("logging at %s level\n", logger.GetLevel())
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mdkaif10/codefolio/internal/app"
	"github.com/mdkaif10/codefolio/internal/cli"
	"github.com/mdkaif10/codefolio/internal/config"
	"github.com/mdkaif10/codefolio/internal/keybinds"
	"github.com/mdkaif10/codefolio/internal/logging"
	"github.com/mdkaif10/codefolio/internal/prefs"
	"github.com/mdkaif10/codefolio/internal/resume"
	"github.com/mdkaif10/codefolio/internal/storage"
	"github.com/mdkaif10/codefolio/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codefolio",
	Short: "codefolio - a portfolio in a terminal code editor",
	Long: `codefolio presents MD KAIF's portfolio as a code editor in the terminal:
a file explorer, an editor pane and a small command terminal.

Run without arguments to start the TUI.

Examples:
  codefolio                            # Start interactive TUI
  codefolio exec help about            # Run terminal commands headless
  echo coffee | codefolio exec -o json # Commands from stdin, JSON output
  codefolio cat experience.ts          # Print a file
  codefolio resume -f md               # Write the resume as Markdown
  codefolio prefs reset                # Restore default preferences`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()
		return runTUI(env)
	},
}

var execCmd = &cobra.Command{
	Use:   "exec [command...]",
	Short: "Run terminal commands without the TUI",
	Long: `Run terminal commands against the stored preferences and print the
transcript. Each argument is one command; with no arguments, commands are
read from stdin one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		return cli.Exec(env.shell, cli.ExecOptions{
			Commands:     args,
			Input:        cmd.InOrStdin(),
			Output:       cmd.OutOrStdout(),
			OutputFormat: flagOutput,
		})
	},
}

var catCmd = &cobra.Command{
	Use:   "cat [file]",
	Short: "Print a portfolio file",
	Long: `Print the content of a portfolio file. Without an argument, pick the
file from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		opts := cli.CatOptions{
			Output:       cmd.OutOrStdout(),
			OutputFormat: flagOutput,
			Theme:        env.shell.Theme(),
			Color:        flagColor,
		}
		if len(args) > 0 {
			opts.File = args[0]
		}
		return cli.Cat(opts)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Export the resume as Markdown or HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resume.ParseFormat(flagResumeFormat)
		if err != nil {
			return err
		}

		if flagResumeOut == "-" {
			out, err := resume.Render(format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		}

		path := flagResumeOut
		if path == "" {
			path = resume.DefaultFileName(format)
		}
		if err := resume.Write(path, format); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Resume saved to %s\n", path)
		return nil
	},
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show stored preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()
		return cli.ShowPrefs(cmd.OutOrStdout(), env.prefs.Load(), flagOutput)
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default theme and coffee count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		if err := cli.ResetPrefs(env.prefs); err != nil {
			return fmt.Errorf("failed to reset preferences: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Preferences reset")
		return nil
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Validate keybinds.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := userKeybindsPath()
		if err != nil {
			return err
		}

		cfg, err := keybinds.LoadConfig(path)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s not found, using default keybindings\n", path)
			return nil
		}
		if err != nil {
			return err
		}

		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return fmt.Errorf("%s has %d error(s)", path, len(result.Errors))
		}
		return nil
	},
}

var keybindsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write keybinds.json with the default bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := userKeybindsPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := keybinds.CreateExampleConfig(path); err != nil {
			return fmt.Errorf("failed to write keybinds: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Keybindings written to %s\n", path)
		return nil
	},
}

var keybindsListCmd = &cobra.Command{
	Use:       "list [context]",
	Short:     "Show the effective keybindings for a context",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: contextNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		context := keybinds.ContextExplorer
		if len(args) == 1 {
			context = keybinds.Context(args[0])
			if !slices.Contains(keybinds.Contexts, context) {
				return fmt.Errorf("unknown context %q (valid: %s)", args[0], strings.Join(contextNames(), ", "))
			}
		}

		path, err := userKeybindsPath()
		if err != nil {
			return err
		}
		registry, err := keybinds.LoadOrDefault(path)
		if err != nil {
			return err
		}

		for _, b := range registry.ListBindings(context) {
			key := b.Key
			if key == " " {
				key = "space"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-12s %s\n", b.Context, key, b.Action)
		}
		return nil
	},
}

func contextNames() []string {
	names := make([]string, len(keybinds.Contexts))
	for i, c := range keybinds.Contexts {
		names[i] = string(c)
	}
	return names
}

// Persistent flags
var (
	flagStorage   string
	flagLogLevel  string
	flagConfigDir string
)

// Subcommand flags
var (
	flagOutput       string
	flagColor        bool
	flagNoConfetti   bool
	flagResumeFormat string
	flagResumeOut    string
	flagForce        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "Preference storage backend (sqlite/json/memory)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Configuration directory (default ~/.codefolio)")
	rootCmd.Flags().BoolVar(&flagNoConfetti, "no-confetti", false, "Disable the coffee celebration animation")

	execCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")
	catCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/ts/json/yaml)")
	catCmd.Flags().BoolVar(&flagColor, "color", false, "Highlight ts output")
	prefsCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")

	resumeCmd.Flags().StringVarP(&flagResumeFormat, "format", "f", "html", "Resume format (md/html)")
	resumeCmd.Flags().StringVarP(&flagResumeOut, "output", "o", "", "Output file, - for stdout (default MD_KAIF_resume.<format>)")

	keybindsInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing keybinds.json")

	prefsCmd.AddCommand(prefsResetCmd)
	keybindsCmd.AddCommand(keybindsInitCmd)
	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// environment is everything a command needs once configuration is loaded
type environment struct {
	settings config.Settings
	backend  storage.Store
	prefs    *prefs.Store
	shell    *app.Shell
}

func (e *environment) close() {
	if err := e.backend.Close(); err != nil {
		logging.L().Warn("failed to close storage", zap.Error(err))
	}
	_ = logging.Sync()
}

// setup loads settings, applies flag overrides, starts logging and opens
// the preference store
func setup() (*environment, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		return nil, err
	}
	if flagStorage != "" {
		settings.Storage = flagStorage
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := logging.Init(logging.Config{
		Level:      settings.LogLevel,
		Format:     "json",
		OutputPath: config.LogFile,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger := logging.L()

	backend, err := storage.Open(settings.Storage, config.StoragePath(settings.Storage))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", settings.Storage, err)
	}
	logger.Debug("storage opened", zap.String("backend", settings.Storage))

	store := prefs.New(backend, logger.Named("prefs"))
	shell := app.New(store, app.WithLogger(logger.Named("app")))

	return &environment{
		settings: settings,
		backend:  backend,
		prefs:    store,
		shell:    shell,
	}, nil
}

func runTUI(env *environment) error {
	logger := logging.L()

	registry, err := keybinds.LoadOrDefault(keybindsPath(env.settings))
	if err != nil {
		return err
	}
	if result := keybinds.NewValidator().ValidateRegistry(registry); result.HasWarnings() {
		logger.Warn("keybinding warnings", zap.String("result", result.String()))
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return tui.Run(env.shell, tui.Options{
		Keybinds:  registry,
		Logger:    logger.Named("tui"),
		Confetti:  env.settings.ConfettiEnabled() && !flagNoConfetti,
		ResumeDir: wd,
	})
}

// initConfig sets up ~/.codefolio or the --config-dir override
func initConfig() error {
	var err error
	if flagConfigDir != "" {
		err = config.InitializeAt(config.ExpandHome(flagConfigDir))
	} else {
		err = config.Initialize()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	return nil
}

// userKeybindsPath resolves keybinds.json from config.yaml without opening
// the preference store
func userKeybindsPath() (string, error) {
	if err := initConfig(); err != nil {
		return "", err
	}
	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		return "", err
	}
	return keybindsPath(settings), nil
}

// keybindsPath prefers the settings override over the default location
func keybindsPath(settings config.Settings) string {
	if settings.KeybindsFile != "" {
		return settings.KeybindsFile
	}
	return config.KeybindsFile
}

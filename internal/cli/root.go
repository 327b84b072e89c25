package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/0xalexb/sitecfg/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables read as flag defaults, after the env file is loaded.
const (
	EnvLogLevel  = "SITECFG_LOG_LEVEL"
	EnvLogFormat = "SITECFG_LOG_FORMAT"
	EnvAddr      = "SITECFG_ADDR"
)

const defaultEnvFile = ".env"

type globalFlags struct {
	logLevel  string
	logFormat string
	envFile   string
}

// NewRootCommand builds the sitecfg command tree. Command output goes to out;
// logs and errors go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "sitecfg",
		Short: "Compose documentation-site configuration",
		Long: `sitecfg composes the configuration of a documentation site from a site file
(YAML, TOML or JSONC), a dark and a light code theme and a sidebar description.

The composed configuration is validated as a whole: every problem is reported
with the path of the offending entry.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return flags.setup(cmd, errOut)
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn",
		"log level: debug, info, warn or error (env "+EnvLogLevel+")")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", logging.FormatText,
		"log format: text or json (env "+EnvLogFormat+")")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", defaultEnvFile,
		"file of KEY=value defaults loaded before reading the environment")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newComposeCommand(),
		newValidateCommand(),
		newTreeCommand(),
		newRenderCommand(),
		newServeCommand(flags),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	}

	return ExitCode(err)
}

func (f *globalFlags) setup(cmd *cobra.Command, errOut io.Writer) error {
	err := godotenv.Load(f.envFile)
	if err != nil && !(errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("env-file")) {
		return fmt.Errorf("loading env file %q: %w", f.envFile, err)
	}

	envDefault(cmd, "log-level", EnvLogLevel)
	envDefault(cmd, "log-format", EnvLogFormat)

	logger := logging.NewLogger(logging.LoggerConfig{Level: f.logLevel, Format: f.logFormat}, errOut)
	slog.SetDefault(logger)

	return nil
}

// envDefault copies the environment variable into the flag unless the flag
// was set on the command line.
func envDefault(cmd *cobra.Command, flag, env string) {
	if cmd.Flags().Changed(flag) {
		return
	}

	value, ok := os.LookupEnv(env)
	if !ok || value == "" {
		return
	}

	if err := cmd.Flags().Set(flag, value); err != nil {
		slog.Warn("ignoring environment default", slog.String("env", env), slog.Any("error", err))
	}
}

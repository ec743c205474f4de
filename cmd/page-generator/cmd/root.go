package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bianoble/page-generator/internal/logging"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	logLevel   string
	logFile    string
	envFile    string
	timeout    time.Duration
	quiet      bool
)

// logger is built before any command runs; closeLog releases the log file.
var (
	logger   = zap.NewNop().Sugar()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "page-generator",
	Short: "Generate Confluence pages from HTML templates",
	Long: `page-generator renders an HTML template with the variables declared in a
JSON (or YAML) config file and publishes the result as a new Confluence page.

The template is either a local HTML file or an existing Confluence page
addressed by URL. Credentials may be given inline or as env.<NAME> references
to environment variables.

Run without a subcommand to generate the configured page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, cleanup, err := logging.New(logging.Options{Level: logLevel, File: logFile})
		if err != nil {
			return err
		}
		logger, closeLog = log, cleanup
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), generateOptions{})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("page-generator %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config_file", "c", "", "path to the JSON or YAML config file")
	pf.StringVarP(&logLevel, "log_level", "l", "warning", "log level: "+strings.Join(logging.LevelNames, ", "))
	pf.StringVar(&logFile, "log_file", "logs.log", "log file path (empty disables file logging)")
	pf.StringVar(&envFile, "env_file", "", "dotenv file loaded before resolving env.<NAME> credentials")
	pf.DurationVar(&timeout, "timeout", 30*time.Second, "timeout for each HTTP request")
	pf.BoolVar(&quiet, "quiet", false, "minimal output (errors only)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()
	_ = closeLog()
	if err != nil {
		errorf("%v", err)
		return err
	}
	return nil
}

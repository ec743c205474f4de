package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/page-generator/internal/config"
	"github.com/bianoble/page-generator/internal/credentials"
	"github.com/bianoble/page-generator/internal/source"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved configuration",
	Long: `Displays the page-generator version, the config file, the mandatory keys,
where the template comes from, and the template variables in application
order. Credentials are never printed; env.<NAME> references are shown by name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printInfo(cfg)
		return nil
	},
}

func printInfo(cfg *config.Config) {
	p := func(format string, args ...any) { fmt.Fprintf(stdout, format+"\n", args...) }

	p("page-generator %s", version)
	p("  config:        %s", configPath)
	p("  log level:     %s", logLevel)
	p("  log file:      %s", logFile)
	p("")
	p("  host:          %s", cfg.HostURL())
	p("  user:          %s", describeCredential(cfg.User(), false))
	p("  password:      %s", describeCredential(cfg.Password(), true))
	p("  space:         %s", cfg.SpaceKey())
	p("  parent page:   %s", cfg.ParentPageID())
	p("  page title:    %s", cfg.PageTitle())

	kind, err := source.Classify(nil, cfg.Source())
	if err != nil {
		p("  source:        %s (not found)", cfg.Source())
	} else {
		p("  source:        %s (%s)", cfg.Source(), kind)
	}

	vars := cfg.TemplateVariables()
	if len(vars) > 0 {
		p("\nTemplate variables:")
		for _, v := range vars {
			p("  %-15s → %s", v.Name, v.Value)
		}
	}
}

// describeCredential shows env references by name and hides secrets.
func describeCredential(value string, secret bool) string {
	if name, ok := credentials.EnvReference(value); ok {
		return "$" + name + " (environment)"
	}
	if secret {
		return "********"
	}
	return value
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

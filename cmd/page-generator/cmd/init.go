package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplateJSON is the default config scaffold. Nesting is free-form:
// keys are matched by their leaf name.
const initTemplateJSON = `{
  "confluence": {
    "host_url": "https://confluence.example.com",
    "user": "env.CONFLUENCE_USER",
    "pass": "env.CONFLUENCE_PASSWORD"
  },
  "page": {
    "source": "template.html",
    "space_key": "SPACE",
    "parent_page_id": "123456",
    "page_title": "My generated page"
  },
  "variables": {
    "$Title": "Hello",
    "$Author": "Your Name"
  }
}
`

// initTemplateYAML is the YAML variant written for .yaml/.yml paths.
const initTemplateYAML = `# page-generator configuration
confluence:
  host_url: https://confluence.example.com
  # env.<NAME> reads the value from the environment
  user: env.CONFLUENCE_USER
  pass: env.CONFLUENCE_PASSWORD

page:
  # a local HTML file or a Confluence page URL
  source: template.html
  space_key: SPACE
  parent_page_id: "123456"
  page_title: My generated page

# every key starting with "$" is replaced in the template
variables:
  $Title: Hello
  $Author: Your Name
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Creates a config file at --config_file (default config.json) with every
mandatory key and two example template variables. A .yaml or .yml path gets
the YAML variant.

Use --force to overwrite an existing configuration file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if outPath == "" {
			outPath = "config.json"
		}
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate(outPath)), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Set host_url, space_key, parent_page_id and page_title")
		info("  2. Export CONFLUENCE_USER and CONFLUENCE_PASSWORD (or use --env_file)")
		info("  3. Run 'page-generator -c %s generate --dry-run' to preview", filepath.Base(outPath))
		return nil
	},
}

func initTemplate(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return initTemplateYAML
	default:
		return initTemplateJSON
	}
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}

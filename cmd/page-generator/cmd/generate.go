package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	dryRun bool
	vars   []string
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the template and create the configured page",
	Long: `Loads the config, fetches the template (a local file or a Confluence page
URL), replaces every template variable, and creates the page under the
configured parent in the configured space.

Use --set '$Name=value' to override a template variable for one run, and
--dry-run to print the rendered HTML instead of creating the page. For local
templates a dry run never contacts the server; a URL template is still
fetched from Confluence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), genOpts)
	},
}

func runGenerate(ctx context.Context, opts generateOptions) error {
	m, err := newManager(opts.vars)
	if err != nil {
		return err
	}

	if opts.dryRun {
		res, err := m.Render(ctx)
		if err != nil {
			return err
		}
		for _, name := range res.Missing {
			errorf("variable %s not found in template", name)
		}
		fmt.Fprintln(stdout, res.HTML)
		return nil
	}

	res, err := m.Generate(ctx)
	if err != nil {
		return err
	}
	info("Page %q created in space %s", res.Page.Title, res.Page.SpaceKey)
	info("  %s", res.URL)
	return nil
}

func init() {
	generateCmd.Flags().BoolVar(&genOpts.dryRun, "dry-run", false, "print the rendered HTML instead of creating the page")
	generateCmd.Flags().StringArrayVar(&genOpts.vars, "set", nil, "override a template variable ('$Name=value'), repeatable")
	rootCmd.AddCommand(generateCmd)
}

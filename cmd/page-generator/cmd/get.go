package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/page-generator/internal/transform"
)

var (
	getSpace    string
	getMarkdown bool
)

var getCmd = &cobra.Command{
	Use:   "get <url | page-id | title>",
	Short: "Print the storage HTML of an existing page",
	Long: `Fetches an existing page and prints its body. The page is addressed by:

  a URL       https://host/pages/viewpage.action?pageId=123
              https://host/display/SPACE/Page+Title
  an id       123
  a title     "Page Title" --space SPACE

Use --markdown to convert the HTML body to Markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(nil)
		if err != nil {
			return err
		}

		content, err := fetchContent(cmd.Context(), m, args[0], getSpace)
		if err != nil {
			return err
		}

		if getMarkdown {
			content, err = transform.ToMarkdown(content)
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(stdout, content)
		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&getSpace, "space", "", "space key; treats the argument as a page title")
	getCmd.Flags().BoolVar(&getMarkdown, "markdown", false, "convert the page body to Markdown")
	rootCmd.AddCommand(getCmd)
}

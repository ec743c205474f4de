package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bianoble/page-generator/internal/pageurl"
)

// parsedURL is the printed form of a parsed page URL.
type parsedURL struct {
	URL            string `yaml:"url"`
	Kind           string `yaml:"kind"`
	PageID         string `yaml:"page_id,omitempty"`
	Space          string `yaml:"space,omitempty"`
	Title          string `yaml:"title,omitempty"`
	FormattedTitle string `yaml:"formatted_title,omitempty"`
}

var parseURLCmd = &cobra.Command{
	Use:   "parse-url <url>",
	Short: "Show how a Confluence page URL is interpreted",
	Long: `Classifies a URL as a bare host, a pageId URL, or a /display/<space>/<title>
URL and prints the extracted parts. No request is sent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := describeURL(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, out)
		return nil
	},
}

func describeURL(url string) (string, error) {
	p, err := pageurl.Parse(url)
	if err != nil {
		return "", err
	}
	doc := parsedURL{
		URL:    url,
		Kind:   p.Kind.String(),
		PageID: p.ID,
		Space:  p.Space,
		Title:  p.Title,
	}
	if p.Kind == pageurl.SpaceTitleURL {
		doc.FormattedTitle = p.FormattedTitle()
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(parseURLCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <page-id>",
	Short: "Delete a page by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if !digitsPattern.MatchString(id) {
			return fmt.Errorf("invalid page id %q — expected digits only", id)
		}

		m, err := newManager(nil)
		if err != nil {
			return err
		}
		if err := m.Delete(cmd.Context(), id); err != nil {
			return err
		}
		info("Deleted page %s", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

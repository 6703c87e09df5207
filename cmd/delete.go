/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a device alias",
	Long: `Delete a friendly name from the binding store.

The device itself is untouched; only the stored alias is removed.

Examples:
  ttynamed delete probe1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if err := openStore().Delete(name); err != nil {
			exitWithError(err)
		}

		fmt.Printf("%s was removed\n", name)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

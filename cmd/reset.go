/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/allbin/ttynamed"
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset <name|device>",
	Short: "USB-reset a hung device by alias or node",
	Long: `Perform a USB-level reset of a device, recovering hardware in a
hung/unresponsive state without physically replugging it.

The argument is a friendly name (resolved first) or a /dev node.

Requires the usbreset utility (usbutils package) and appropriate
permissions, typically root/sudo.

Examples:
  ttynamed reset probe1
  ttynamed reset /dev/ttyUSB0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		devicePath := args[0]

		if !strings.HasPrefix(devicePath, "/") {
			resolver := ttynamed.NewResolver(openStore())
			resolver.Devices = newEnumerator()

			resolved, err := resolver.Resolve(devicePath)
			if err != nil {
				exitWithError(err)
			}
			devicePath = resolved
		}

		fmt.Printf("Resetting %s...\n", devicePath)
		if err := ttynamed.ResetUSB(newSource(), devicePath); err != nil {
			exitWithError(err)
		}
		fmt.Println("Reset complete, device re-enumerated")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/allbin/ttynamed"
	"github.com/allbin/ttynamed/internal/tui/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [device] <name>",
	Short: "Add or update a device alias",
	Long: `Add or update a friendly name for a serial device.

The device's hardware identity (vendor, product, serial number) is recorded
so the name keeps working after replugs, regardless of which /dev node the
kernel hands out. With no device argument, an interactive picker lists the
attached devices.

Examples:
  ttynamed add /dev/ttyUSB0 probe1
  ttynamed add probe1          (pick the device interactively)`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var devicePath, name string
		switch len(args) {
		case 2:
			devicePath, name = args[0], args[1]
		case 1:
			name = args[0]
			selected, err := pickDevice()
			if err != nil {
				exitWithError(err)
			}
			devicePath = selected
		}

		binder := ttynamed.NewBinder(openStore())
		binder.Devices = newEnumerator()

		binding, err := binder.Bind(name, devicePath)
		if err != nil {
			exitWithError(err)
		}

		fmt.Printf("Bound %s to %s\n", name, devicePath)
		if binding.Criteria.Degraded() {
			fmt.Fprintf(os.Stderr,
				"Warning: %s reports no serial number; the binding is tied to the current port and will break if the device is moved.\n",
				devicePath)
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// pickDevice runs the interactive device picker over the live enumeration.
func pickDevice() (string, error) {
	devices, err := newEnumerator().Enumerate()
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", fmt.Errorf("%w: no serial devices attached", ttynamed.ErrDeviceNotFound)
	}

	picker := models.NewPickerModel(devices)
	final, err := tea.NewProgram(picker).Run()
	if err != nil {
		return "", fmt.Errorf("device picker failed: %w", err)
	}

	selected := final.(*models.PickerModel).Selected()
	if selected == "" {
		return "", fmt.Errorf("no device selected")
	}
	return selected, nil
}

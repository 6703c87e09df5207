/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <device>",
	Short: "Display the hardware identity of a serial device",
	Long: `Display the hardware identity attributes behind a serial device node.

These are the attributes 'add' records as matching criteria, so this is the
place to check whether a device can be bound reliably (it needs a serial
number for a port-independent binding).

Examples:
  ttynamed info /dev/ttyUSB0
  ttynamed info /dev/ttyACM0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		devicePath := args[0]

		attrs, err := newSource().Attributes(devicePath)
		if err != nil {
			exitWithError(err)
		}

		fmt.Printf("Device Identity: %s\n\n", devicePath)
		if attrs.VendorID == "" && attrs.ProductID == "" {
			fmt.Println("  No USB identity attributes found (not a USB serial device?)")
			return
		}

		fmt.Printf("  Vendor ID:    %s\n", attrs.VendorID)
		fmt.Printf("  Product ID:   %s\n", attrs.ProductID)
		if attrs.SerialNumber != "" {
			fmt.Printf("  Serial:       %s\n", attrs.SerialNumber)
		} else {
			fmt.Printf("  Serial:       (none - bindings will be port-dependent)\n")
		}
		if attrs.BusPath != "" {
			fmt.Printf("  Bus Path:     %s\n", attrs.BusPath)
		}
		if attrs.BusNumber != "" {
			fmt.Printf("  Bus:          %s\n", attrs.BusNumber)
		}
		if attrs.DeviceNumber != "" {
			fmt.Printf("  Device:       %s\n", attrs.DeviceNumber)
		}
		if attrs.Manufacturer != "" {
			fmt.Printf("  Manufacturer: %s\n", attrs.Manufacturer)
		}
		if attrs.Product != "" {
			fmt.Printf("  Product:      %s\n", attrs.Product)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

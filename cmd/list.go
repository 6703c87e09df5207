/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/allbin/ttynamed"
	"github.com/allbin/ttynamed/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached serial devices and known aliases",
	Long: `List attached serial devices alongside the known aliases.

Rows are colour-coded:
  green  - alias bound to a device that is currently attached
  yellow - attached device with incomplete identity (hard to bind reliably)
  red    - alias whose device is not currently attached

Use --plain to disable styling for scripting.`,
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")

		store := openStore()

		devices, err := newEnumerator().Enumerate()
		if err != nil {
			exitWithError(err)
		}

		names, err := store.Names()
		if err != nil {
			exitWithError(err)
		}

		bindings := make([]ttynamed.Binding, 0, len(names))
		for _, name := range names {
			binding, err := store.Get(name)
			if err != nil {
				exitWithError(err)
			}
			bindings = append(bindings, binding)
		}

		renderListing(devices, bindings, plain)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("plain", "p", false, "Disable colour output")
}

// renderListing prints one row per attached device (with any aliases that
// match it) followed by the aliases whose hardware is absent.
func renderListing(devices []ttynamed.Device, bindings []ttynamed.Binding, plain bool) {
	style := func(s lipgloss.Style) lipgloss.Style {
		if plain {
			return lipgloss.NewStyle()
		}
		return s
	}

	const rowFormat = "%-14s %-14s %-8s %-8s %-20s"

	header := fmt.Sprintf(rowFormat, "Name", "Device", "Vendor", "Product", "Serial")
	fmt.Println(style(styles.TableHeaderStyle).Render(header))

	present := make(map[string]bool)

	for _, dev := range devices {
		printed := false
		for _, binding := range bindings {
			if !binding.Criteria.Matches(dev.Attrs) {
				continue
			}
			printed = true
			present[binding.Name] = true

			row := fmt.Sprintf(rowFormat, binding.Name, dev.Path,
				orDash(dev.Attrs.VendorID), orDash(dev.Attrs.ProductID), orDash(dev.Attrs.SerialNumber))
			fmt.Println(style(styles.PresentStyle).Render(row))
		}
		if printed {
			continue
		}

		row := fmt.Sprintf(rowFormat, "", dev.Path,
			orDash(dev.Attrs.VendorID), orDash(dev.Attrs.ProductID), orDash(dev.Attrs.SerialNumber))

		// Devices missing identity attributes are flagged: a binding made
		// from them will be port-dependent at best.
		if dev.Attrs.VendorID == "" || dev.Attrs.SerialNumber == "" {
			fmt.Println(style(styles.PartialStyle).Render(row))
		} else {
			fmt.Println(row)
		}
	}

	for _, binding := range bindings {
		if present[binding.Name] {
			continue
		}
		row := fmt.Sprintf(rowFormat, binding.Name, "(not present)",
			orDash(binding.Criteria.VendorID), orDash(binding.Criteria.ProductID),
			orDash(binding.Criteria.SerialNumber))
		fmt.Println(style(styles.MissingStyle).Render(row))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/allbin/ttynamed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ttynamed [name]",
	Short: "Find TTY devices by friendly name",
	Long: `ttynamed resolves friendly names to the /dev node a USB serial device
currently occupies.

The kernel assigns ttyUSB/ttyACM numbers in enumeration order, so the same
adapter can land on a different node after every replug. ttynamed records
the stable hardware identity of a device (vendor, product, serial number)
under a name of your choosing and finds the live node from it.

Examples:
  ttynamed add /dev/ttyUSB0 probe1   (record the device as "probe1")
  ttynamed probe1                    (print its current /dev node)
  picocom $(ttynamed probe1)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}

		resolver := ttynamed.NewResolver(openStore())
		resolver.Devices = newEnumerator()

		path, err := resolver.Resolve(args[0])
		if err != nil {
			exitWithError(err)
		}

		// The resolved node is the only stdout output, so the command is
		// usable in substitutions.
		fmt.Println(path)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $XDG_CONFIG_HOME/ttynamed/config.toml)")
	rootCmd.PersistentFlags().String("store", "",
		"binding store file (default is $XDG_CONFIG_HOME/ttynamed/devices.toml)")
	rootCmd.PersistentFlags().String("source", "sysfs",
		"attribute source: sysfs or udev")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if configDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(configDir, "ttynamed"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TTYNAMED")
	viper.AutomaticEnv()

	// A missing config file is fine; everything has defaults.
	_ = viper.ReadInConfig()
}

// openStore returns the binding store selected by flag/config, falling back
// to the per-user default location.
func openStore() ttynamed.Store {
	path := viper.GetString("store")
	if path == "" {
		var err error
		path, err = ttynamed.DefaultStorePath()
		if err != nil {
			exitWithError(err)
		}
	}
	return ttynamed.NewFileStore(path)
}

// newEnumerator builds a device enumerator with the configured attribute source.
func newEnumerator() *ttynamed.Enumerator {
	enum := ttynamed.NewEnumerator()
	enum.Source = newSource()
	return enum
}

func newSource() ttynamed.AttributeSource {
	if viper.GetString("source") == "udev" {
		return &ttynamed.UdevadmSource{}
	}
	return ttynamed.NewSysfsSource()
}

// exitWithError prints a kind-specific message to stderr and exits non-zero.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	switch {
	case errors.Is(err, ttynamed.ErrNameNotBound):
		fmt.Fprintln(os.Stderr, "Use 'ttynamed add <device> <name>' to create a binding.")
	case errors.Is(err, ttynamed.ErrAmbiguousMatch):
		fmt.Fprintln(os.Stderr, "Rebind with the device in its intended port to pin it down, or unplug the duplicates.")
	}

	os.Exit(1)
}

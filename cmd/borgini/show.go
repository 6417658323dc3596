package main

import (
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:       "show {config|include|exclude|styles}",
	Short:     "Print a profile's settings file",
	Long:      `Print one of the profile's settings files with syntax highlighting: ini-style for the config file, shell-style for the list files.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"config", "include", "exclude", "styles"},
	RunE:      showFile,
}

func showFile(cmd *cobra.Command, args []string) error {
	data := profileData()
	path, err := settingsPath(data, args[0])
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	printer := newPrinter(data)
	if args[0] == "config" {
		printer.Ini(string(content))
		return nil
	}
	printer.Shell(string(content))
	return nil
}

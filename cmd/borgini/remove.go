package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/borgini/borgini/internal/profile"
)

var removeCmd = &cobra.Command{
	Use:   "remove PROFILE...",
	Short: "Remove one or more profiles",
	Args:  cobra.MinimumNArgs(1),
	RunE:  removeProfiles,
}

func removeProfiles(cmd *cobra.Command, args []string) error {
	if err := profile.Remove(profile.Root(), args); err != nil {
		return err
	}

	plural := ""
	if len(args) > 1 {
		plural = "s"
	}
	fmt.Printf("removed profile%s:\n", plural)
	for _, name := range args {
		fmt.Printf(". %s\n", name)
	}
	return nil
}

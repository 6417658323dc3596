package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/borgini/borgini/internal/config"
	"github.com/borgini/borgini/internal/models"
	"github.com/borgini/borgini/internal/profile"
	"github.com/borgini/borgini/internal/services/runner"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing profiles",
	Long: `List every profile with its resolved repository settings, the default
profile first. Each config is read through the repair cycle, so listing
also canonicalizes the files.`,
	RunE: listProfiles,
}

func listProfiles(cmd *cobra.Command, args []string) error {
	root := profile.Root()
	names, err := profile.List(root)
	if err != nil {
		return err
	}

	data := profileData()
	printer := newPrinter(data)

	for _, name := range names {
		store := config.NewStore(profile.New(root, name).Path(profile.ConfigFile))
		if !store.Exists() {
			continue
		}
		view, err := runner.LoadView(store)
		if err != nil {
			return err
		}

		var out strings.Builder
		fmt.Fprintf(&out, "[%s]\n", name)
		for _, key := range view.SectionItems(models.DefaultSection) {
			if key == "timestamp" {
				continue
			}
			fmt.Fprintf(&out, "%s = %s\n", key, view.GetKey(models.DefaultSection, key))
		}
		printer.Ini(out.String())
	}
	return nil
}

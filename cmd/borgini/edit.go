package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/borgini/borgini/internal/profile"
)

var editorName string

var editCmd = &cobra.Command{
	Use:       "edit {config|include|exclude|styles}",
	Short:     "Edit a profile's settings file",
	Long:      `Open one of the profile's settings files in an editor. The editor comes from --editor, falling back to $EDITOR. With --dry the command is printed instead of run.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"config", "include", "exclude", "styles"},
	RunE:      editFile,
}

func init() {
	editCmd.Flags().StringVar(&editorName, "editor", "", "editor to open the file with (default $EDITOR)")
}

// settingsPath maps a settings-file argument to its path inside the
// profile directory.
func settingsPath(data *profile.Data, name string) (string, error) {
	switch name {
	case "config":
		return data.Path(profile.ConfigFile), nil
	case "include":
		return data.Path(profile.IncludeFile), nil
	case "exclude":
		return data.Path(profile.ExcludeFile), nil
	case "styles":
		return data.Path(profile.StylesFile), nil
	default:
		return "", fmt.Errorf("unknown settings file %q", name)
	}
}

func editFile(cmd *cobra.Command, args []string) error {
	data := profileData()
	path, err := settingsPath(data, args[0])
	if err != nil {
		return err
	}

	editor := editorName
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor configured: pass --editor or set $EDITOR")
	}
	if _, err := exec.LookPath(editor); err != nil {
		return fmt.Errorf("editor %q cannot be found", editor)
	}

	if dryRun {
		newPrinter(data).Shell(editor + " " + path)
		return nil
	}

	edit := exec.Command(editor, path)
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	return edit.Run()
}

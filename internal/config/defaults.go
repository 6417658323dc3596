// Package config owns the config.ini lifecycle: the canonical default
// schema, the read/repair/write cycle over the persisted file, and the
// typed view derived from the raw string values.
package config

import (
	"os"
	"os/user"

	"github.com/borgini/borgini/internal/models"
)

// Defaults returns the canonical default configuration. Every key that
// may legally appear in a persisted config file exists here; anything
// else is dropped on the next repair cycle.
//
// reponame and remotehost derive from the running host, remoteuser from
// the running user. Everything else is a literal constant. Values are
// strings because that is the wire format: booleans as True/False, unset
// as None.
func Defaults() *models.RawConfig {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	username := "root"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	cfg := models.NewRawConfig()

	def := cfg.Section(models.DefaultSection)
	def.Set("reponame", hostname)
	def.Set("repopath", models.NullMarker)
	def.Set("timestamp", "%Y-%m-%dT%H:%M:%S")
	def.Set("ssh", "True")
	def.Set("prune", "True")

	ssh := cfg.Section("SSH")
	ssh.Set("remoteuser", username)
	ssh.Set("remotehost", hostname)
	ssh.Set("port", "22")

	backup := cfg.Section("BACKUP")
	backup.Set("verbose", "True")
	backup.Set("stats", "True")
	backup.Set("list", "True")
	backup.Set("show-rc", "True")
	backup.Set("exclude-caches", "True")
	backup.Set("filter", "AME")
	backup.Set("compression", "lz4")

	prune := cfg.Section("PRUNE")
	prune.Set("verbose", "False")
	prune.Set("stats", "True")
	prune.Set("list", "True")
	prune.Set("show-rc", "True")
	prune.Set("keep-daily", "7")
	prune.Set("keep-weekly", "4")
	prune.Set("keep-monthly", "6")

	env := cfg.Section("ENVIRONMENT")
	env.Set("keyfile", models.NullMarker)

	return cfg
}

// Package runner orchestrates one backup run: read and repair the
// profile's config, derive the typed view, assemble the create and prune
// argument vectors and dispatch them.
package runner

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/borgini/borgini/internal/config"
	"github.com/borgini/borgini/internal/models"
	"github.com/borgini/borgini/internal/pathlist"
	"github.com/borgini/borgini/internal/profile"
	"github.com/borgini/borgini/internal/services/borg"
)

// Service defines the interface for the backup runner.
type Service interface {
	Run(ctx context.Context) error
}

// Notifier receives the advisory conditions surfaced during a run.
type Notifier interface {
	FirstRun()
	KeyfileMissing()
	MissingRepository()
}

// Impl implements the runner Service interface.
type Impl struct {
	data      *profile.Data
	notifier  Notifier
	previewer borg.Previewer
	logger    zerolog.Logger
	dry       bool

	executor borg.CommandExecutor
	bin      string
	now      func() time.Time
}

// New creates a runner for one profile. The borg binary is resolved
// from PATH at dispatch time.
func New(logger zerolog.Logger, data *profile.Data, notifier Notifier, previewer borg.Previewer, dry bool) *Impl {
	return &Impl{
		data:      data,
		notifier:  notifier,
		previewer: previewer,
		logger:    logger,
		dry:       dry,
		now:       time.Now,
	}
}

// NewWithExecutor creates a runner with a custom executor, binary path
// and clock (for testing).
func NewWithExecutor(
	logger zerolog.Logger,
	data *profile.Data,
	notifier Notifier,
	previewer borg.Previewer,
	dry bool,
	executor borg.CommandExecutor,
	bin string,
	now func() time.Time,
) *Impl {
	return &Impl{
		data:      data,
		notifier:  notifier,
		previewer: previewer,
		logger:    logger,
		dry:       dry,
		executor:  executor,
		bin:       bin,
		now:       now,
	}
}

// Run executes the pipeline: read config, repair and rewrite it, convert
// to the typed view, assemble the create arguments and dispatch, then
// prune when enabled. On a first run it writes the default config,
// announces it and stops without backing up.
func (s *Impl) Run(ctx context.Context) error {
	if err := s.data.EnsureDir(); err != nil {
		return err
	}
	if err := s.data.SeedDataFiles(); err != nil {
		return err
	}

	store := config.NewStore(s.data.Path(profile.ConfigFile))
	if !store.Exists() {
		if err := store.Init(); err != nil {
			return err
		}
		s.logger.Info().Str("config", store.Path()).Msg("default config written")
		s.notifier.FirstRun()
		return nil
	}

	view, err := LoadView(store)
	if err != nil {
		return err
	}

	env := s.buildEnv(view)

	assembler, err := s.newAssembler(view)
	if err != nil {
		return err
	}

	include, err := pathlist.Load(s.data.Path(profile.IncludeFile))
	if err != nil {
		return err
	}
	exclude, err := pathlist.LoadExclude(s.data.Path(profile.ExcludeFile))
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("repository", assembler.Repo()).
		Int("include", len(include)).
		Int("exclude", len(exclude)).
		Bool("dry", s.dry).
		Msg("starting backup run")

	if err := assembler.Create(ctx, env, view.RenderFlags("BACKUP"), exclude, include); err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	if view.GetKey(models.DefaultSection, "prune").IsTrue() {
		if err := assembler.Prune(ctx, env, view.RenderFlags("PRUNE")); err != nil {
			return fmt.Errorf("prune failed: %w", err)
		}
	}

	s.logger.Info().Msg("backup run completed")
	return nil
}

// LoadView reads the store through the repair cycle, rewrites the file
// in canonical form and returns the typed view. Shared with the profile
// listing, which shows every profile's resolved config.
func LoadView(store *config.Store) (*config.View, error) {
	raw, err := store.Read()
	if err != nil {
		return nil, err
	}
	if err := store.Write(raw); err != nil {
		return nil, err
	}
	return config.Convert(raw), nil
}

// buildEnv exports BORG_PASSPHRASE from the configured keyfile. A
// configured but unreadable keyfile is an advisory, not an error; the
// run continues without the secret.
func (s *Impl) buildEnv(view *config.View) []string {
	keyfile := view.GetKey("ENVIRONMENT", "keyfile")
	if keyfile.Kind() != models.KindText || keyfile.Text() == "" {
		return nil
	}

	secret, err := os.ReadFile(keyfile.Text())
	if err != nil {
		s.logger.Warn().Str("keyfile", keyfile.Text()).Msg("keyfile not found")
		s.notifier.KeyfileMissing()
		return nil
	}
	return []string{"BORG_PASSPHRASE=" + strings.TrimSpace(string(secret))}
}

func (s *Impl) newAssembler(view *config.View) (*borg.Assembler, error) {
	fields := view.GetMany(models.LookupSpec{
		{Section: "SSH", Keys: []string{"remoteuser", "remotehost", "port"}},
		{Section: models.DefaultSection, Keys: []string{"repopath", "ssh"}},
	})
	remoteUser, remoteHost, port, repoPath, ssh := fields[0], fields[1], fields[2], fields[3], fields[4]

	locator, err := borg.ResolveLocator(
		remoteUser.Text(), remoteHost.Text(), port.Text(), repoPath.Text(), ssh.IsTrue(),
	)
	if err != nil {
		s.notifier.MissingRepository()
		return nil, err
	}

	naming := view.GetMany(models.LookupSpec{
		{Section: models.DefaultSection, Keys: []string{"reponame", "timestamp"}},
	})
	name, pattern := naming[0], naming[1]

	if s.executor == nil {
		return borg.New(s.logger, s.previewer, locator, name.Text(), pattern.Text(), s.dry), nil
	}
	return borg.NewWithExecutor(
		s.logger, s.previewer, s.executor, s.bin, locator, name.Text(), pattern.Text(), s.dry, s.now(),
	), nil
}

// Package borg assembles and dispatches the argument vectors for the
// borg create and prune subcommands.
package borg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/rs/zerolog"
)

// ErrMissingRepository signals that no repository path is configured.
// The command layer turns it into a user-visible message and a non-zero
// exit; nothing here terminates the process.
var ErrMissingRepository = errors.New("path to repo not configured")

// ResolveLocator renders the repository location. With ssh the locator
// is ssh://user@host:port followed by the repository path on the remote;
// otherwise the local path is returned unchanged. This branch is the
// entire transport abstraction.
func ResolveLocator(user, host, port, repoPath string, ssh bool) (string, error) {
	if repoPath == "" {
		return "", ErrMissingRepository
	}
	if ssh {
		return fmt.Sprintf("ssh://%s@%s:%s%s", user, host, port, repoPath), nil
	}
	return repoPath, nil
}

// CommandExecutor allows mocking exec.Command in tests.
type CommandExecutor interface {
	Execute(ctx context.Context, env []string, name string, args ...string) (int, error)
}

// DefaultExecutor runs borg with inherited stdio so its progress output
// reaches the terminal directly. The exit code is surfaced, not retried.
type DefaultExecutor struct{}

// Execute runs a command with additional environment variables and
// returns its exit code.
func (e *DefaultExecutor) Execute(ctx context.Context, env []string, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), env...)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// Previewer renders dry-run command lines for the user.
type Previewer interface {
	Shell(text string)
}

// Assembler builds the create and prune argument vectors for one run
// against a single repository, then either invokes borg or previews the
// command. One instance serves exactly one create-then-optional-prune
// sequence.
type Assembler struct {
	repo      string
	archive   string
	bin       string
	dry       bool
	executor  CommandExecutor
	previewer Previewer
	logger    zerolog.Logger
}

// New creates an assembler for the repository at locator. name is the
// repository base name, pattern the strftime pattern stamped into the
// archive locator. Dry-run is forced when the borg binary is not on
// PATH.
func New(logger zerolog.Logger, previewer Previewer, locator, name, pattern string, dry bool) *Assembler {
	bin, _ := exec.LookPath("borg")
	return NewWithExecutor(logger, previewer, &DefaultExecutor{}, bin, locator, name, pattern, dry, time.Now())
}

// NewWithExecutor creates an assembler with a custom executor, binary
// path and clock (for testing).
func NewWithExecutor(
	logger zerolog.Logger,
	previewer Previewer,
	executor CommandExecutor,
	bin, locator, name, pattern string,
	dry bool,
	now time.Time,
) *Assembler {
	repo := locator + "/" + name
	return &Assembler{
		repo:      repo,
		archive:   fmt.Sprintf("%s::%s-%s", repo, name, strftime.Format(pattern, now)),
		bin:       bin,
		dry:       dry || bin == "",
		executor:  executor,
		previewer: previewer,
		logger:    logger,
	}
}

// Repo returns the resolved repository locator including the base name.
func (a *Assembler) Repo() string {
	return a.repo
}

// Archive returns the archive locator for this run.
func (a *Assembler) Archive() string {
	return a.archive
}

// BuildCreateArgs assembles the create argument vector: the subcommand,
// the BACKUP flags, the exclude tokens, the archive locator, then the
// include tokens. Excludes sit before the includes so borg gives them
// precedence for overlapping paths.
func (a *Assembler) BuildCreateArgs(flags, exclude, include []string) []string {
	args := []string{"create"}
	args = append(args, flags...)
	args = append(args, exclude...)
	args = append(args, a.archive)
	args = append(args, include...)
	return args
}

// BuildPruneArgs assembles the prune argument vector: the subcommand,
// the non-retention flags, the bare repository locator, then the
// --keep-* tokens. borg requires the retention arguments after the
// repository argument; relative order within each partition is kept.
func (a *Assembler) BuildPruneArgs(flags []string) []string {
	args := []string{"prune"}
	var keep []string
	for _, flag := range flags {
		if strings.HasPrefix(flag, "--keep-") {
			keep = append(keep, flag)
			continue
		}
		args = append(args, flag)
	}
	args = append(args, a.repo)
	args = append(args, keep...)
	return args
}

// Dispatch either invokes borg with args or, in dry-run mode, previews
// the command one token per line. The preview is pure text built from
// the tokens and the binary name; no process is spawned.
func (a *Assembler) Dispatch(ctx context.Context, env []string, args []string) error {
	if a.dry {
		bin := a.bin
		if bin == "" {
			bin = "borg"
		}
		a.previewer.Shell("\n" + bin + " " + strings.Join(args, "\n "))
		return nil
	}

	a.logger.Debug().Strs("args", args).Msg("invoking borg")
	code, err := a.executor.Execute(ctx, env, a.bin, args...)
	if err != nil {
		return fmt.Errorf("invoking borg: %w", err)
	}
	if code != 0 {
		return fmt.Errorf("borg %s exited with status %d", args[0], code)
	}
	return nil
}

// Create runs borg create with the BACKUP flags, exclude tokens and
// include tokens.
func (a *Assembler) Create(ctx context.Context, env, flags, exclude, include []string) error {
	return a.Dispatch(ctx, env, a.BuildCreateArgs(flags, exclude, include))
}

// Prune runs borg prune with the PRUNE flags.
func (a *Assembler) Prune(ctx context.Context, env, flags []string) error {
	return a.Dispatch(ctx, env, a.BuildPruneArgs(flags))
}

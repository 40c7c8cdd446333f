// Shared helpers for userbook CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/userbook/internal/screen"
	"github.com/mesh-intelligence/userbook/internal/sqlite"
	"github.com/mesh-intelligence/userbook/pkg/types"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// classify maps screen and store errors to exit codes: field validation is a
// user error, everything else is a system error.
func classify(err error) error {
	if errors.Is(err, types.ErrNameRequired) || errors.Is(err, types.ErrEmailRequired) {
		return userError(err)
	}
	return sysError(err)
}

// newLogger builds a text slog.Logger writing to w. verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	lvl := slog.LevelInfo
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log_level %q", level)
		}
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// alertWriter prints screen alerts as "<title>: <message>" lines.
func alertWriter(w io.Writer) screen.Notifier {
	return screen.NotifierFunc(func(title, message string) {
		fmt.Fprintf(w, "%s: %s\n", title, message)
	})
}

// openScreen attaches the SQLite store and mounts a screen over it. The
// returned close function detaches the store.
func (s *session) openScreen(cmd *cobra.Command) (*screen.Screen, func(), error) {
	dataDir, err := s.resolveDataDir()
	if err != nil {
		return nil, nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(s.log))
	if err := backend.Attach(storeConfig(s.cfg, dataDir)); err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) || errors.Is(err, types.ErrDBNameInvalid) {
			return nil, nil, userError(fmt.Errorf("attach store: %w", err))
		}
		return nil, nil, sysError(fmt.Errorf("attach store: %w", err))
	}
	closeFn := func() {
		if err := backend.Detach(); err != nil {
			s.log.Error("detach store", "error", err)
		}
	}

	scr := screen.New(backend, alertWriter(cmd.ErrOrStderr()), s.log)
	if err := scr.Mount(cmd.Context()); err != nil {
		closeFn()
		return nil, nil, sysError(err)
	}
	return scr, closeFn, nil
}

// renderUsers writes users as text lines or, in JSON mode, as an indented
// JSON array.
func renderUsers(w io.Writer, users []types.Record, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal users: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "(no users)")
		return err
	}
	var b strings.Builder
	for _, u := range users {
		fmt.Fprintf(&b, "#%d %s %s\n", u.ID, u.Name, u.Email)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

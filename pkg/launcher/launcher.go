// Package launcher provides an abstraction layer for the external selector
// programs qapps presents its menu through. It supports dmenu, rofi, fzf,
// bemenu, and fuzzel with a unified interface; selectors are picked by name
// or auto-detected from what is installed.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/lvim-tech/qapps/pkg/config"
)

// Launcher is one external selector program.
type Launcher interface {
	Name() string        // "dmenu", "rofi", etc.
	Description() string // short human description
	IsAvailable() bool   // installed and on PATH

	// Show pipes the options to the selector, one per line, and blocks until
	// the user picks or types a line. ErrCancelled reports dismissal.
	Show(options []string, prompt string) (string, error)
}

// New returns the selector with the given name, configured from cfg. An
// empty name auto-detects the first installed selector.
func New(name string, cfg *config.Config) (Launcher, error) {
	if name == "" {
		return Detect(cfg)
	}
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown launcher %q", name)
	}
	l := ctor(cfg.LauncherArgs(name))
	if !l.IsAvailable() {
		return nil, fmt.Errorf("launcher %s is not installed", name)
	}
	return l, nil
}

// pipe implements the selector protocol shared by every supported program:
// write all options to the child's stdin, close it, wait, and read the
// chosen line from its stdout. The child owns the screen while we block; no
// timeout applies since the wait is bounded by the user.
func pipe(name string, args, options []string) (string, error) {
	cmd := exec.Command(name, args...)
	input := ""
	if len(options) > 0 {
		input = strings.Join(options, "\n") + "\n"
	}
	cmd.Stdin = strings.NewReader(input)
	// fzf and friends draw their interface on stderr.
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && cancelledExit(exitErr.ExitCode()) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}

	// Only the protocol's trailing newline is stripped. Inner whitespace is
	// preserved: an unmatched line becomes a literal command later.
	choice := strings.TrimSuffix(string(out), "\n")
	if choice == "" {
		return "", ErrCancelled
	}
	return choice, nil
}

// cancelledExit reports whether an exit code means the user dismissed the
// menu. dmenu, rofi and bemenu exit 1 on Escape; fzf exits 130.
func cancelledExit(code int) bool {
	return code == 1 || code == 130
}

// Package run turns a selector choice into the process image to exec. The
// resolution itself is a pure value computation (an ExecPlan), so the actual
// process replacement stays at the very edge and everything before it can be
// asserted on in tests.
package run

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"

	"github.com/lvim-tech/qapps/pkg/desktop"
)

// defaultShell runs entries that do not ask for a terminal.
const defaultShell = "/bin/sh"

// placeholder matches the Exec field substitution codes from the desktop
// entry format (%f, %U, ...). qapps does not support substitution; the code
// and one trailing space are removed.
var placeholder = regexp.MustCompile("%[a-zA-Z] ?")

// Options carries the externally supplied launch environment.
type Options struct {
	// Terminal is the emulator for Terminal=true entries, invoked as
	// [Terminal, "-e", command].
	Terminal string
	// Home is the working-directory fallback for typed commands.
	Home string
}

// ExecPlan is a fully resolved launch: the argv to replace this process
// with, and the directory to enter first.
type ExecPlan struct {
	Argv []string
	Dir  string
}

// Resolve maps the selection to a catalog entry. A selection matching no
// entry is treated as a command line the user typed into the selector: run
// it in a terminal from the home directory.
func Resolve(cat desktop.Catalog, selection string, opts Options) ExecPlan {
	data, ok := cat.Lookup(selection)
	if !ok {
		data = desktop.LaunchData{
			Command:  strings.TrimSpace(selection),
			Terminal: true,
			Path:     opts.Home,
		}
	}

	command := StripPlaceholders(data.Command)
	argv := []string{defaultShell, "-c", command}
	if data.Terminal {
		argv = []string{opts.Terminal, "-e", command}
	}

	return ExecPlan{Argv: argv, Dir: data.Path}
}

// StripPlaceholders removes the unsupported substitution codes from a
// command string.
func StripPlaceholders(command string) string {
	return placeholder.ReplaceAllString(command, "")
}

// Exec enters the plan's directory and replaces the current process image.
// It returns only on failure, and any failure is fatal: the user already
// made a selection and there is no action left to fall back to.
func (p ExecPlan) Exec() error {
	if err := os.Chdir(p.Dir); err != nil {
		return fmt.Errorf("cannot enter directory %s: %w", p.Dir, err)
	}

	path, err := exec.LookPath(p.Argv[0])
	if err != nil {
		return fmt.Errorf("cannot find %s: %w", p.Argv[0], err)
	}
	if err := syscall.Exec(path, p.Argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}

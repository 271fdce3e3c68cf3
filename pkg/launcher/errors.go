package launcher

import "errors"

var (
	// ErrCancelled is returned when the user dismisses the menu or makes an
	// empty selection. Callers treat it as a clean no-op.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoLauncher is returned when no supported selector is installed.
	ErrNoLauncher = errors.New("no launcher available - please install dmenu, rofi, fzf, bemenu, or fuzzel")
)

// IsCancelled reports whether an error means the user backed out.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

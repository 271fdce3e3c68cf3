package launcher

import "os/exec"

// registry maps selector names to constructors taking the configured extra
// arguments.
var registry = map[string]func(args []string) Launcher{
	"dmenu":  func(args []string) Launcher { return NewDmenu(args) },
	"rofi":   func(args []string) Launcher { return NewRofi(args) },
	"fzf":    func(args []string) Launcher { return NewFzf(args) },
	"bemenu": func(args []string) Launcher { return NewBemenu(args) },
	"fuzzel": func(args []string) Launcher { return NewFuzzel(args) },
}

// priority is the auto-detection order.
var priority = []string{"rofi", "dmenu", "fzf", "bemenu", "fuzzel"}

// Names returns the supported selector names in detection order.
func Names() []string {
	return append([]string{}, priority...)
}

// Detect returns the first installed selector in priority order.
func Detect(cfg interface{ LauncherArgs(string) []string }) (Launcher, error) {
	for _, name := range priority {
		l := registry[name](cfg.LauncherArgs(name))
		if l.IsAvailable() {
			return l, nil
		}
	}
	return nil, ErrNoLauncher
}

// commandExists checks whether a command is on PATH.
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// Package utils provides notification utilities for qapps.
// Notification behavior is configurable via config.NotificationConfig.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/qapps/pkg/config"
)

// NotifyError sends an error notification. When running from a terminal the
// message goes to stderr instead; a launch failure under a compositor would
// otherwise vanish once the selector closes.
func NotifyError(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	if IsTerminal() {
		fmt.Fprintf(os.Stderr, "[ERROR] [%s] %s\n", title, message)
		return
	}

	tool := cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}

	sendNotification(tool, title, message, cfg.Timeout, "critical")
}

// detectNotificationTool finds an installed notification sender, preferring
// dunstify for its richer options.
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

func sendNotification(tool, title, message string, timeout int, urgency string) {
	if tool == "" {
		return
	}
	if timeout <= 0 {
		timeout = 5000
	}

	cmd := exec.Command(tool,
		"-u", urgency,
		"-t", strconv.Itoa(timeout),
		title,
		message)
	cmd.Env = os.Environ()
	cmd.Start()
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := loadDefault()
	if err != nil {
		t.Fatalf("loadDefault: %v", err)
	}
	if cfg.DefaultLauncher == "" {
		t.Error("default_launcher should be set in the embedded defaults")
	}
	if cfg.Terminal == "" {
		t.Error("terminal should be set in the embedded defaults")
	}
	if len(cfg.Apps.Directories) == 0 {
		t.Error("apps.directories should be set in the embedded defaults")
	}
	if cfg.Apps.CacheFile == "" {
		t.Error("apps.cache_file should be set in the embedded defaults")
	}
}

func TestLoadWithHomeNoUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := loadWithHome(home)
	if err != nil {
		t.Fatalf("loadWithHome: %v", err)
	}
	if cfg.Home != home {
		t.Errorf("Home = %q, want %q", cfg.Home, home)
	}
	want := filepath.Join(home, ".local/share/applications")
	if cfg.Apps.Directories[0] != want {
		t.Errorf("first directory = %q, want %q", cfg.Apps.Directories[0], want)
	}
	if cfg.Apps.CacheFile != filepath.Join(home, ".cache/qapps/applications") {
		t.Errorf("cache file = %q, tilde not expanded", cfg.Apps.CacheFile)
	}
}

func TestLoadWithHomeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "qapps")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	user := `default_launcher = "rofi"
terminal = "alacritty"

[apps]
directories = ["~/bin/applications", "/usr/share/applications"]

[launchers.rofi]
args = ["-i"]

[notifications]
enabled = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadWithHome(home)
	if err != nil {
		t.Fatalf("loadWithHome: %v", err)
	}
	if cfg.DefaultLauncher != "rofi" {
		t.Errorf("DefaultLauncher = %q, user override lost", cfg.DefaultLauncher)
	}
	if cfg.Terminal != "alacritty" {
		t.Errorf("Terminal = %q, user override lost", cfg.Terminal)
	}
	if cfg.Apps.Directories[0] != filepath.Join(home, "bin/applications") {
		t.Errorf("first directory = %q, override or expansion lost", cfg.Apps.Directories[0])
	}
	// Fields the user file does not set keep their defaults.
	if cfg.Apps.CacheFile != filepath.Join(home, ".cache/qapps/applications") {
		t.Errorf("cache file = %q, default lost on merge", cfg.Apps.CacheFile)
	}
	if got := cfg.LauncherArgs("rofi"); len(got) != 1 || got[0] != "-i" {
		t.Errorf("LauncherArgs(rofi) = %v, want [-i]", got)
	}
	if cfg.Notifications.Enabled {
		t.Error("notifications.enabled = true, user override lost")
	}
	if cfg.Notifications.Timeout == 0 {
		t.Error("notifications.timeout lost its default on merge")
	}
}

func TestLoadWithHomeBadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "qapps")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not toml = ["), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadWithHome(home)
	if err != nil {
		t.Fatalf("a malformed user config should fall back to defaults, got %v", err)
	}
	if cfg.DefaultLauncher == "" {
		t.Error("defaults not applied after bad user config")
	}
}

func TestExpandPath(t *testing.T) {
	home := "/home/test"
	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.cache/qapps", "/home/test/.cache/qapps"},
		{"/absolute/path", "/absolute/path"},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in, home); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLauncherArgsUnknown(t *testing.T) {
	cfg := &Config{}
	if got := cfg.LauncherArgs("wofi"); got != nil {
		t.Errorf("LauncherArgs(wofi) = %v, want nil", got)
	}
}

func TestInitUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := InitUserConfig(); err != nil {
		t.Fatalf("InitUserConfig: %v", err)
	}
	if _, err := os.Stat(UserConfigPath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if err := InitUserConfig(); err == nil {
		t.Error("InitUserConfig should refuse to overwrite an existing config")
	}
}

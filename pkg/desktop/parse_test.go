package desktop

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDesktop(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDesktop(t, dir, "firefox.desktop", `[Desktop Entry]
Type=Application
Name=Firefox Web Browser
Exec=firefox %u
Terminal=false
`)

	file, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if file.Path != path {
		t.Errorf("Path = %q, want %q", file.Path, path)
	}

	exec, ok := file.Get("Exec")
	if !ok || exec != "firefox %u" {
		t.Errorf("Get(Exec) = %q, %v; want %q, true", exec, ok, "firefox %u")
	}
	if _, ok := file.Get("Path"); ok {
		t.Error("Get(Path) should report absent for missing field")
	}
}

func TestParseFileValuesWithColonsAndSemicolons(t *testing.T) {
	dir := t.TempDir()
	path := writeDesktop(t, dir, "tool.desktop", `[Desktop Entry]
Type=Application
Exec=env DISPLAY=:0 tool
Categories=Network;WebBrowser;
`)

	file, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if exec, _ := file.Get("Exec"); exec != "env DISPLAY=:0 tool" {
		t.Errorf("Exec = %q, colon in value mangled", exec)
	}
	if cats, _ := file.Get("Categories"); cats != "Network;WebBrowser;" {
		t.Errorf("Categories = %q, semicolons in value mangled", cats)
	}
}

func TestParseFileMissingEntryGroup(t *testing.T) {
	dir := t.TempDir()
	path := writeDesktop(t, dir, "odd.desktop", `[Some Other Group]
Type=Application
`)

	if _, err := ParseFile(path); err == nil {
		t.Error("ParseFile should fail without a Desktop Entry group")
	}
}

func TestParseFileUnreadable(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.desktop")); err == nil {
		t.Error("ParseFile should fail for a missing file")
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name    string
		keys    map[string]string
		visible bool
	}{
		{"application", map[string]string{"Type": "Application"}, true},
		{"missing type", map[string]string{"Exec": "x"}, false},
		{"link type", map[string]string{"Type": "Link"}, false},
		{"nodisplay true", map[string]string{"Type": "Application", "NoDisplay": "true"}, false},
		{"nodisplay false", map[string]string{"Type": "Application", "NoDisplay": "false"}, true},
		{"nodisplay odd value", map[string]string{"Type": "Application", "NoDisplay": "True"}, false},
		{"hidden true", map[string]string{"Type": "Application", "Hidden": "true"}, false},
		{"hidden false", map[string]string{"Type": "Application", "Hidden": "false"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Path: "test.desktop", keys: tt.keys}
			if got := f.Visible(); got != tt.visible {
				t.Errorf("Visible() = %v, want %v", got, tt.visible)
			}
		})
	}
}

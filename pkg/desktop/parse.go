package desktop

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// entrySection is the group a launchable descriptor must carry.
const entrySection = "Desktop Entry"

// File is one parsed descriptor: the keys of its Desktop Entry group plus
// the path it came from. It lives only long enough to be folded into a
// catalog entry.
type File struct {
	Path string
	keys map[string]string
}

// ParseFile reads a .desktop file. A file that cannot be read, is not valid
// INI, or has no Desktop Entry group yields an error; callers skip such
// files rather than aborting the scan.
func ParseFile(path string) (*File, error) {
	// .desktop values may contain ':' and ';' freely, so only '=' splits
	// keys and inline comments are left alone.
	src, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:  "=",
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	sec, err := src.GetSection(entrySection)
	if err != nil {
		return nil, fmt.Errorf("parse %s: no %s group", path, entrySection)
	}

	return &File{Path: path, keys: sec.KeysHash()}, nil
}

// Get returns a field value and whether the field is present.
func (f *File) Get(key string) (string, bool) {
	v, ok := f.keys[key]
	return v, ok
}

// Visible reports whether the descriptor is a currently displayable
// application. The desktop entry format only documents "true"/"false" for
// NoDisplay and Hidden, so anything other than the exact string "false"
// hides the entry.
func (f *File) Visible() bool {
	typ, ok := f.Get("Type")
	if !ok || typ != "Application" {
		return false
	}
	if v, ok := f.Get("NoDisplay"); ok && v != "false" {
		return false
	}
	if v, ok := f.Get("Hidden"); ok && v != "false" {
		return false
	}
	return true
}

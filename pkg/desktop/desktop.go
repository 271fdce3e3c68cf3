// Package desktop builds the application catalog from freedesktop .desktop
// files. It parses descriptor files, filters out entries that should not be
// shown, and produces a deduplicated, sorted list of launchable applications.
package desktop

import "sort"

// LaunchData is everything needed to start one application.
type LaunchData struct {
	// Command is the raw Exec value, substitution codes intact.
	Command string
	// Terminal reports whether the entry asks for a terminal emulator.
	Terminal bool
	// Path is the working directory to launch in.
	Path string
}

// Entry is one selectable application.
type Entry struct {
	Name   string
	Launch LaunchData
}

// Catalog is the ordered list of applications, sorted by name. It is built
// once per invocation and never mutated afterwards.
type Catalog []Entry

// Names returns the display names in catalog order, for the selector menu.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

// Lookup finds the launch data for a display name. The catalog stays small,
// so a linear scan keeps it simple and preserves the sorted order the
// selector sees.
func (c Catalog) Lookup(name string) (LaunchData, bool) {
	for _, e := range c {
		if e.Name == name {
			return e.Launch, true
		}
	}
	return LaunchData{}, false
}

func (c Catalog) sort() {
	sort.Slice(c, func(i, j int) bool { return c[i].Name < c[j].Name })
}

package desktop

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const fileSuffix = ".desktop"

// DisplayName derives the menu name for a descriptor path: the base file
// name with the .desktop suffix stripped, lowercased. The file name is used
// instead of the Name field because Name tends to be verbose and Exec may
// launch through env.
func DisplayName(path string) string {
	return strings.ToLower(strings.TrimSuffix(filepath.Base(path), fileSuffix))
}

// Scan builds the catalog from the given directories, earliest directory
// highest priority. Unreadable directories contribute nothing; unreadable or
// malformed descriptor files are skipped. home is the working-directory
// fallback for entries without a Path field.
func Scan(dirs []string, home string) Catalog {
	var cat Catalog
	seen := make(map[string]bool)

	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+fileSuffix))
		if err != nil {
			continue
		}
		for _, path := range matches {
			file, err := ParseFile(path)
			if err != nil {
				log.Debug("skipping descriptor", "path", path, "err", err)
				continue
			}
			if !file.Visible() {
				continue
			}

			name := DisplayName(path)
			// First claim wins: directories are scanned in priority order,
			// so a name already taken belongs to a higher-priority entry.
			if seen[name] {
				continue
			}

			command, ok := file.Get("Exec")
			if !ok || command == "" {
				log.Debug("skipping descriptor", "path", path, "err", "no Exec field")
				continue
			}
			seen[name] = true

			workdir := home
			if p, ok := file.Get("Path"); ok && p != "" {
				workdir = p
			}
			terminal, _ := file.Get("Terminal")

			cat = append(cat, Entry{
				Name: name,
				Launch: LaunchData{
					Command:  command,
					Terminal: terminal == "true",
					Path:     workdir,
				},
			})
		}
	}

	cat.sort()
	return cat
}

package cache

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/lvim-tech/qapps/pkg/desktop"
)

// debounce collapses bursts of file events (package installs touch many
// descriptors at once) into a single rebuild.
const debounce = 500 * time.Millisecond

// Watcher keeps the cache warm: it monitors the source directories and
// rewrites the cache whenever a descriptor file changes.
type Watcher struct {
	store   *Store
	build   func() desktop.Catalog
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts monitoring the store's directories. build produces a fresh
// catalog on demand. Directories that cannot be watched (typically missing)
// are skipped.
func (s *Store) Watch(build func() desktop.Catalog) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		store:   s,
		build:   build,
		watcher: fw,
		done:    make(chan struct{}),
	}
	for _, dir := range s.Dirs {
		if err := fw.Add(dir); err != nil {
			log.Debug("not watching directory", "dir", dir, "err", err)
		}
	}

	go w.loop()
	return w, nil
}

// Stop closes the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
}

func (w *Watcher) loop() {
	defer close(w.done)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	dirty := false

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".desktop") {
				continue
			}
			log.Debug("descriptor change", "op", ev.Op.String(), "path", ev.Name)
			dirty = true
			timer.Reset(debounce)

		case <-timer.C:
			if !dirty {
				continue
			}
			dirty = false
			w.refresh()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Debug("watch error", "err", err)
		}
	}
}

func (w *Watcher) refresh() {
	cat := w.build()
	if err := w.store.Save(cat); err != nil {
		log.Error("cannot rewrite cache", "path", w.store.Path, "err", err)
		return
	}
	log.Debug("cache refreshed", "entries", len(cat))
}

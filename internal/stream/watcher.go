package stream

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"crashvault/internal/model"
	"crashvault/internal/vault"
	"crashvault/pkg/log"
)

// Watcher follows the vault events tree and broadcasts newly written
// event files. Every writer lands an event by renaming a temp file into
// a partition dir, so the watcher sees server-ingested and CLI-written
// events alike.
type Watcher struct {
	v   *vault.Vault
	hub *Hub
	l   log.Logger
}

// NewWatcher creates a watcher feeding hub.
func NewWatcher(v *vault.Vault, hub *Hub, l log.Logger) *Watcher {
	return &Watcher{
		v:   v,
		hub: hub,
		l:   l,
	}
}

// Run blocks until ctx is canceled. Partition dirs created while
// running are picked up as they appear.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.watchTree(fw); err != nil {
		return err
	}
	w.l.Infof(ctx, "stream watcher started | root=%s", w.v.EventsDir())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, fw, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.l.Warnf(ctx, "stream watcher: %v", err)
		}
	}
}

// watchTree registers every directory under the events root.
func (w *Watcher) watchTree(fw *fsnotify.Watcher) error {
	return filepath.WalkDir(w.v.EventsDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}

func (w *Watcher) handle(ctx context.Context, fw *fsnotify.Watcher, ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}

	info, err := os.Stat(ev.Name)
	if err != nil {
		// Rename fires for the vanished temp name too.
		return
	}

	if info.IsDir() {
		// A new partition. MkdirAll surfaces only the topmost new dir,
		// so walk down: watch first, then scan, closing the window in
		// which a file could land unseen. A file caught by both the
		// scan and its own event may be announced twice; consumers key
		// on event_id.
		w.watchNewDir(ctx, fw, ev.Name)
		return
	}

	w.announce(ctx, ev.Name)
}

func (w *Watcher) watchNewDir(ctx context.Context, fw *fsnotify.Watcher, dir string) {
	if err := fw.Add(dir); err != nil {
		w.l.Warnf(ctx, "stream watcher add %s: %v", dir, err)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			w.watchNewDir(ctx, fw, path)
			continue
		}
		w.announce(ctx, path)
	}
}

func (w *Watcher) announce(ctx context.Context, path string) {
	if filepath.Ext(path) != ".json" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var event model.Event
	if err := json.Unmarshal(data, &event); err != nil {
		w.l.Warnf(ctx, "stream watcher decode %s: %v", path, err)
		return
	}
	w.hub.Broadcast(event)
}

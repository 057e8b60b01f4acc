package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	issuesFile = "issues.json"
	configFile = "config.json"
	eventsDir  = "events"
	pidFile    = "server.pid"

	dayLayout = "2006/01/02"
)

// Vault is the on-disk layout of a CrashVault data directory: one
// issues.json index, one shared config.json document and one JSON file
// per event partitioned by UTC calendar date.
type Vault struct {
	root string
}

// New returns a Vault rooted at dir. Call EnsureDirs before first use.
func New(dir string) *Vault {
	return &Vault{root: dir}
}

// DefaultRoot resolves the vault location: $CRASHVAULT_HOME when set,
// otherwise ~/.crashvault.
func DefaultRoot() string {
	if env := os.Getenv("CRASHVAULT_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crashvault"
	}
	return filepath.Join(home, ".crashvault")
}

func (v *Vault) Root() string       { return v.root }
func (v *Vault) EventsDir() string  { return filepath.Join(v.root, eventsDir) }
func (v *Vault) IssuesPath() string { return filepath.Join(v.root, issuesFile) }
func (v *Vault) ConfigPath() string { return filepath.Join(v.root, configFile) }
func (v *Vault) PIDPath() string    { return filepath.Join(v.root, pidFile) }

// EventPathFor maps an event id and its creation time to the file the
// event lives in. It never touches the filesystem.
func (v *Vault) EventPathFor(eventID string, ts time.Time) string {
	return filepath.Join(v.EventsDir(), ts.UTC().Format(dayLayout), eventID+".json")
}

// EnsureDirs creates the vault skeleton and seeds the issue index and
// config document when missing. Existing files are left untouched.
func (v *Vault) EnsureDirs() error {
	if err := os.MkdirAll(v.EventsDir(), 0o755); err != nil {
		return fmt.Errorf("create events dir: %w", err)
	}
	if _, err := os.Stat(v.IssuesPath()); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(v.IssuesPath(), []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("seed issues file: %w", err)
		}
	}
	if _, err := os.Stat(v.ConfigPath()); errors.Is(err, os.ErrNotExist) {
		if err := v.WriteJSONAtomic(v.ConfigPath(), defaultConfigDoc()); err != nil {
			return fmt.Errorf("seed config file: %w", err)
		}
	}
	return nil
}

// WriteJSONAtomic marshals val with two-space indentation and replaces
// path in one step: write to path+".tmp", then rename over the target.
// Readers see either the old document or the new one, never a partial
// write.
func (v *Vault) WriteJSONAtomic(path string, val any) error {
	data, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadJSON reads and unmarshals one JSON document.
func (v *Vault) ReadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadConfigDoc reads config.json as a raw key set so sibling keys
// owned by other tools survive round trips. A missing or corrupt file
// degrades to the seed document instead of failing.
func (v *Vault) LoadConfigDoc() map[string]json.RawMessage {
	data, err := os.ReadFile(v.ConfigPath())
	if err != nil {
		return defaultConfigDoc()
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return defaultConfigDoc()
	}
	return doc
}

// SaveConfigDoc atomically replaces the whole config document.
func (v *Vault) SaveConfigDoc(doc map[string]json.RawMessage) error {
	return v.WriteJSONAtomic(v.ConfigPath(), doc)
}

func defaultConfigDoc() map[string]json.RawMessage {
	return map[string]json.RawMessage{"version": json.RawMessage("1")}
}

// WritePID records the serving pid so external tooling can find and
// stop the server.
func (v *Vault) WritePID(pid int) error {
	return os.WriteFile(v.PIDPath(), []byte(strconv.Itoa(pid)), 0o644)
}

// ReadPID returns the recorded server pid.
func (v *Vault) ReadPID() (int, error) {
	data, err := os.ReadFile(v.PIDPath())
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pid file: %w", err)
	}
	return pid, nil
}

// RemovePID deletes the pid file. A missing file is not an error.
func (v *Vault) RemovePID() error {
	err := os.Remove(v.PIDPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

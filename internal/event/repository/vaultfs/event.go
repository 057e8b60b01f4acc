package vaultfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	repo "crashvault/internal/event/repository"
	"crashvault/internal/model"
)

// CreateEvent writes the event to its date-partitioned file, creating
// the day directory on demand.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	path := r.v.EventPathFor(opt.Event.ID, opt.At)
	if err := r.v.WriteJSONAtomic(path, opt.Event); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToWrite
	}
	return opt.Event, nil
}

// GetOneEvent retrieves a single event by id. Returns zero-value Event
// (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	if opt.ID == "" {
		return model.Event{}, nil
	}

	var found model.Event
	err := r.walkEvents(func(_ string, ev model.Event) bool {
		if ev.ID == opt.ID {
			found = ev
			return false
		}
		return true
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToList
	}
	return found, nil
}

// ListEvents scans the whole tree, filters, sorts newest first, then
// paginates. The returned total counts all matches before pagination.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, int, error) {
	events := []model.Event{}
	err := r.walkEvents(func(_ string, ev model.Event) bool {
		if matches(ev, opt) {
			events = append(events, ev)
		}
		return true
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// ISO-8601 timestamps sort lexicographically.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp > events[j].Timestamp
	})

	total := len(events)
	if opt.Offset > 0 {
		if opt.Offset >= total {
			return []model.Event{}, total, nil
		}
		events = events[opt.Offset:]
	}
	if opt.Limit > 0 && len(events) > opt.Limit {
		events = events[:opt.Limit]
	}
	return events, total, nil
}

// DeleteEvents removes matching event files and returns how many were
// deleted. Corrupt files are skipped, never deleted.
func (r *implRepository) DeleteEvents(ctx context.Context, opt repo.DeleteEventsOptions) (int, error) {
	if opt.IssueID == 0 && opt.Before == "" {
		return 0, nil
	}

	var paths []string
	err := r.walkEvents(func(path string, ev model.Event) bool {
		if opt.IssueID != 0 && ev.IssueID != opt.IssueID {
			return true
		}
		if opt.Before != "" && (ev.Timestamp == "" || ev.Timestamp >= opt.Before) {
			return true
		}
		paths = append(paths, path)
		return true
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvents"), err)
		return 0, repo.ErrFailedToDelete
	}

	removed := 0
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			r.l.Warnf(ctx, "%s remove %s: %v", r.dsn("DeleteEvents"), filepath.Base(p), err)
			continue
		}
		removed++
	}
	return removed, nil
}

// walkEvents streams every readable event file to fn. Unreadable or
// corrupt files are skipped. fn returning false stops the walk early.
func (r *implRepository) walkEvents(fn func(path string, ev model.Event) bool) error {
	return filepath.WalkDir(r.v.EventsDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		var ev model.Event
		if err := r.v.ReadJSON(path, &ev); err != nil {
			return nil
		}
		if !fn(path, ev) {
			return filepath.SkipAll
		}
		return nil
	})
}

func matches(ev model.Event, opt repo.ListEventsOptions) bool {
	if opt.IssueID != 0 && ev.IssueID != opt.IssueID {
		return false
	}
	if opt.Level != "" && string(ev.Level) != opt.Level {
		return false
	}
	if len(opt.Tags) > 0 {
		set := make(map[string]struct{}, len(ev.Tags))
		for _, t := range ev.Tags {
			set[t] = struct{}{}
		}
		for _, t := range opt.Tags {
			if _, ok := set[t]; !ok {
				return false
			}
		}
	}
	if opt.Text != "" && !strings.Contains(strings.ToLower(ev.Message), strings.ToLower(opt.Text)) {
		return false
	}
	return true
}

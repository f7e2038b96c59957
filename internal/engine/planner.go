package engine

import (
	"errors"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/AnushkaSingh7722/study-planner/internal/storage"
)

// Planner owns all task records and the gamification counters. Every
// mutation goes through it and is written back to the state file before
// the call returns.
type Planner struct {
	store   *storage.StateStore
	history *storage.CompletionRepo
	state   *storage.State
	loadErr error
}

// Open loads the planner state from the store. A missing, unreadable or
// corrupt state file is absorbed: the planner starts from a fresh default
// state and persists it immediately. The only error surfaced here is a
// failure to write that default state.
//
// history may be nil, in which case completions are not logged.
func Open(store *storage.StateStore, history *storage.CompletionRepo) (*Planner, error) {
	p := &Planner{store: store, history: history}

	st, err := store.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			p.loadErr = err
		}
		st = storage.DefaultState()
		if saveErr := store.Save(st); saveErr != nil {
			return nil, saveErr
		}
	}
	p.state = st
	return p, nil
}

// LoadErr reports the load failure absorbed by Open, if any. A missing
// state file is a normal first run and is not reported.
func (p *Planner) LoadErr() error { return p.loadErr }

// Save writes the current state to the store. Mutating operations already
// persist before returning; this exists for the graceful-shutdown save.
func (p *Planner) Save() error {
	return p.store.Save(p.state)
}

type AddInput struct {
	Title    string
	Category string
	DueDate  *time.Time
	Priority int
	Notes    string
}

// Add creates a task and returns its id. Title validation is the caller's
// job; the engine stores whatever it is given.
func (p *Planner) Add(in AddInput) (int64, error) {
	t := storage.NewTask(in.Title, in.Category, in.DueDate, in.Priority, in.Notes)
	id := p.state.NextID
	t.ID = id
	p.state.Tasks[id] = t
	p.state.NextID++
	if err := p.Save(); err != nil {
		return 0, err
	}
	return id, nil
}

// lookup finds a task in either collection. All read paths go through it
// so the pending/completed split stays in one place.
func (p *Planner) lookup(id int64) (*storage.Task, bool) {
	if t, ok := p.state.Tasks[id]; ok {
		return t, true
	}
	if t, ok := p.state.Completed[id]; ok {
		return t, true
	}
	return nil, false
}

// Get returns the task with the given id from either collection.
func (p *Planner) Get(id int64) (*storage.Task, bool) {
	return p.lookup(id)
}

// Delete removes the task from whichever collection holds it and returns
// it. The freed id is never reused.
func (p *Planner) Delete(id int64) (*storage.Task, error) {
	var removed *storage.Task
	if t, ok := p.state.Tasks[id]; ok {
		removed = t
		delete(p.state.Tasks, id)
	} else if t, ok := p.state.Completed[id]; ok {
		removed = t
		delete(p.state.Completed, id)
	} else {
		return nil, NotFoundError{ID: id}
	}
	if err := p.Save(); err != nil {
		return nil, err
	}
	return removed, nil
}

// EditInput carries field updates for Edit. Nil fields are left unchanged.
type EditInput struct {
	Title    *string
	Category *string
	DueDate  *time.Time
	Priority *int
	Notes    *string
}

// Edit applies the non-nil updates to the task, pending or completed.
func (p *Planner) Edit(id int64, in EditInput) error {
	t, ok := p.lookup(id)
	if !ok {
		return NotFoundError{ID: id}
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	return p.Save()
}

// Entry pairs a task with its id for ordered listings.
type Entry struct {
	ID   int64
	Task *storage.Task
}

type SortBy string

const (
	SortByPriority SortBy = "priority"
	SortByDue      SortBy = "due"
	SortByID       SortBy = "id"
)

// ParseSortBy maps user input to a sort order. Unrecognized input falls
// back to id order.
func ParseSortBy(input string) SortBy {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "priority":
		return SortByPriority
	case "due":
		return SortByDue
	default:
		return SortByID
	}
}

// List returns either the pending or the completed tasks, ordered by the
// requested sort. Ties break by id so listings are stable.
func (p *Planner) List(showCompleted bool, sortBy SortBy) []Entry {
	src := p.state.Tasks
	if showCompleted {
		src = p.state.Completed
	}
	items := make([]Entry, 0, len(src))
	for id, t := range src {
		items = append(items, Entry{ID: id, Task: t})
	}

	switch sortBy {
	case SortByPriority:
		sort.Slice(items, func(i, j int) bool {
			if items[i].Task.Priority != items[j].Task.Priority {
				return items[i].Task.Priority < items[j].Task.Priority
			}
			return items[i].ID < items[j].ID
		})
	case SortByDue:
		sort.Slice(items, func(i, j int) bool {
			di, dj := items[i].Task.DueDate, items[j].Task.DueDate
			// No due date sorts after every dated task.
			if di == nil && dj != nil {
				return false
			}
			if di != nil && dj == nil {
				return true
			}
			if di != nil && dj != nil && !di.Equal(*dj) {
				return di.Before(*dj)
			}
			return items[i].ID < items[j].ID
		})
	default:
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	}
	return items
}

// Search returns tasks from both collections whose title, notes or
// category contains the keyword, case-insensitively. Pending matches come
// first, each group in id order.
func (p *Planner) Search(keyword string) []Entry {
	kw := strings.ToLower(keyword)
	var out []Entry
	for _, src := range []map[int64]*storage.Task{p.state.Tasks, p.state.Completed} {
		var group []Entry
		for id, t := range src {
			if strings.Contains(strings.ToLower(t.Title), kw) ||
				strings.Contains(strings.ToLower(t.Notes), kw) ||
				strings.Contains(strings.ToLower(t.Category), kw) {
				group = append(group, Entry{ID: id, Task: t})
			}
		}
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		out = append(out, group...)
	}
	return out
}

// IsCompleted reports whether the id currently sits in the completed
// collection.
func (p *Planner) IsCompleted(id int64) bool {
	_, ok := p.state.Completed[id]
	return ok
}

// Stats is a derived snapshot of the planner's counters.
type Stats struct {
	Pending      int
	Completed    int
	Total        int
	XP           int
	Level        int
	Achievements []string
}

func (p *Planner) Stats() Stats {
	achievements := make([]string, len(p.state.Achievements))
	copy(achievements, p.state.Achievements)
	sort.Strings(achievements)
	return Stats{
		Pending:      len(p.state.Tasks),
		Completed:    len(p.state.Completed),
		Total:        len(p.state.Tasks) + len(p.state.Completed),
		XP:           p.state.XP,
		Level:        p.state.Level,
		Achievements: achievements,
	}
}

package storage

import (
	"encoding/json"
	"time"
)

const (
	DefaultCategory = "General"
	DefaultPriority = 3

	dateLayout = "2006-01-02"
)

// Task is a single unit of work. A task lives in exactly one of the two
// state maps (Tasks or Completed) at any time.
type Task struct {
	ID          int64
	Title       string
	Category    string
	DueDate     *time.Time // date only, nil means no deadline
	Priority    int        // 1 (high) .. 5 (low)
	Notes       string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewTask builds a task with defaults applied. The id is assigned by the
// planner, not here.
func NewTask(title, category string, dueDate *time.Time, priority int, notes string) *Task {
	if category == "" {
		category = DefaultCategory
	}
	if priority == 0 {
		priority = DefaultPriority
	}
	return &Task{
		Title:     title,
		Category:  category,
		DueDate:   dueDate,
		Priority:  priority,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}

// taskJSON is the on-disk shape. Optional fields are pointers so a missing
// key can be told apart from an explicit zero value when decoding legacy
// files.
type taskJSON struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"`
	Priority    *int    `json:"priority"`
	Notes       *string `json:"notes"`
	CreatedAt   *string `json:"created_at"`
	CompletedAt *string `json:"completed_at"`
}

func (t *Task) MarshalJSON() ([]byte, error) {
	rec := taskJSON{
		ID:       t.ID,
		Title:    t.Title,
		Category: &t.Category,
		Priority: &t.Priority,
		Notes:    &t.Notes,
	}
	if t.DueDate != nil {
		s := t.DueDate.Format(dateLayout)
		rec.DueDate = &s
	}
	created := t.CreatedAt.Format(time.RFC3339)
	rec.CreatedAt = &created
	if t.CompletedAt != nil {
		s := t.CompletedAt.Format(time.RFC3339)
		rec.CompletedAt = &s
	}
	return json.Marshal(rec)
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var rec taskJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	t.ID = rec.ID
	t.Title = rec.Title

	t.Category = DefaultCategory
	if rec.Category != nil {
		t.Category = *rec.Category
	}
	t.Priority = DefaultPriority
	if rec.Priority != nil {
		t.Priority = *rec.Priority
	}
	t.Notes = ""
	if rec.Notes != nil {
		t.Notes = *rec.Notes
	}

	// Persisted data is trusted: an unparseable date loads as unset instead
	// of failing the whole state file.
	t.DueDate = parseDate(rec.DueDate)
	t.CompletedAt = parseTimestamp(rec.CompletedAt)
	t.CreatedAt = time.Now()
	if ts := parseTimestamp(rec.CreatedAt); ts != nil {
		t.CreatedAt = *ts
	}
	return nil
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if d, err := time.Parse(dateLayout, *s); err == nil {
		return &d
	}
	if d, err := time.Parse(time.RFC3339, *s); err == nil {
		return &d
	}
	return nil
}

func parseTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if ts, err := time.Parse(time.RFC3339, *s); err == nil {
		return &ts
	}
	return nil
}

// State is the whole persisted planner aggregate. Map keys marshal as
// string-encoded ids, matching the data file layout.
type State struct {
	NextID       int64           `json:"next_id"`
	XP           int             `json:"xp"`
	Level        int             `json:"level"`
	Achievements []string        `json:"achievements"`
	Tasks        map[int64]*Task `json:"tasks"`
	Completed    map[int64]*Task `json:"completed"`
}

// DefaultState is the fresh state written when no data file exists yet.
func DefaultState() *State {
	return &State{
		NextID:       1,
		XP:           0,
		Level:        1,
		Achievements: []string{},
		Tasks:        map[int64]*Task{},
		Completed:    map[int64]*Task{},
	}
}

// Normalize repairs a freshly decoded state: zero-valued counters get
// their defaults and task ids are restored from the map keys.
func (s *State) Normalize() {
	if s.NextID < 1 {
		s.NextID = 1
	}
	if s.Level < 1 {
		s.Level = 1
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	if s.Tasks == nil {
		s.Tasks = map[int64]*Task{}
	}
	if s.Completed == nil {
		s.Completed = map[int64]*Task{}
	}
	for id, t := range s.Tasks {
		t.ID = id
	}
	for id, t := range s.Completed {
		t.ID = id
	}
}

// Completion is one row of the completion history log.
type Completion struct {
	ID          int64
	TaskID      int64
	Title       string
	CompletedAt time.Time
	XPAwarded   int
	LevelAfter  int
}

package engine

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AnushkaSingh7722/study-planner/internal/storage"
)

func newTestPlanner(t *testing.T) (*Planner, *storage.StateStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.json")
	store := storage.NewStateStore(path)
	p, err := Open(store, nil)
	if err != nil {
		t.Fatalf("open planner: %v", err)
	}
	return p, store
}

func addTask(t *testing.T, p *Planner, title string) int64 {
	t.Helper()
	id, err := p.Add(AddInput{Title: title})
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	return id
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	p, _ := newTestPlanner(t)

	id1 := addTask(t, p, "Read Ch.1")
	id2 := addTask(t, p, "Read Ch.2")
	if id1 != 1 || id2 != 2 {
		t.Fatalf("ids=%d,%d, want 1,2", id1, id2)
	}

	if _, err := p.Delete(id2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	id3 := addTask(t, p, "Read Ch.3")
	if id3 != 3 {
		t.Fatalf("id after delete=%d, want 3 (ids are never reused)", id3)
	}
}

func TestAddAppliesDefaults(t *testing.T) {
	p, _ := newTestPlanner(t)

	id := addTask(t, p, "Read Ch.1")
	task, ok := p.Get(id)
	if !ok {
		t.Fatalf("task %d not found", id)
	}
	if task.Category != "General" {
		t.Fatalf("category=%q, want General", task.Category)
	}
	if task.Priority != 3 {
		t.Fatalf("priority=%d, want 3", task.Priority)
	}
	if task.DueDate != nil {
		t.Fatalf("due date=%v, want nil", task.DueDate)
	}
	if task.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
	if task.CompletedAt != nil {
		t.Fatalf("completed_at=%v on a new task", task.CompletedAt)
	}
}

func TestCompleteMovesTaskAndAwardsXP(t *testing.T) {
	p, _ := newTestPlanner(t)
	ctx := context.Background()

	id := addTask(t, p, "Read Ch.1")
	res, err := p.Complete(ctx, id)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.XPGained != XPPerTask {
		t.Fatalf("xp gained=%d, want %d", res.XPGained, XPPerTask)
	}
	if res.XPBefore != 0 {
		t.Fatalf("xp before=%d, want 0", res.XPBefore)
	}

	task, ok := p.Get(id)
	if !ok {
		t.Fatalf("task %d vanished", id)
	}
	if task.CompletedAt == nil {
		t.Fatalf("completed_at not stamped")
	}
	if !p.IsCompleted(id) {
		t.Fatalf("task %d not in completed collection", id)
	}

	s := p.Stats()
	if s.Pending != 0 || s.Completed != 1 {
		t.Fatalf("pending=%d completed=%d, want 0/1", s.Pending, s.Completed)
	}
	if s.XP != XPPerTask {
		t.Fatalf("xp=%d, want %d", s.XP, XPPerTask)
	}
	if s.Level != LevelForXP(s.XP) {
		t.Fatalf("level=%d, want %d", s.Level, LevelForXP(s.XP))
	}
}

func TestCompleteRejectsNotPending(t *testing.T) {
	p, _ := newTestPlanner(t)
	ctx := context.Background()

	if _, err := p.Complete(ctx, 999); err == nil {
		t.Fatalf("expected error for unknown id")
	} else {
		var npe NotPendingError
		if !errors.As(err, &npe) {
			t.Fatalf("error type=%T, want NotPendingError", err)
		}
	}

	id := addTask(t, p, "Read Ch.1")
	if _, err := p.Complete(ctx, id); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	before := p.Stats()

	if _, err := p.Complete(ctx, id); err == nil {
		t.Fatalf("expected error completing twice")
	}
	after := p.Stats()
	if after.XP != before.XP || after.Level != before.Level ||
		after.Pending != before.Pending || after.Completed != before.Completed {
		t.Fatalf("state changed by failed complete: before=%+v after=%+v", before, after)
	}
}

func TestLevelUpAndAchievementScenario(t *testing.T) {
	p, _ := newTestPlanner(t)
	ctx := context.Background()

	id := addTask(t, p, "Read Ch.1")
	res, err := p.Complete(ctx, id)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.LevelUp {
		t.Fatalf("unexpected level up at 20 XP")
	}
	s := p.Stats()
	if s.XP != 20 || s.Level != 1 {
		t.Fatalf("xp=%d level=%d, want 20/1", s.XP, s.Level)
	}
	if !hasAchievement(s, AchFirstTask) {
		t.Fatalf("missing %q after first completion", AchFirstTask)
	}

	// Four more completions reach 100 XP: level 2 plus two more unlocks.
	var last *CompleteResult
	for i := 0; i < 4; i++ {
		id := addTask(t, p, "More reading")
		last, err = p.Complete(ctx, id)
		if err != nil {
			t.Fatalf("complete #%d: %v", i+2, err)
		}
	}
	if !last.LevelUp {
		t.Fatalf("expected level up on the 5th completion")
	}
	if last.LevelBefore != 1 || last.LevelAfter != 2 {
		t.Fatalf("level %d → %d, want 1 → 2", last.LevelBefore, last.LevelAfter)
	}

	s = p.Stats()
	if s.XP != 100 || s.Level != 2 {
		t.Fatalf("xp=%d level=%d, want 100/2", s.XP, s.Level)
	}
	for _, want := range []string{AchFirstTask, AchGettingSerious, AchLevel2} {
		if !hasAchievement(s, want) {
			t.Fatalf("missing achievement %q, have %v", want, s.Achievements)
		}
	}
	if hasAchievement(s, AchStudyMachine) {
		t.Fatalf("%q unlocked too early", AchStudyMachine)
	}
}

func TestAchievementsSurviveDeletion(t *testing.T) {
	p, _ := newTestPlanner(t)
	ctx := context.Background()

	id := addTask(t, p, "Read Ch.1")
	if _, err := p.Complete(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := p.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	s := p.Stats()
	if s.Completed != 0 {
		t.Fatalf("completed=%d, want 0", s.Completed)
	}
	if !hasAchievement(s, AchFirstTask) {
		t.Fatalf("achievement removed by deletion")
	}
}

func TestDeleteMissing(t *testing.T) {
	p, _ := newTestPlanner(t)

	_, err := p.Delete(999)
	var nfe NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("error=%v, want NotFoundError", err)
	}
	s := p.Stats()
	if s.Total != 0 || s.XP != 0 {
		t.Fatalf("state changed by failed delete: %+v", s)
	}
}

func TestEditAppliesOnlyGivenFields(t *testing.T) {
	p, _ := newTestPlanner(t)

	id, err := p.Add(AddInput{Title: "Read Ch.1", Category: "Study", Priority: 2, Notes: "pages 1-30"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	newTitle := "Read Ch.1 carefully"
	newPriority := 1
	if err := p.Edit(id, EditInput{Title: &newTitle, Priority: &newPriority}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	task, _ := p.Get(id)
	if task.Title != newTitle {
		t.Fatalf("title=%q, want %q", task.Title, newTitle)
	}
	if task.Priority != 1 {
		t.Fatalf("priority=%d, want 1", task.Priority)
	}
	if task.Category != "Study" || task.Notes != "pages 1-30" {
		t.Fatalf("untouched fields changed: category=%q notes=%q", task.Category, task.Notes)
	}

	if err := p.Edit(999, EditInput{Title: &newTitle}); err == nil {
		t.Fatalf("expected error editing unknown id")
	}
}

func TestListSorting(t *testing.T) {
	p, _ := newTestPlanner(t)

	due := func(s string) *time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return &d
	}

	if _, err := p.Add(AddInput{Title: "low", Priority: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Add(AddInput{Title: "high", Priority: 1, DueDate: due("2026-09-01")}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Add(AddInput{Title: "mid", Priority: 3, DueDate: due("2026-08-01")}); err != nil {
		t.Fatal(err)
	}

	byPriority := p.List(false, SortByPriority)
	for i := 1; i < len(byPriority); i++ {
		if byPriority[i-1].Task.Priority > byPriority[i].Task.Priority {
			t.Fatalf("priority order broken at %d: %v", i, byPriority)
		}
	}

	byDue := p.List(false, SortByDue)
	if byDue[0].Task.Title != "mid" || byDue[1].Task.Title != "high" {
		t.Fatalf("due order=%q,%q, want mid,high first", byDue[0].Task.Title, byDue[1].Task.Title)
	}
	if byDue[len(byDue)-1].Task.DueDate != nil {
		t.Fatalf("task without due date must sort last")
	}

	byID := p.List(false, ParseSortBy("bogus"))
	for i := 1; i < len(byID); i++ {
		if byID[i-1].ID >= byID[i].ID {
			t.Fatalf("id order broken at %d", i)
		}
	}
}

func TestSearchIsCaseInsensitiveAndSpansCollections(t *testing.T) {
	p, _ := newTestPlanner(t)
	ctx := context.Background()

	id1, _ := p.Add(AddInput{Title: "Revise ALGEBRA"})
	if _, err := p.Add(AddInput{Title: "Essay", Notes: "cite two algebra papers"}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Add(AddInput{Title: "Gym"}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Complete(ctx, id1); err != nil {
		t.Fatalf("complete: %v", err)
	}

	results := p.Search("algebra")
	if len(results) != 2 {
		t.Fatalf("results=%d, want 2", len(results))
	}
	found := map[string]bool{}
	for _, e := range results {
		found[e.Task.Title] = true
	}
	if !found["Revise ALGEBRA"] || !found["Essay"] {
		t.Fatalf("wrong results: %v", found)
	}

	if got := p.Search("chemistry"); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestRoundTrip(t *testing.T) {
	p, store := newTestPlanner(t)
	ctx := context.Background()

	due, _ := time.Parse("2006-01-02", "2026-09-15")
	id1, _ := p.Add(AddInput{Title: "Read Ch.1", Category: "Study", DueDate: &due, Priority: 2, Notes: "intro"})
	id2, _ := p.Add(AddInput{Title: "Read Ch.2"})
	if _, err := p.Complete(ctx, id1); err != nil {
		t.Fatalf("complete: %v", err)
	}

	reopened, err := Open(store, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.LoadErr() != nil {
		t.Fatalf("load err on valid file: %v", reopened.LoadErr())
	}

	want := p.Stats()
	got := reopened.Stats()
	if got.Pending != want.Pending || got.Completed != want.Completed ||
		got.XP != want.XP || got.Level != want.Level {
		t.Fatalf("stats after reload=%+v, want %+v", got, want)
	}
	if len(got.Achievements) != len(want.Achievements) {
		t.Fatalf("achievements after reload=%v, want %v", got.Achievements, want.Achievements)
	}

	task, ok := reopened.Get(id1)
	if !ok {
		t.Fatalf("task %d lost on reload", id1)
	}
	if task.Title != "Read Ch.1" || task.Category != "Study" || task.Priority != 2 || task.Notes != "intro" {
		t.Fatalf("task fields lost: %+v", task)
	}
	if task.DueDate == nil || task.DueDate.Format("2006-01-02") != "2026-09-15" {
		t.Fatalf("due date lost: %v", task.DueDate)
	}
	if task.CompletedAt == nil {
		t.Fatalf("completed_at lost")
	}
	if !reopened.IsCompleted(id1) || reopened.IsCompleted(id2) {
		t.Fatalf("collection membership lost")
	}

	// The id counter survives too: the next add must not reuse ids.
	id3, err := reopened.Add(AddInput{Title: "Read Ch.3"})
	if err != nil {
		t.Fatalf("add after reload: %v", err)
	}
	if id3 != 3 {
		t.Fatalf("id after reload=%d, want 3", id3)
	}
}

func TestCorruptStateFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	if err := os.WriteFile(path, []byte(`{"next_id": 7, "tasks": {truncated`), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := storage.NewStateStore(path)
	p, err := Open(store, nil)
	if err != nil {
		t.Fatalf("open over corrupt file: %v", err)
	}
	if p.LoadErr() == nil {
		t.Fatalf("expected a retained load error")
	}

	s := p.Stats()
	if s.Total != 0 || s.XP != 0 || s.Level != 1 {
		t.Fatalf("fresh state=%+v, want empty", s)
	}
	if id := addTask(t, p, "Read Ch.1"); id != 1 {
		t.Fatalf("first id=%d, want 1", id)
	}

	// The default state was persisted immediately, so a reload is clean.
	if _, err := store.Load(); err != nil {
		t.Fatalf("load after recovery: %v", err)
	}
}

func TestMissingStateFileIsSilentFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	p, err := Open(storage.NewStateStore(path), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if p.LoadErr() != nil {
		t.Fatalf("first run reported a load error: %v", p.LoadErr())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default state not persisted: %v", err)
	}
}

func TestExportSnapshot(t *testing.T) {
	p, _ := newTestPlanner(t)
	ctx := context.Background()

	id, _ := p.Add(AddInput{Title: "Read Ch.1"})
	if _, err := p.Complete(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := p.Add(AddInput{Title: "Read Ch.2"}); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "export.json")
	if err := p.Export(out); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var dump struct {
		Tasks        map[string]json.RawMessage `json:"tasks"`
		Completed    map[string]json.RawMessage `json:"completed"`
		XP           int                        `json:"xp"`
		Level        int                        `json:"level"`
		Achievements []string                   `json:"achievements"`
	}
	if err := json.Unmarshal(data, &dump); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(dump.Tasks) != 1 || len(dump.Completed) != 1 {
		t.Fatalf("tasks=%d completed=%d, want 1/1", len(dump.Tasks), len(dump.Completed))
	}
	if dump.XP != XPPerTask {
		t.Fatalf("xp=%d, want %d", dump.XP, XPPerTask)
	}
	if len(dump.Achievements) == 0 {
		t.Fatalf("achievements missing from export")
	}
}

func hasAchievement(s Stats, name string) bool {
	for _, a := range s.Achievements {
		if a == name {
			return true
		}
	}
	return false
}

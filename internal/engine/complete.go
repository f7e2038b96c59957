package engine

import (
	"context"
	"time"

	"github.com/AnushkaSingh7722/study-planner/internal/storage"
)

// CompleteResult reports what a successful completion changed, for caller
// feedback (XP banner, progress bar, level-up message).
type CompleteResult struct {
	TaskID      int64
	XPGained    int
	XPBefore    int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Unlocked    []string
}

// Complete moves a pending task to the completed collection, stamps its
// completion time, credits the XP award and re-evaluates level and
// achievements, then persists. Completing an unknown or already-completed
// id fails with NotPendingError and changes nothing.
func (p *Planner) Complete(ctx context.Context, id int64) (*CompleteResult, error) {
	t, ok := p.state.Tasks[id]
	if !ok {
		return nil, NotPendingError{ID: id}
	}

	now := time.Now()
	p.moveToCompleted(id, now)

	xpBefore := p.state.XP
	levelBefore := p.state.Level
	p.state.XP += XPPerTask

	levelUp := false
	if lvl := LevelForXP(p.state.XP); lvl > p.state.Level {
		p.state.Level = lvl
		levelUp = true
	}

	unlocked := p.unlockAchievements()

	if err := p.Save(); err != nil {
		return nil, err
	}

	if p.history != nil {
		_, err := p.history.Insert(ctx, storage.Completion{
			TaskID:      id,
			Title:       t.Title,
			CompletedAt: now,
			XPAwarded:   XPPerTask,
			LevelAfter:  p.state.Level,
		})
		if err != nil {
			return nil, err
		}
	}

	return &CompleteResult{
		TaskID:      id,
		XPGained:    XPPerTask,
		XPBefore:    xpBefore,
		LevelBefore: levelBefore,
		LevelAfter:  p.state.Level,
		LevelUp:     levelUp,
		Unlocked:    unlocked,
	}, nil
}

// moveToCompleted is the single primitive that shifts a task between the
// two collections, so a task can never end up in both or neither.
func (p *Planner) moveToCompleted(id int64, completedAt time.Time) {
	t := p.state.Tasks[id]
	delete(p.state.Tasks, id)
	t.CompletedAt = &completedAt
	p.state.Completed[id] = t
}

func (p *Planner) unlockAchievements() []string {
	have := make(map[string]bool, len(p.state.Achievements))
	for _, name := range p.state.Achievements {
		have[name] = true
	}
	earned := EvaluateAchievements(len(p.state.Completed), p.state.Level, have)
	p.state.Achievements = append(p.state.Achievements, earned...)
	return earned
}

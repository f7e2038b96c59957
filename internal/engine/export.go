package engine

import (
	"github.com/AnushkaSingh7722/study-planner/internal/storage"
)

// DefaultExportFile is where Export writes when the caller gives no path.
const DefaultExportFile = "tasks_export.json"

type exportPayload struct {
	Tasks        map[int64]*storage.Task `json:"tasks"`
	Completed    map[int64]*storage.Task `json:"completed"`
	XP           int                     `json:"xp"`
	Level        int                     `json:"level"`
	Achievements []string                `json:"achievements"`
}

// Export writes a one-way snapshot of the planner state to path. The dump
// is for external consumption and is never read back by the engine.
func (p *Planner) Export(path string) error {
	if path == "" {
		path = DefaultExportFile
	}
	return storage.WriteJSONAtomic(path, exportPayload{
		Tasks:        p.state.Tasks,
		Completed:    p.state.Completed,
		XP:           p.state.XP,
		Level:        p.state.Level,
		Achievements: p.state.Achievements,
	})
}

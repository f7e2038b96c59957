package root

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
	"github.com/AnushkaSingh7722/study-planner/internal/storage"
	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

const dateLayout = "2006-01-02"

func openHistory(ctx context.Context) (*storage.CompletionRepo, func(), error) {
	path, err := storage.ResolveHistoryPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.OpenDB(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewCompletionRepo(db), cleanup, nil
}

func openPlanner(ctx context.Context) (*engine.Planner, func(), error) {
	statePath, err := storage.ResolveStatePath()
	if err != nil {
		return nil, nil, err
	}
	history, cleanup, err := openHistory(ctx)
	if err != nil {
		return nil, nil, err
	}

	planner, err := engine.Open(storage.NewStateStore(statePath), history)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if loadErr := planner.LoadErr(); loadErr != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" data file unreadable, starting fresh: "+loadErr.Error()))
	}
	return planner, cleanup, nil
}

// parseID turns a command argument into a task id. Non-numeric input is
// rejected here, before the engine is involved.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", arg)
	}
	return id, nil
}

func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return &d, nil
}

func checkPriority(p int) error {
	if p < 1 || p > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}
	return nil
}

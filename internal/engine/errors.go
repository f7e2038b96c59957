package engine

import "fmt"

// NotFoundError indicates an id that resolves to no task in either the
// pending or the completed collection.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// NotPendingError indicates a completion attempt on a task that is not
// currently pending, either because the id is unknown or because the task
// was already completed. Completion is terminal, so the two cases are not
// distinguished.
type NotPendingError struct {
	ID int64
}

func (e NotPendingError) Error() string {
	return fmt.Sprintf("task %d not found or already completed", e.ID)
}

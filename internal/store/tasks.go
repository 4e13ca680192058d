package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/ganttly/internal/model"
)

// TaskRepo handles the tasks table.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// List returns every task. Row order is incidental; display order is always
// derived through the hierarchy package.
func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, type, name, start_date, end_date, duration, color, color_override, parent_id, sort_order
	FROM tasks ORDER BY parent_id, sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Task
	for rows.Next() {
		var t model.Task
		var typ string
		if err := rows.Scan(&t.ID, &typ, &t.Name, &t.StartDate, &t.EndDate, &t.Duration,
			&t.Color, &t.ColorOverride, &t.ParentID, &t.Order); err != nil {
			return nil, err
		}
		t.Type = model.TaskType(typ)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts a new task, minting an id when none is set, and returns it.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Type == "" {
		t.Type = model.TypeTask
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tasks(id, type, name, start_date, end_date, duration, color, color_override, parent_id, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Type), t.Name, t.StartDate, t.EndDate, t.Duration,
		t.Color, t.ColorOverride, t.ParentID, t.Order)
	if err != nil {
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// Upsert writes a task by id.
func (r *TaskRepo) Upsert(ctx context.Context, t model.Task) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tasks(id, type, name, start_date, end_date, duration, color, color_override, parent_id, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 type=excluded.type,
	 name=excluded.name,
	 start_date=excluded.start_date,
	 end_date=excluded.end_date,
	 duration=excluded.duration,
	 color=excluded.color,
	 color_override=excluded.color_override,
	 parent_id=excluded.parent_id,
	 sort_order=excluded.sort_order,
	 updated_at=?;
	`, t.ID, string(t.Type), t.Name, t.StartDate, t.EndDate, t.Duration,
		t.Color, t.ColorOverride, t.ParentID, t.Order, Now())
	return err
}

// Reorder rewrites a task's sort position among its siblings.
func (r *TaskRepo) Reorder(ctx context.Context, id string, order int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET sort_order = ?, updated_at = ? WHERE id = ?`, order, Now(), id)
	return err
}

// SetParent moves a task under a new parent at the given sort position. An
// empty parentID makes the task a root.
func (r *TaskRepo) SetParent(ctx context.Context, id, parentID string, order int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET parent_id = ?, sort_order = ?, updated_at = ? WHERE id = ?`,
		parentID, order, Now(), id)
	return err
}

// Delete removes a task and reparents its children to the deleted task's
// parent so the rest of the subtree stays reachable.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	return WithTx(r.db, func(tx *sql.Tx) error {
		var parentID string
		err := tx.QueryRowContext(ctx, `SELECT parent_id FROM tasks WHERE id = ?`, id).Scan(&parentID)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET parent_id = ? WHERE parent_id = ?`, parentID, id); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		return err
	})
}

// NextOrder returns a sort key one past the current maximum among parentID's
// children, so appended siblings land last.
func (r *TaskRepo) NextOrder(ctx context.Context, parentID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order), -1) + 1 FROM tasks WHERE parent_id = ?`, parentID).Scan(&next)
	return next, err
}

// Count returns the number of stored tasks.
func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n)
	return n, err
}

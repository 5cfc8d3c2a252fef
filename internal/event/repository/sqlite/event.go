package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "integra-recife/internal/event/repository"
	"integra-recife/internal/model"
)

const eventColumns = `id, title, description, raw_date, location, category, status, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (model.Event, error) {
	var ev model.Event
	var status string
	err := s.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.RawDate, &ev.Location, &ev.Category,
		&status, &ev.CreatedAt, &ev.UpdatedAt)
	ev.Status = model.EventStatus(status)
	return ev, err
}

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	status := opt.Status
	if status == "" {
		status = model.EventStatusActive
	}
	now := time.Now()

	const query = `
		INSERT INTO events (title, description, raw_date, location, category, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, opt.RawDate, opt.Location, opt.Category, string(status), now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s LastInsertId: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}

	return r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
}

// GetOneEvent retrieves a single Event by id.
// Returns zero-value Event (ID == 0) when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = ? LIMIT 1`, eventColumns)

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return ev, nil
}

// ListEvents returns every Event matching the filters, ordered by id.
// Date ordering is left to the caller since raw dates are heterogeneous.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM events %s`, eventColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// CountEvents returns the total number of stored events.
func (r *implRepository) CountEvents(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountEvents"), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}

// TransitionStatus runs a single conditional UPDATE and returns the affected row count.
func (r *implRepository) TransitionStatus(ctx context.Context, opt repo.TransitionStatusOptions) (int, error) {
	if len(opt.IDs) == 0 {
		return 0, nil
	}

	mods, args := r.buildTransitionQuery(opt)
	query := fmt.Sprintf(`UPDATE events SET status = ?, updated_at = ? WHERE %s`, mods)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TransitionStatus"), err)
		return 0, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("TransitionStatus"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return int(n), nil
}

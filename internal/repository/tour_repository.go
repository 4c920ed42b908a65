package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values
	"time"         // time parses the created_at column

	"github.com/avolkov/tour-catalog/internal/model"
)

// TourStore is the sole gateway to the persistent tours table. Future
// backends implement this same interface; TourRepo below is the SQLite one.
type TourStore interface {
	Create(ctx context.Context, t model.NewTour) (*model.SavedTour, error)
	GetByID(ctx context.Context, id int64) (*model.SavedTour, error)
	List(ctx context.Context, limit int, q string) ([]*model.SavedTour, error)
	UpdatePrice(ctx context.Context, id int64, price float64) (*model.SavedTour, error)
	Delete(ctx context.Context, id int64) error
}

// listDescriptionLimit caps the description length in listing results. The
// cut is output shaping only; the search filter sees the full column.
const listDescriptionLimit = 30

// timeLayout is how SQLite renders CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05"

// TourRepo encapsulates all database queries related to tours. It depends on
// a sql.DB connection which should be configured elsewhere.
type TourRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewTourRepo constructs a TourRepo with the provided DB handle. This
// function allows dependency injection of the database in tests and at
// startup. There is no initialization logic beyond assigning the field.
func NewTourRepo(db *sql.DB) *TourRepo {
	return &TourRepo{db: db}
}

var _ TourStore = (*TourRepo)(nil)

// Create inserts a new tour and returns the persisted record. The id comes
// from the engine's last-insert-id and created_at from the column default,
// so a follow-up SELECT is performed to hand callers a fully populated row.
func (r *TourRepo) Create(ctx context.Context, t model.NewTour) (*model.SavedTour, error) {
	const qInsert = `INSERT INTO tours (title, description, price, cover) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, t.Title, t.Description, t.Price, t.Cover)
	if err != nil {
		return nil, err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// GetByID fetches one tour by primary key. It returns ErrTourNotFound when
// no row has that id. This is the canonical existence check reused by
// UpdatePrice and Delete.
func (r *TourRepo) GetByID(ctx context.Context, id int64) (*model.SavedTour, error) {
	const q = `SELECT id, title, description, price, cover, created_at FROM tours WHERE id = ?`
	t, err := scanTour(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return t, nil
}

// List returns up to limit tours ordered by id descending (newest first).
// A row is included iff q is a substring of its title or description; the
// empty query matches everything. Descriptions in the result are cut to the
// first 30 characters; the filter is applied before the cut. The % and _
// characters keep their LIKE meaning, as they always have in this catalog.
func (r *TourRepo) List(ctx context.Context, limit int, q string) ([]*model.SavedTour, error) {
	const qSelect = `SELECT id, title, description, price, cover, created_at
	                 FROM tours
	                 WHERE title LIKE '%' || ? || '%' OR description LIKE '%' || ? || '%'
	                 ORDER BY id DESC
	                 LIMIT ?`
	rows, err := r.db.QueryContext(ctx, qSelect, q, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SavedTour
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		if rd := []rune(t.Description); len(rd) > listDescriptionLimit {
			t.Description = string(rd[:listDescriptionLimit])
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePrice overwrites the price column of one tour and returns the full
// updated record. The existence check runs first so a missing id surfaces as
// ErrTourNotFound instead of a silent no-op. The check and the UPDATE are
// separate statements; concurrent writers can interleave between them.
func (r *TourRepo) UpdatePrice(ctx context.Context, id int64, price float64) (*model.SavedTour, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	const q = `UPDATE tours SET price = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, price, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete physically removes one tour. The existence check runs first so a
// missing id surfaces as ErrTourNotFound. After a successful delete the id
// never resolves to a record again, in lookups or in listings.
func (r *TourRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	const q = `DELETE FROM tours WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTour maps one tours row onto a SavedTour. created_at is stored as the
// engine's CURRENT_TIMESTAMP text and parsed here.
func scanTour(s rowScanner) (*model.SavedTour, error) {
	var (
		t         model.SavedTour
		createdAt string
	)
	if err := s.Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.Cover, &createdAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		// Some clients write RFC3339 timestamps into the column.
		ts, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, err
		}
	}
	t.CreatedAt = ts
	return &t, nil
}

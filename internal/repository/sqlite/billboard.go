package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nikitav/billboard/internal/apperror"
	"github.com/nikitav/billboard/internal/model"
	"github.com/nikitav/billboard/internal/repository"
)

// BillboardDB implements repository.BillboardRepository on SQLite.
type BillboardDB struct {
	conn *sql.DB
}

var _ repository.BillboardRepository = (*BillboardDB)(nil)

// Create inserts a new billboard.
//
// Two constraints can fire here and they mean different things to the caller:
//   - UNIQUE on topic or description → conflict ("article already exists")
//   - FOREIGN KEY on user_id → the referenced user doesn't exist. That's a
//     bad payload, not a duplicate, so it becomes a validation error on the
//     user_id field rather than a misleading conflict.
func (b *BillboardDB) Create(ctx context.Context, billboard *model.Billboard) error {
	billboard.CreationTime = time.Now().UTC()

	res, err := b.conn.ExecContext(ctx,
		`INSERT INTO billboards (topic, description, user_id, creation_time)
		 VALUES (?, ?, ?, ?)`,
		billboard.Topic,
		billboard.Description,
		billboard.UserID,
		billboard.CreationTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("article already exists")
		}
		if isForeignKeyViolation(err) {
			return apperror.ValidationFailed(apperror.FieldError{
				Field:   "user_id",
				Message: "referenced user does not exist",
			})
		}
		return fmt.Errorf("sqlite: inserting billboard %q: %w", billboard.Topic, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new billboard id: %w", err)
	}
	billboard.ID = id

	return nil
}

// GetByID retrieves a billboard by id.
// Returns apperror.ErrNotFound if no billboard exists with that id.
func (b *BillboardDB) GetByID(ctx context.Context, id int64) (*model.Billboard, error) {
	var billboard model.Billboard

	err := b.conn.QueryRowContext(ctx,
		`SELECT id, topic, description, user_id, creation_time
		 FROM billboards WHERE id = ?`,
		id,
	).Scan(
		&billboard.ID,
		&billboard.Topic,
		&billboard.Description,
		&billboard.UserID,
		&billboard.CreationTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("article not found")
		}
		return nil, fmt.Errorf("sqlite: getting billboard %d: %w", id, err)
	}

	return &billboard, nil
}

// Delete removes a billboard by id.
// Same pattern as the user delete — RowsAffected detects "not found".
func (b *BillboardDB) Delete(ctx context.Context, id int64) error {
	res, err := b.conn.ExecContext(ctx,
		`DELETE FROM billboards WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting billboard %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("article not found")
	}

	return nil
}

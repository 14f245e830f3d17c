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

// UserDB implements repository.UserRepository on SQLite.
type UserDB struct {
	conn *sql.DB
}

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` assigns a nil *Y to a variable of interface type X.
// If *Y doesn't implement X, the compiler errors immediately instead of at
// the first call site that passes *Y around.
var _ repository.UserRepository = (*UserDB)(nil)

// Create inserts a new user.
//
// The store assigns the id (AUTOINCREMENT); we read it back with
// LastInsertId and write it into the caller's struct — that's why the
// receiver is a pointer. RegistrationTime is set here, once, and is immutable
// from then on.
//
// A duplicate user_name or email trips the UNIQUE constraint, which we
// translate to a conflict error. When two requests race on the same name,
// SQLite commits exactly one insert and the loser lands here.
func (u *UserDB) Create(ctx context.Context, user *model.User) error {
	user.RegistrationTime = time.Now().UTC()

	res, err := u.conn.ExecContext(ctx,
		`INSERT INTO users (user_name, email, password, registration_time)
		 VALUES (?, ?, ?, ?)`,
		user.UserName,
		user.Email,
		user.Password,
		user.RegistrationTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("user already exists")
		}
		return fmt.Errorf("sqlite: inserting user %q: %w", user.UserName, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetByID retrieves a user by id.
// Returns apperror.ErrNotFound if no user exists with that id.
func (u *UserDB) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User

	err := u.conn.QueryRowContext(ctx,
		`SELECT id, user_name, email, password, registration_time
		 FROM users WHERE id = ?`,
		id,
	).Scan(
		&user.ID,
		&user.UserName,
		&user.Email,
		&user.Password,
		&user.RegistrationTime,
	)
	if err != nil {
		// sql.ErrNoRows just means "no matching row" — translate it to the
		// domain's not-found error so the handler returns 404.
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}

	return &user, nil
}

// Delete removes a user by id. The ON DELETE CASCADE rule on billboards
// removes every billboard owned by the user in the same statement.
//
// RowsAffected == 0 means the WHERE clause matched nothing → not found.
// One DELETE instead of SELECT-then-DELETE keeps it a single round-trip.
func (u *UserDB) Delete(ctx context.Context, id int64) error {
	res, err := u.conn.ExecContext(ctx,
		`DELETE FROM users WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting user %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("user not found")
	}

	return nil
}

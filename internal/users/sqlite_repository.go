package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docbotdev/docbot/internal/common"
	"github.com/docbotdev/docbot/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new user record. The existence check and the insert run
// in one transaction so a concurrent signup cannot overwrite the record;
// the UNIQUE constraint on username is the backstop.
func (r *SQLiteRepository) Create(ctx context.Context, user *User) (*User, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var existing int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE username = ?`, user.Username).Scan(&existing)
		if err == nil {
			return common.ErrorDuplicateUser
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("error checking username %q: %w", user.Username, err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
			user.Username, user.PasswordHash, user.CreatedAt)
		if err != nil {
			return fmt.Errorf("error inserting user %q: %w", user.Username, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("error reading inserted user id: %w", err)
		}
		user.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The database is opened in memory (":memory:"). Every connection to an
// in-memory SQLite database gets its own private database, so the pool is
// pinned to a single long-lived connection: the data lives exactly as long as
// the process, and the one connection serialises all statements.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/users-api/internal/storage"
	"github.com/aanand-mishra/users-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

const dsn = ":memory:"

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB

	newID func() string
}

// New opens the in-memory database and creates the users table.
func New() (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// seq preserves insertion order for GetUsers. UPDATE keeps the row, so an
	// updated user stays where it was.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			seq   INTEGER PRIMARY KEY AUTOINCREMENT,
			id    TEXT    NOT NULL UNIQUE,
			name  TEXT    NOT NULL,
			email TEXT    NOT NULL,
			age   TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db, newID: storage.NewID}, nil
}

func (s *SQLite) CreateUser(input types.UserInput) (types.User, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO users (id, name, email, age) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return types.User{}, fmt.Errorf("CreateUser: prepare: %w", err)
	}
	defer stmt.Close()

	user := input.WithID(s.newID())

	if _, err := stmt.Exec(user.ID, user.Name, user.Email, user.Age); err != nil {
		return types.User{}, fmt.Errorf("CreateUser: exec: %w", err)
	}

	return user, nil
}

func (s *SQLite) GetUserByID(id string) (types.User, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, email, age FROM users WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.User{}, fmt.Errorf("GetUserByID: prepare: %w", err)
	}
	defer stmt.Close()

	var user types.User
	err = stmt.QueryRow(id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Age,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, fmt.Errorf("GetUserByID %s: %w", id, storage.ErrNotFound)
		}
		return types.User{}, fmt.Errorf("GetUserByID: scan: %w", err)
	}

	return user, nil
}

func (s *SQLite) GetUsers() ([]types.User, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, email, age FROM users ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("GetUsers: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetUsers: query: %w", err)
	}
	defer rows.Close()

	users := make([]types.User, 0)

	for rows.Next() {
		var user types.User

		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Age,
		); err != nil {
			return nil, fmt.Errorf("GetUsers: scan row: %w", err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetUsers: rows iteration: %w", err)
	}

	return users, nil
}

// UpdateUserByID replaces a user's fields. Existence is decided by the UPDATE
// itself (rows affected), so there is no separate lookup to race with.
func (s *SQLite) UpdateUserByID(id string, input types.UserInput) (types.User, error) {
	stmt, err := s.Db.Prepare(
		"UPDATE users SET name = ?, email = ?, age = ? WHERE id = ?",
	)
	if err != nil {
		return types.User{}, fmt.Errorf("UpdateUserByID: prepare: %w", err)
	}
	defer stmt.Close()

	user := input.WithID(id)

	result, err := stmt.Exec(user.Name, user.Email, user.Age, id)
	if err != nil {
		return types.User{}, fmt.Errorf("UpdateUserByID: exec: %w", err)
	}

	if err := expectOneRow(result, id); err != nil {
		return types.User{}, fmt.Errorf("UpdateUserByID: %w", err)
	}

	return user, nil
}

func (s *SQLite) DeleteUserByID(id string) error {
	stmt, err := s.Db.Prepare("DELETE FROM users WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteUserByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteUserByID: exec: %w", err)
	}

	if err := expectOneRow(result, id); err != nil {
		return fmt.Errorf("DeleteUserByID: %w", err)
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.Db.Close()
}

func expectOneRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, storage.ErrNotFound)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// UserRepo provides access to the `loginusers` table.  Lookups return
// sql.ErrNoRows when no matching account exists; callers decide how to
// surface that.  Email and username comparisons are exact: the signup flow
// relies on field-specific existence checks before inserting, so the
// repository itself performs no normalization.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a new user row, returning its ID.
// Uniqueness of email and username is pre-checked by the caller; a losing
// race against a concurrent signup surfaces here as a driver error.
func (r *UserRepo) Create(ctx context.Context, u model.User, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO loginusers (firstname, lastname, username, email, passwords, role) VALUES (?,?,?,?,?,?)",
		u.FirstName, u.LastName, u.Username, u.Email, hash, u.Role)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// FindByEmail fetches a user by email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	return r.findBy(ctx, "email", email)
}

// FindByUsername fetches a user by username.  The guest login flow keys on
// usernames while every other tier logs in by email.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return r.findBy(ctx, "username", username)
}

func (r *UserRepo) findBy(ctx context.Context, column, value string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,firstname,lastname,username,email,passwords,role,created_at FROM loginusers WHERE "+column+"=? LIMIT 1",
		value).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"postify/internal/domain/recipient"
	"postify/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

type UserPatch struct {
	Phone        *string
	Mail         *string
	Website      *string
	Logo         []byte
	LogoFilename *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Phone == nil && p.Mail == nil && p.Website == nil && p.Logo == nil && p.LogoFilename == nil
}

func (r *UserRepository) Create(ctx context.Context, u recipient.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (phone, mail, website, logo, logo_filename)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, q, u.Phone, u.Mail, u.Website, u.Logo, u.LogoFilename).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to insert user", err)
	}
	return id, nil
}

func (r *UserRepository) List(ctx context.Context) ([]recipient.UserSummary, error) {
	const q = `
		SELECT id, phone, mail, website, logo_filename, created_at
		FROM users
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	users := make([]recipient.UserSummary, 0)
	for rows.Next() {
		var u recipient.UserSummary
		if err := rows.Scan(&u.ID, &u.Phone, &u.Mail, &u.Website, &u.LogoFilename, &u.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (recipient.User, error) {
	const q = `
		SELECT id, phone, mail, website, logo, logo_filename, created_at
		FROM users
		WHERE id = $1`

	var u recipient.User
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&u.ID, &u.Phone, &u.Mail, &u.Website, &u.Logo, &u.LogoFilename, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recipient.User{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return recipient.User{}, infra.WrapRepoErr("failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch UserPatch) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Mail != nil {
		add("mail", *patch.Mail)
	}
	if patch.Website != nil {
		add("website", *patch.Website)
	}
	if patch.Logo != nil {
		add("logo", patch.Logo)
	}
	if patch.LogoFilename != nil {
		add("logo_filename", *patch.LogoFilename)
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return wrapPgErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// ListForDistribution loads full user rows, logos included, for a fan-out run.
func (r *UserRepository) ListForDistribution(ctx context.Context) ([]recipient.User, error) {
	const q = `
		SELECT id, phone, mail, website, logo, logo_filename, created_at
		FROM users
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users for distribution", err)
	}
	defer rows.Close()

	users := make([]recipient.User, 0)
	for rows.Next() {
		var u recipient.User
		if err := rows.Scan(&u.ID, &u.Phone, &u.Mail, &u.Website, &u.Logo, &u.LogoFilename, &u.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return users, nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}

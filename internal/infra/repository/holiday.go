package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"postify/internal/domain/holiday"
	"postify/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HolidayRepository struct {
	pool *pgxpool.Pool
}

func NewHolidayRepository(pool *pgxpool.Pool) *HolidayRepository {
	return &HolidayRepository{pool: pool}
}

type HolidayPatch struct {
	Date        *string
	Prompt      *string
	Description *string
}

func (p HolidayPatch) IsEmpty() bool {
	return p.Date == nil && p.Prompt == nil && p.Description == nil
}

func (r *HolidayRepository) Create(ctx context.Context, h holiday.Holiday) (uuid.UUID, error) {
	const q = `
		INSERT INTO holidays (date, prompt, description)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, q, h.Date, h.Prompt, h.Description).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to insert holiday", err)
	}
	return id, nil
}

func (r *HolidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	const q = `
		SELECT id, date, prompt, description, created_at
		FROM holidays
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holidays", err)
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Prompt, &h.Description, &h.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan holiday row", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read holiday rows", err)
	}
	return holidays, nil
}

func (r *HolidayRepository) FindByID(ctx context.Context, id uuid.UUID) (holiday.Holiday, error) {
	const q = `
		SELECT id, date, prompt, description, created_at
		FROM holidays
		WHERE id = $1`

	var h holiday.Holiday
	err := r.pool.QueryRow(ctx, q, id).Scan(&h.ID, &h.Date, &h.Prompt, &h.Description, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, infra.WrapRepoErr("holiday not found", err, infra.KindNotFound)
		}
		return holiday.Holiday{}, infra.WrapRepoErr("failed to find holiday", err)
	}
	return h, nil
}

// FindByDate looks a holiday up by its DD-MM-YYYY calendar key.
func (r *HolidayRepository) FindByDate(ctx context.Context, date string) (holiday.Holiday, error) {
	const q = `
		SELECT id, date, prompt, description, created_at
		FROM holidays
		WHERE date = $1`

	var h holiday.Holiday
	err := r.pool.QueryRow(ctx, q, date).Scan(&h.ID, &h.Date, &h.Prompt, &h.Description, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, infra.WrapRepoErr("holiday not found", err, infra.KindNotFound)
		}
		return holiday.Holiday{}, infra.WrapRepoErr("failed to find holiday by date", err)
	}
	return h, nil
}

func (r *HolidayRepository) Update(ctx context.Context, id uuid.UUID, patch HolidayPatch) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Prompt != nil {
		add("prompt", *patch.Prompt)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE holidays SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return wrapPgErr("failed to update holiday", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("holiday not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete holiday", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("holiday not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

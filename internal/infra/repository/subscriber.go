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
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriberRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

type SubscriberPatch struct {
	Name    *string
	Phone   *string
	Overlay []byte
}

func (p SubscriberPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Overlay == nil
}

func (r *SubscriberRepository) Create(ctx context.Context, s recipient.Subscriber) (uuid.UUID, error) {
	const q = `
		INSERT INTO subscribers (name, phone, overlay)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, q, s.Name, s.Phone, s.Overlay).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to insert subscriber", err)
	}
	return id, nil
}

func (r *SubscriberRepository) List(ctx context.Context) ([]recipient.SubscriberSummary, error) {
	const q = `
		SELECT id, name, phone, created_at
		FROM subscribers
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscribers", err)
	}
	defer rows.Close()

	subs := make([]recipient.SubscriberSummary, 0)
	for rows.Next() {
		var s recipient.SubscriberSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscriber row", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read subscriber rows", err)
	}
	return subs, nil
}

func (r *SubscriberRepository) FindByID(ctx context.Context, id uuid.UUID) (recipient.Subscriber, error) {
	const q = `
		SELECT id, name, phone, overlay, created_at
		FROM subscribers
		WHERE id = $1`

	var s recipient.Subscriber
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Phone, &s.Overlay, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recipient.Subscriber{}, infra.WrapRepoErr("subscriber not found", err, infra.KindNotFound)
		}
		return recipient.Subscriber{}, infra.WrapRepoErr("failed to find subscriber", err)
	}
	return s, nil
}

func (r *SubscriberRepository) Update(ctx context.Context, id uuid.UUID, patch SubscriberPatch) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Overlay != nil {
		add("overlay", patch.Overlay)
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE subscribers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return wrapPgErr("failed to update subscriber", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscriber not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete subscriber", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscriber not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// ListForDistribution loads full subscriber rows, overlays included, for a
// fan-out run.
func (r *SubscriberRepository) ListForDistribution(ctx context.Context) ([]recipient.Subscriber, error) {
	const q = `
		SELECT id, name, phone, overlay, created_at
		FROM subscribers
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscribers for distribution", err)
	}
	defer rows.Close()

	subs := make([]recipient.Subscriber, 0)
	for rows.Next() {
		var s recipient.Subscriber
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Overlay, &s.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscriber row", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read subscriber rows", err)
	}
	return subs, nil
}

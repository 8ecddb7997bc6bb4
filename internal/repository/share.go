package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/shenikar/live_location_system/internal/service"
)

type ShareRepository struct {
	db *pgxpool.Pool
}

func NewShareRepository(db *pgxpool.Pool) service.ShareRepository {
	return &ShareRepository{
		db: db,
	}
}

// Create создает новую запись о доступе в бд. Уникальность пары
// (owner_email, viewer_email) намеренно не проверяется - дубликаты
// допустимы и обезвреживаются при чтении.
func (r *ShareRepository) Create(ctx context.Context, share *models.LocationShare) error {
	query := `
		INSERT INTO location_shares (owner_email, owner_id, viewer_email, location, active)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6) RETURNING id, created_at, last_update;
	`
	err := r.db.QueryRow(ctx, query,
		share.OwnerEmail,
		share.OwnerID,
		share.ViewerEmail,
		share.Longitude,
		share.Latitude,
		share.Active,
	).Scan(&share.ID, &share.CreatedAt, &share.LastUpdate)
	if err != nil {
		return fmt.Errorf("failed to create location share: %w", err)
	}
	return nil
}

// RevokeByViewer деактивирует все активные доступы пары (владелец, зритель).
// Возвращает число затронутых записей: ноль совпадений - не ошибка,
// повторный отзыв - no-op.
func (r *ShareRepository) RevokeByViewer(ctx context.Context, ownerEmail, viewerEmail string) (int64, error) {
	query := `
		UPDATE location_shares SET
			active = FALSE,
			last_update = NOW()
		WHERE owner_email = $1 AND viewer_email = $2 AND active;
	`
	cmdTag, err := r.db.Exec(ctx, query, ownerEmail, viewerEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke shares for viewer: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ListByOwner возвращает все записи о доступах, выданных владельцем
func (r *ShareRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.LocationShare, error) {
	shares, err := r.list(ctx, "owner_email", ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares by owner: %w", err)
	}
	return shares, nil
}

// ListByViewer возвращает все записи о доступах, адресованных зрителю
func (r *ShareRepository) ListByViewer(ctx context.Context, viewerEmail string) ([]*models.LocationShare, error) {
	shares, err := r.list(ctx, "viewer_email", viewerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares by viewer: %w", err)
	}
	return shares, nil
}

func (r *ShareRepository) list(ctx context.Context, field, email string) ([]*models.LocationShare, error) {
	query := fmt.Sprintf(`
		SELECT
			id,
			owner_email,
			owner_id,
			viewer_email,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			active,
			created_at,
			last_update
		FROM location_shares
		WHERE %s = $1
		ORDER BY created_at DESC;
	`, field)

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shares := make([]*models.LocationShare, 0)
	for rows.Next() {
		share := &models.LocationShare{}
		err := rows.Scan(
			&share.ID,
			&share.OwnerEmail,
			&share.OwnerID,
			&share.ViewerEmail,
			&share.Latitude,
			&share.Longitude,
			&share.Active,
			&share.CreatedAt,
			&share.LastUpdate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location share row: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return shares, nil
}

// UpdatePosition пишет свежую позицию владельца в запись о доступе.
// Запись перезаписывается безусловно (last-write-wins).
func (r *ShareRepository) UpdatePosition(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	query := `
		UPDATE location_shares SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_update = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, lon, lat, id)
	if err != nil {
		return fmt.Errorf("failed to update share position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location share with id %s not found for position update", id)
	}
	return nil
}

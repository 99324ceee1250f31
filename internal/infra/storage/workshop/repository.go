package workshop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/pkg/dbmetrics"
	"github.com/forgeline/workshop-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий каталога воркшопов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория воркшопов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все воркшопы каталога
func (r *Repository) List(ctx context.Context) ([]*domain.Workshop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "description", "created_at").
		From("workshops").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	workshops := make([]*domain.Workshop, 0)
	for rows.Next() {
		var w domain.Workshop
		var createdAt sql.NullTime

		if err := rows.Scan(&w.ID, &w.Title, &w.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		w.CreatedAt = createdAt.Time
		workshops = append(workshops, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return workshops, nil
}

// GetByID получает воркшоп по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Workshop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "description", "created_at").
		From("workshops").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.Workshop
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.Title, &w.Description, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkshopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan workshop: %v", ErrScanRow, err)
	}

	w.CreatedAt = createdAt.Time

	return &w, nil
}

package teammember

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

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет сотрудника
func (r *Repository) Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("team_members").
		Columns("user_id", "name", "email", "role").
		Values(member.UserID, member.Name, member.Email, member.Role).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&member.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	member.CreatedAt = createdAt.Time

	return member, nil
}

// GetByUserID получает сотрудника по ID пользователя auth-провайдера
// Используется middleware для серверной проверки прав администратора
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.TeamMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectMemberColumns().
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	member, err := scanMemberRow(row.Scan)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan member: %v", ErrScanRow, err)
	}

	return member, nil
}

// List получает всех сотрудников
func (r *Repository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectMemberColumns().
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

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanMemberRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// Delete удаляет сотрудника
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("team_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func selectMemberColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"name",
		"email",
		"role",
		"created_at",
	).From("team_members")
}

func scanMemberRow(scan func(dest ...interface{}) error) (*domain.TeamMember, error) {
	var member domain.TeamMember
	var createdAt sql.NullTime

	err := scan(
		&member.ID,
		&member.UserID,
		&member.Name,
		&member.Email,
		&member.Role,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	member.CreatedAt = createdAt.Time

	return &member, nil
}

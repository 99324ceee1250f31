package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/pkg/dbmetrics"
	"github.com/forgeline/workshop-booking-service/pkg/psqlbuilder"
	"github.com/forgeline/workshop-booking-service/pkg/types"
)

// Repository репозиторий для работы с правилами доступности команды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило доступности
func (r *Repository) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("team_availability").
		Columns(
			"team_member_id",
			"day_of_week",
			"start_time",
			"end_time",
		).
		Values(
			rule.TeamMemberID,
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRuleColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	rule, err := scanRuleRow(row.Scan)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListByTeamMember получает правила одного сотрудника,
// упорядоченные по дню недели и времени начала
func (r *Repository) ListByTeamMember(ctx context.Context, teamMemberID string) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRuleColumns().
		Where(squirrel.Eq{"team_member_id": teamMemberID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTeamMember - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRules(ctx, executor, query, args, "ListByTeamMember")
}

// ListByDayOfWeek получает правила всех сотрудников на день недели
// Используется резолвером слотов: правила подгружаются один раз на запрос
// и сопоставляются со слотами в памяти
func (r *Repository) ListByDayOfWeek(ctx context.Context, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRuleColumns().
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDayOfWeek - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRules(ctx, executor, query, args, "ListByDayOfWeek")
}

// ExistsForDayAndTime проверяет, что хотя бы одно правило покрывает
// день недели и время (границы окна включительно)
func (r *Repository) ExistsForDayAndTime(ctx context.Context, dayOfWeek int, t types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("team_availability").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Where(squirrel.LtOrEq{"start_time": t}).
		Where(squirrel.GtOrEq{"end_time": t}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDayAndTime - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDayAndTime - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update обновляет день недели и окно существующего правила
func (r *Repository) Update(ctx context.Context, rule *domain.AvailabilityRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("team_availability").
		Set("day_of_week", rule.DayOfWeek).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// Delete удаляет правило
// Правила доступности, в отличие от записей, удаляются физически
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("team_availability").
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
		return ErrRuleNotFound
	}

	return nil
}

func (r *Repository) queryRules(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]*domain.AvailabilityRule, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRuleRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rules, nil
}

func selectRuleColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"team_member_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).From("team_availability")
}

func scanRuleRow(scan func(dest ...interface{}) error) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&rule.ID,
		&rule.TeamMemberID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

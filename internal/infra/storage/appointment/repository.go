package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/pkg/dbmetrics"
	"github.com/forgeline/workshop-booking-service/pkg/psqlbuilder"
)

// slotTakenConstraint имя частичного уникального индекса по (date, time_slot)
// для неотменённых записей (см. migrations)
const slotTakenConstraint = "appointments_slot_taken"

// Repository репозиторий для работы с записями на воркшопы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Нарушение уникальности слота (занят другой неотменённой записью)
// транслируется в ErrSlotConflict - единственный источник истины о коллизиях
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"workshop_id",
			"date",
			"time_slot",
			"name",
			"email",
			"company",
			"message",
			"meeting_type",
			"attendees",
			"status",
		).
		Values(
			a.WorkshopID,
			a.Date,
			string(a.TimeSlot),
			a.Name,
			a.Email,
			a.Company,
			a.Message,
			a.MeetingType,
			a.Attendees,
			a.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
	)

	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time

	return a, nil
}

// GetBookedSlots получает занятые слоты на дату
// Отменённые записи не учитываются - их слоты снова доступны
func (r *Repository) GetBookedSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time_slot").
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan time_slot: %v", ErrScanRow, err)
		}
		slots = append(slots, domain.TimeSlot(slot))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointmentColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appointment, err := scanAppointmentRow(row.Scan)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// ListWithFilter получает записи с фильтрацией по дате и статусу
// Для конкретной даты сортирует по времени создания (ASC),
// для общего списка - сначала новые даты
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointmentColumns()

	if filter.Date != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"date": *filter.Date}).
			OrderBy("created_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, created_at DESC")
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointmentRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// selectAppointmentColumns общий SELECT по колонкам записи
func selectAppointmentColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"workshop_id",
		"date",
		"time_slot",
		"name",
		"email",
		"company",
		"message",
		"meeting_type",
		"attendees",
		"status",
		"created_at",
	).From("appointments")
}

// scanAppointmentRow сканирует одну строку в domain.Appointment
func scanAppointmentRow(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var a domain.Appointment
	var timeSlot string
	var createdAt sql.NullTime

	err := scan(
		&a.ID,
		&a.WorkshopID,
		&a.Date,
		&timeSlot,
		&a.Name,
		&a.Email,
		&a.Company,
		&a.Message,
		&a.MeetingType,
		&a.Attendees,
		&a.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	a.TimeSlot = domain.TimeSlot(timeSlot)
	a.CreatedAt = createdAt.Time

	return &a, nil
}

// isSlotConflict определяет, что ошибка БД - нарушение уникальности слота
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	// 23505 = unique_violation
	if pqErr.Code != "23505" {
		return false
	}
	return pqErr.Constraint == "" || pqErr.Constraint == slotTakenConstraint
}

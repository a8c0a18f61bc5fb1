package resource

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/pkg/dbmetrics"
	"github.com/campuscore/CMP-ResourceService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом ресурсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресурс
func (r *Repository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resources").
		Columns(
			"name",
			"type",
			"capacity",
			"location",
			"status",
			"accessibility",
			"maintenance_notes",
			"maintenance_persons",
			"next_maintenance",
		).
		Values(
			resource.Name,
			resource.Type,
			resource.Capacity,
			resource.Location,
			resource.Status,
			pq.Array(resource.Accessibility),
			resource.MaintenanceNotes,
			pq.Array(resource.MaintenancePersons),
			resource.NextMaintenance,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return resource, nil
}

// GetByID получает ресурс по ID
// Внутри транзакции блокирует строку (FOR UPDATE), чтобы статус ресурса
// не изменился между проверкой и созданием бронирования
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectResources().
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	resource, err := scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	return resource, nil
}

// List получает список ресурсов с фильтрацией по типу, статусу и вместимости
func (r *Repository) List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectResources()

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.MinCapacity != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *filter.MinCapacity})
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

// UpdateStatus обновляет статус ресурса и данные обслуживания
// (maintenance workflow: заметки, ответственные, дата следующего обслуживания)
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.ResourceStatus,
	notes *string,
	persons []string,
	nextMaintenance *time.Time,
) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("status", status).
		Set("maintenance_notes", notes).
		Set("maintenance_persons", pq.Array(persons)).
		Set("next_maintenance", nextMaintenance).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + resourceColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	resource, err := scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrScanRow, err)
	}

	return resource, nil
}

const resourceColumns = "id, name, type, capacity, location, status, accessibility, maintenance_notes, maintenance_persons, next_maintenance, created_at, updated_at"

// selectResources базовый SELECT со всеми колонками ресурса
func selectResources() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"type",
		"capacity",
		"location",
		"status",
		"accessibility",
		"maintenance_notes",
		"maintenance_persons",
		"next_maintenance",
		"created_at",
		"updated_at",
	).From("resources")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanResource сканирует одну строку в ресурс
func scanResource(row rowScanner) (*domain.Resource, error) {
	var resource domain.Resource
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Capacity,
		&resource.Location,
		&resource.Status,
		pq.Array(&resource.Accessibility),
		&resource.MaintenanceNotes,
		pq.Array(&resource.MaintenancePersons),
		&resource.NextMaintenance,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return &resource, nil
}

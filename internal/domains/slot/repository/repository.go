package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/slot/model"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/logger"
	gRepo "atrium/shared/repository"
	"atrium/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Slot interface {
	Insert(ctx context.Context, model model.Slot) error
	InsertBulk(ctx context.Context, models []model.Slot) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Slot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	FindAvailableTx(ctx context.Context, tx *sqlx.Tx, roomID string, slotIDs []string) ([]model.Slot, error)
	ReserveTx(ctx context.Context, tx *sqlx.Tx, slotIDs []string, user string) (int64, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, slotIDs []string, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Slot]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Slot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailableTx locks the requested slots that are still free for the given
// room. The rows are locked until the surrounding transaction ends, so a
// concurrent booking for any of the same slots blocks here and then sees them
// already taken.
func (repo *repositoryImpl) FindAvailableTx(ctx context.Context, tx *sqlx.Tx, roomID string, slotIDs []string) (slots []model.Slot, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.FindAvailableTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := sqlx.In(
		"SELECT id, room_id, date, start_time, end_time, is_booked, created_at, created_by, modified_at, modified_by FROM slots WHERE id IN (?) AND room_id = ? AND is_booked = FALSE ORDER BY id FOR UPDATE",
		slotIDs,
		roomID,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build available slots query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.SelectContext(ctx, &slots, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find available slots: %w", err)
	}

	return slots, nil
}

// ReserveTx marks the slots booked and reports how many rows actually
// flipped. The is_booked = FALSE guard keeps the flip idempotent against rows
// claimed between the lock and the update.
func (repo *repositoryImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, slotIDs []string, user string) (affected int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.ReserveTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := sqlx.In(
		"UPDATE slots SET is_booked = TRUE, modified_at = ?, modified_by = ? WHERE id IN (?) AND is_booked = FALSE",
		timezone.Now(),
		user,
		slotIDs,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to build reserve slots query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to reserve slots: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read reserved slot count: %w", err)
	}

	return affected, nil
}

// ReleaseTx frees previously booked slots, used when a booking is cancelled.
func (repo *repositoryImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, slotIDs []string, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.ReleaseTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := sqlx.In(
		"UPDATE slots SET is_booked = FALSE, modified_at = ?, modified_by = ? WHERE id IN (?)",
		timezone.Now(),
		user,
		slotIDs,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to build release slots query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to release slots: %w", err)
	}

	return nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/booking/model"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/logger"
	gRepo "atrium/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertSlotsTx(ctx context.Context, tx *sqlx.Tx, bookingID string, slotIDs []string) error
	GetSlotIDs(ctx context.Context, bookingID string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertSlotsTx records which slots a booking claimed, inside the same
// transaction that booked them.
func (repo *repositoryImpl) InsertSlotsTx(ctx context.Context, tx *sqlx.Tx, bookingID string, slotIDs []string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertSlotsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows := make([]model.BookingSlot, len(slotIDs))
	for i, slotID := range slotIDs {
		rows[i] = model.BookingSlot{BookingID: bookingID, SlotID: slotID}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (:%s, :%s)",
		model.SlotsTableName, model.FieldBookingID, model.FieldSlotID, model.FieldBookingID, model.FieldSlotID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = tx.NamedExecContext(ctx, query, rows)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert booking slots: %w", err)
	}

	return nil
}

// GetSlotIDs returns the slot ids a booking claimed.
func (repo *repositoryImpl) GetSlotIDs(ctx context.Context, bookingID string) (slotIDs []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetSlotIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", model.FieldSlotID, model.SlotsTableName, model.FieldBookingID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &slotIDs, query, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get booking slots: %w", err)
	}

	return slotIDs, nil
}

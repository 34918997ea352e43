package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
	"atrium/internal/domains/booking/repository"
	roomModel "atrium/internal/domains/room/model"
	roomRepository "atrium/internal/domains/room/repository"
	slotModel "atrium/internal/domains/slot/model"
	slotRepository "atrium/internal/domains/slot/repository"
	userModel "atrium/internal/domains/user/model"
	userRepository "atrium/internal/domains/user/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"atrium/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheGetAllSlot    = "slot:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingDetailResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMy(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	slotRepo slotRepository.Slot
	userRepo userRepository.User
	tx       postgres.TxRunner
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	slotRepo slotRepository.Slot,
	userRepo userRepository.User,
	tx postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		slotRepo: slotRepo,
		userRepo: userRepo,
		tx:       tx,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafkaClient,
	}
}

// Create books a set of slots atomically. Either the booking row, the slot
// flips, and the booking-slot links all land, or none of them do. Validation
// that needs no storage runs before the transaction opens.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if len(req.Slots) == 0 {
		return res, failure.InvalidInput("at least one slot is required") // nolint:wrapcheck
	}

	userID := req.User
	if userID == constant.Empty {
		userID = actor
	}

	// Only admins may create a booking in a confirmed state.
	status := model.StatusUnconfirmed
	actorRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if req.IsConfirmed != constant.Empty && actorRole == constant.RoleAdmin {
		status = req.IsConfirmed
	}

	txCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.App.Booking.TxTimeoutSeconds)*time.Second)
	defer cancel()

	var (
		booking model.Booking
		room    roomModel.Room
		user    userModel.User
		slots   []slotModel.Slot
	)

	err = s.tx.WithinTx(txCtx, func(tx *sqlx.Tx) error {
		room, err = s.roomRepo.GetTx(txCtx, tx, shared.FilterByID(req.Room, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if room.IsDeleted {
			return failure.RoomUnavailable("room is no longer available") // nolint:wrapcheck
		}

		user, err = s.userRepo.GetTx(txCtx, tx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		if user.ID == constant.Empty {
			return failure.NotFound("user not found") // nolint:wrapcheck
		}

		if user.Role != constant.RoleUser {
			return failure.NotFound("user not found") // nolint:wrapcheck
		}

		slots, err = s.slotRepo.FindAvailableTx(txCtx, tx, req.Room, req.Slots)
		if err != nil {
			return fmt.Errorf("failed to find available slots: %w", err)
		}

		if len(slots) != len(req.Slots) {
			return failure.SlotConflict("one or more requested slots are unavailable") // nolint:wrapcheck
		}

		totalAmount := room.PricePerSlot * len(req.Slots)
		booking = req.ToModel(userID, actor, status, totalAmount)

		if err = s.repo.InsertTx(txCtx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		affected, err := s.slotRepo.ReserveTx(txCtx, tx, req.Slots, actor)
		if err != nil {
			return fmt.Errorf("failed to reserve slots: %w", err)
		}

		if affected != int64(len(req.Slots)) {
			return failure.SlotConflict("one or more requested slots are unavailable") // nolint:wrapcheck
		}

		return s.repo.InsertSlotsTx(txCtx, tx, booking.ID, req.Slots)
	})
	if err != nil {
		log.Error().Err(err).Str("room", req.Room).Str("user", userID).Msg("booking transaction rolled back")

		return res, failure.TransactionAborted(err) // nolint:wrapcheck
	}

	// The detail view reflects committed state, so the slot rows are read
	// again outside the transaction.
	slots, err = s.readSlots(ctx, req.Slots)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to read booked slots")

		return res, fmt.Errorf("failed to read booked slots: %w", err)
	}

	res.FromModels(booking, room, user, slots)

	go func() {
		c := context.WithoutCancel(ctx)

		event := kafka.Message{
			Key: booking.ID,
			Value: dto.BookingCreatedEvent{
				BookingID:   booking.ID,
				RoomID:      booking.RoomID,
				UserID:      booking.UserID,
				Date:        booking.Date,
				SlotIDs:     req.Slots,
				TotalAmount: booking.TotalAmount,
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingCreated, event); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// GetMy lists the caller's own bookings.
func (s *serviceImpl) GetMy(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMy")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing user identity") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsDeleted,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return s.GetAll(ctx, req, filter)
}

// Get assembles the full detail view of one booking.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || booking.IsDeleted {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking room")

		return res, fmt.Errorf("failed to get booking room: %w", err)
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(booking.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking user")

		return res, fmt.Errorf("failed to get booking user: %w", err)
	}

	slotIDs, err := s.repo.GetSlotIDs(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking slots")

		return res, fmt.Errorf("failed to get booking slots: %w", err)
	}

	slots, err := s.readSlots(ctx, slotIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking slot rows")

		return res, fmt.Errorf("failed to get booking slot rows: %w", err)
	}

	res.FromModels(booking, room, user, slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update changes the confirmation status of a booking.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || booking.IsDeleted {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// Delete cancels a booking and frees its slots in one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || booking.IsDeleted {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if role != constant.RoleAdmin && booking.UserID != actor {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	slotIDs, err := s.repo.GetSlotIDs(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking slots")

		return fmt.Errorf("failed to get booking slots: %w", err)
	}

	txCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.App.Booking.TxTimeoutSeconds)*time.Second)
	defer cancel()

	err = s.tx.WithinTx(txCtx, func(tx *sqlx.Tx) error {
		updatedFields := map[string]any{
			model.FieldIsDeleted:     true,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor,
		}

		if err := s.repo.UpdateTx(txCtx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if len(slotIDs) > 0 {
			return s.slotRepo.ReleaseTx(txCtx, tx, slotIDs, actor)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("booking cancel transaction rolled back")

		return failure.TransactionAborted(err) // nolint:wrapcheck
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) readSlots(ctx context.Context, slotIDs []string) ([]slotModel.Slot, error) {
	if len(slotIDs) == 0 {
		return nil, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    slotModel.FieldID,
				Value:    slotIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    slotModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: slotModel.FieldStartTime, SortDir: gDto.SortDirAsc}

	return s.slotRepo.GetAll(ctx, params, filter) // nolint:wrapcheck
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot)
	}()
}

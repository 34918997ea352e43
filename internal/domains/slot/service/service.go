package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Slot=MockSlotService

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"atrium/config"
	"atrium/infras/otel"
	roomModel "atrium/internal/domains/room/model"
	roomRepository "atrium/internal/domains/room/repository"
	"atrium/internal/domains/slot/model"
	"atrium/internal/domains/slot/model/dto"
	"atrium/internal/domains/slot/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSlot = "slot:gets"

	minutesPerHour = 60
)

type Slot interface {
	Create(ctx context.Context, req dto.CreateSlotsRequest) (dto.GetSlotsResponse, error)
	GetAvailability(ctx context.Context, roomID, date string) (dto.GetSlotsResponse, error)
}

type serviceImpl struct {
	repo     repository.Slot
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Slot, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Slot {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create carves the requested window into fixed-duration slots and stores
// them. The window must align with the configured slot duration and must not
// overlap slots that already exist for the room on that date.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSlotsRequest) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for slot creation")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.IsDeleted {
		return res, failure.RoomUnavailable("room is no longer available") // nolint:wrapcheck
	}

	startMin, err := parseClock(req.StartTime)
	if err != nil {
		return res, failure.InvalidInput("invalid start time") // nolint:wrapcheck
	}

	endMin, err := parseClock(req.EndTime)
	if err != nil {
		return res, failure.InvalidInput("invalid end time") // nolint:wrapcheck
	}

	duration := s.cfg.App.Booking.SlotDurationMin
	if endMin <= startMin || (endMin-startMin)%duration != 0 {
		return res, failure.InvalidInput(fmt.Sprintf("time window must be a positive multiple of %d minutes", duration)) // nolint:wrapcheck
	}

	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filterByRoomAndDate(req.RoomID, req.Date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get existing slots")

		return res, fmt.Errorf("failed to get existing slots: %w", err)
	}

	slots := make([]model.Slot, 0, (endMin-startMin)/duration)

	for cursor := startMin; cursor < endMin; cursor += duration {
		slot := model.Slot{
			ID:        uuid.NewString(),
			RoomID:    req.RoomID,
			Date:      req.Date,
			StartTime: formatClock(cursor),
			EndTime:   formatClock(cursor + duration),
			IsBooked:  false,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		for _, ex := range existing {
			if overlaps(slot, ex) {
				return res, failure.Conflict(fmt.Sprintf("slot %s-%s overlaps an existing slot", slot.StartTime, slot.EndTime)) // nolint:wrapcheck
			}
		}

		slots = append(slots, slot)
	}

	if err = s.repo.InsertBulk(ctx, slots); err != nil {
		log.Error().Err(err).Msg("failed to insert slots")

		return res, fmt.Errorf("failed to insert slots: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot)
	}()

	res.FromModels(slots)

	return res, nil
}

// GetAvailability lists the free slots for a room on a date.
func (s *serviceImpl) GetAvailability(ctx context.Context, roomID, date string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllSlot, roomID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	filter := filterByRoomAndDate(roomID, date)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldIsBooked,
		Value:    false,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	slots, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	res.FromModels(slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}

func filterByRoomAndDate(roomID, date string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if date != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldDate,
			Value:    date,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func overlaps(a, b model.Slot) bool {
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}

func parseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value: %s", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %s", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %s", value)
	}

	return hours*minutesPerHour + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	roomMocks "atrium/internal/domains/room/mocks"
	roomModel "atrium/internal/domains/room/model"
	slotMocks "atrium/internal/domains/slot/mocks"
	"atrium/internal/domains/slot/model"
	"atrium/internal/domains/slot/model/dto"
	"atrium/internal/domains/slot/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	"atrium/shared/failure"
)

const testRoomID = "7f9c24e5-1f3b-4a5c-9d2e-8b7a6c5d4e3f"

func newSlotService(ctrl *gomock.Controller) (service.Slot, *slotMocks.MockSlot, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	mockRepo := slotMocks.NewMockSlot(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Booking.SlotDurationMin = 60

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockRoomRepo, mockCache
}

func TestSlotService_Create(t *testing.T) {
	activeRoom := roomModel.Room{ID: testRoomID, Name: "Conference A"}

	tests := []struct {
		name      string
		req       dto.CreateSlotsRequest
		setup     func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantKind  failure.Kind
		wantSlots int
	}{
		{
			name: "splits the window into hourly slots",
			req: dto.CreateSlotsRequest{
				RoomID:    testRoomID,
				Date:      "2026-09-01",
				StartTime: "09:00",
				EndTime:   "12:00",
			},
			setup: func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Slot{}, nil)
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, slots []model.Slot) error {
						assert.Len(t, slots, 3)
						assert.Equal(t, "09:00", slots[0].StartTime)
						assert.Equal(t, "10:00", slots[0].EndTime)
						assert.Equal(t, "11:00", slots[2].StartTime)
						assert.Equal(t, "12:00", slots[2].EndTime)
						return nil
					})
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantSlots: 3,
		},
		{
			name: "missing room",
			req: dto.CreateSlotsRequest{
				RoomID:    testRoomID,
				Date:      "2026-09-01",
				StartTime: "09:00",
				EndTime:   "10:00",
			},
			setup: func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "deleted room",
			req: dto.CreateSlotsRequest{
				RoomID:    testRoomID,
				Date:      "2026-09-01",
				StartTime: "09:00",
				EndTime:   "10:00",
			},
			setup: func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: testRoomID, IsDeleted: true}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindRoomUnavailable,
		},
		{
			name: "window not aligned to slot duration",
			req: dto.CreateSlotsRequest{
				RoomID:    testRoomID,
				Date:      "2026-09-01",
				StartTime: "09:00",
				EndTime:   "10:30",
			},
			setup: func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "end before start",
			req: dto.CreateSlotsRequest{
				RoomID:    testRoomID,
				Date:      "2026-09-01",
				StartTime: "12:00",
				EndTime:   "09:00",
			},
			setup: func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "overlap with existing slot",
			req: dto.CreateSlotsRequest{
				RoomID:    testRoomID,
				Date:      "2026-09-01",
				StartTime: "09:00",
				EndTime:   "11:00",
			},
			setup: func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Slot{
						{
							ID:        "existing",
							RoomID:    testRoomID,
							Date:      "2026-09-01",
							StartTime: "10:00",
							EndTime:   "11:00",
						},
					}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindSlotConflict,
		},
		{
			name: "insert error",
			req: dto.CreateSlotsRequest{
				RoomID:    testRoomID,
				Date:      "2026-09-01",
				StartTime: "09:00",
				EndTime:   "10:00",
			},
			setup: func(repo *slotMocks.MockSlot, roomRepo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoom, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Slot{}, nil)
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, roomRepo, cache := newSlotService(ctrl)
			tt.setup(repo, roomRepo, cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Slots, tt.wantSlots)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestSlotService_GetAvailability(t *testing.T) {
	t.Run("cache miss falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, cache := newSlotService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Slot{
				{ID: "slot-1", RoomID: testRoomID, Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"},
			}, nil)
		cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAvailability(context.Background(), testRoomID, "2026-09-01")

		assert.NoError(t, err)
		assert.Len(t, res.Slots, 1)
		assert.False(t, res.Slots[0].IsBooked)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, cache := newSlotService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("query error"))

		_, err := svc.GetAvailability(context.Background(), testRoomID, "2026-09-01")

		assert.Error(t, err)
	})
}

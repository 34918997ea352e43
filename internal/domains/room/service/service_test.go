package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	s3Mocks "atrium/infras/s3/mocks"
	roomMocks "atrium/internal/domains/room/mocks"
	"atrium/internal/domains/room/model"
	"atrium/internal/domains/room/model/dto"
	"atrium/internal/domains/room/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
)

const testRoomID = "7f9c24e5-1f3b-4a5c-9d2e-8b7a6c5d4e3f"

func newRoomService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.Bucket = "atrium-assets"

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestRoomService_Create(t *testing.T) {
	baseReq := dto.CreateRoomRequest{
		Name:         "Conference A",
		RoomNo:       101,
		FloorNo:      1,
		Capacity:     10,
		PricePerSlot: 150,
		Amenities:    []string{"projector", "whiteboard"},
	}

	tests := []struct {
		name    string
		req     dto.CreateRoomRequest
		setup   func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr bool
	}{
		{
			name: "successful creation without image",
			req:  baseReq,
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "Conference A", room.Name)
						assert.Equal(t, 150, room.PricePerSlot)
						assert.Equal(t, "admin-1", room.CreatedBy)
						assert.False(t, room.IsDeleted)
						return nil
					})
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "successful creation with image",
			req: func() dto.CreateRoomRequest {
				req := baseReq
				req.Image = &multipart.FileHeader{Filename: "room.png"}
				return req
			}(),
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), "atrium-assets", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room.png", nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "https://cdn.example.com/room.png", room.Image)
						return nil
					})
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "upload error",
			req: func() dto.CreateRoomRequest {
				req := baseReq
				req.Image = &multipart.FileHeader{Filename: "room.png"}
				return req
			}(),
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload error"))
			},
			wantErr: true,
		},
		{
			name: "insert error removes uploaded image",
			req: func() dto.CreateRoomRequest {
				req := baseReq
				req.Image = &multipart.FileHeader{Filename: "room.png"}
				return req
			}(),
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room.png", nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
				s3.EXPECT().
					DeleteFile(gomock.Any(), "atrium-assets", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
		{
			name: "insert error without image",
			req:  baseReq,
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, cache, s3 := newRoomService(ctrl)
			tt.setup(repo, cache, s3)

			err := svc.Create(adminCtx(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr  bool
		wantKind failure.Kind
	}{
		{
			name: "cache miss falls back to repository",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: testRoomID, Name: "Conference A"}, nil)
				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cache hit skips repository",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.RoomResponse)
						res.ID = testRoomID
						res.Name = "Conference A"
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "room deleted",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: testRoomID, IsDeleted: true}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindRoomUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, cache, _ := newRoomService(ctrl)
			tt.setup(repo, cache)

			res, err := svc.Get(context.Background(), testRoomID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testRoomID, res.ID)
			assert.Equal(t, "Conference A", res.Name)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("cache miss falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, cache, _ := newRoomService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)
		repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{{ID: testRoomID, Name: "Conference A"}}, nil)
		cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, 1, res.TotalData)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, cache, _ := newRoomService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)
		repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestRoomService_Update(t *testing.T) {
	newName := "Conference B"

	tests := []struct {
		name     string
		setup    func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr  bool
		wantKind failure.Kind
	}{
		{
			name: "successful update",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: testRoomID, Name: "Conference A"}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, newName, fields[model.FieldName])
						return nil
					})
				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "room deleted",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: testRoomID, IsDeleted: true}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindRoomUnavailable,
		},
		{
			name: "update error removes newly uploaded image",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: testRoomID, Name: "Conference A"}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, cache, s3 := newRoomService(ctrl)
			tt.setup(repo, cache, s3)

			err := svc.Update(adminCtx(), dto.UpdateRoomRequest{Name: newName}, testRoomID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}

				return
			}

			assert.NoError(t, err)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr  bool
		wantKind failure.Kind
	}{
		{
			name: "successful soft delete",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: testRoomID, Name: "Conference A"}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, true, fields[model.FieldIsDeleted])
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])
						return nil
					})
				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "already deleted",
			setup: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: testRoomID, IsDeleted: true}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindRoomUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, cache, _ := newRoomService(ctrl)
			tt.setup(repo, cache)

			err := svc.Delete(adminCtx(), testRoomID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}

				return
			}

			assert.NoError(t, err)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
	roomModel "atrium/internal/domains/room/model"
	slotModel "atrium/internal/domains/slot/model"
	userModel "atrium/internal/domains/user/model"
	"atrium/shared/validator"
)

func TestCreateBookingRequest_Validate(t *testing.T) {
	valid := dto.CreateBookingRequest{
		Room:  "7f9c24e5-1f3b-4a5c-9d2e-8b7a6c5d4e3f",
		Date:  "2026-09-01",
		Slots: []string{"9e8d7c6b-5a4f-4e3d-2c1b-0a9f8e7d6c5b"},
	}

	assert.NoError(t, validator.ValidateStruct(&valid))

	confirmed := valid
	confirmed.IsConfirmed = model.StatusConfirmed
	assert.NoError(t, validator.ValidateStruct(&confirmed))

	noSlots := valid
	noSlots.Slots = nil
	assert.Error(t, validator.ValidateStruct(&noSlots))

	emptySlots := valid
	emptySlots.Slots = []string{}
	assert.Error(t, validator.ValidateStruct(&emptySlots))

	badStatus := valid
	badStatus.IsConfirmed = "maybe"
	assert.Error(t, validator.ValidateStruct(&badStatus))
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Room: "room-1",
		Date: "2026-09-01",
	}

	booking := req.ToModel("user-1", "actor-1", model.StatusUnconfirmed, 300)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "room-1", booking.RoomID)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, "2026-09-01", booking.Date)
	assert.Equal(t, 300, booking.TotalAmount)
	assert.Equal(t, model.StatusUnconfirmed, booking.IsConfirmed)
	assert.False(t, booking.IsDeleted)
	assert.Equal(t, "actor-1", booking.CreatedBy)
	assert.Equal(t, "actor-1", booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero())

	confirmed := req.ToModel("user-1", "actor-1", model.StatusConfirmed, 300)
	assert.Equal(t, model.StatusConfirmed, confirmed.IsConfirmed)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-1",
		RoomID:      "room-1",
		UserID:      "user-1",
		Date:        "2026-09-01",
		TotalAmount: 450,
		IsConfirmed: model.StatusConfirmed,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "room-1", res.RoomID)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, 450, res.TotalAmount)
	assert.Equal(t, model.StatusConfirmed, res.IsConfirmed)
}

func TestBookingDetailResponse_FromModels(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-1",
		RoomID:      "room-1",
		UserID:      "user-1",
		Date:        "2026-09-01",
		TotalAmount: 300,
		IsConfirmed: model.StatusUnconfirmed,
	}
	room := roomModel.Room{ID: "room-1", Name: "Conference A", PricePerSlot: 150}
	user := userModel.User{ID: "user-1", Name: "Jane Doe", Email: "jane@example.com", Password: "hashed"}
	slots := []slotModel.Slot{
		{ID: "slot-1", RoomID: "room-1", StartTime: "09:00", EndTime: "10:00", IsBooked: true},
		{ID: "slot-2", RoomID: "room-1", StartTime: "10:00", EndTime: "11:00", IsBooked: true},
	}

	var res dto.BookingDetailResponse
	res.FromModels(booking, room, user, slots)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, 300, res.TotalAmount)
	assert.Equal(t, "Conference A", res.Room.Name)
	assert.Equal(t, "Jane Doe", res.User.Name)
	assert.Len(t, res.Slots, 2)
	assert.Equal(t, "09:00", res.Slots[0].StartTime)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1"},
		{ID: "booking-2"},
	}

	var res dto.GetBookingsResponse
	res.FromModels(models, 12, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

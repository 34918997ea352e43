package dto

import (
	"atrium/internal/domains/booking/model"
	roomModel "atrium/internal/domains/room/model"
	roomDto "atrium/internal/domains/room/model/dto"
	slotModel "atrium/internal/domains/slot/model"
	slotDto "atrium/internal/domains/slot/model/dto"
	userModel "atrium/internal/domains/user/model"
	userDto "atrium/internal/domains/user/model/dto"
	"atrium/shared"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Room        string   `json:"room"         validate:"required,uuid"`
	User        string   `json:"user"         validate:"omitempty,uuid"`
	Date        string   `json:"date"         validate:"required,datetime=2006-01-02"`
	Slots       []string `json:"slots"        validate:"required,min=1,dive,uuid"`
	IsConfirmed string   `json:"is_confirmed" validate:"omitempty,oneof=confirmed unconfirmed"`
}

func (c *CreateBookingRequest) ToModel(userID, createdBy, status string, totalAmount int) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.Room,
		UserID:      userID,
		Date:        c.Date,
		TotalAmount: totalAmount,
		IsConfirmed: status,
		IsDeleted:   false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateBookingRequest struct {
	IsConfirmed string `db:"is_confirmed" json:"is_confirmed" validate:"required,oneof=confirmed unconfirmed"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	TotalAmount int    `json:"total_amount"`
	IsConfirmed string `json:"is_confirmed"`
	IsDeleted   bool   `json:"is_deleted"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.Date = model.Date
	r.TotalAmount = model.TotalAmount
	r.IsConfirmed = model.IsConfirmed
	r.IsDeleted = model.IsDeleted
	r.Metadata.FromModel(model.Metadata)
}

// BookingDetailResponse is the assembled view of a booking with its room,
// slots, and sanitized user.
type BookingDetailResponse struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date"`
	Slots       []slotDto.SlotResponse `json:"slots"`
	Room        roomDto.RoomResponse   `json:"room"`
	User        userDto.UserResponse   `json:"user"`
	TotalAmount int                    `json:"total_amount"`
	IsConfirmed string                 `json:"is_confirmed"`
	gDto.Metadata
}

func (r *BookingDetailResponse) FromModels(booking model.Booking, room roomModel.Room, user userModel.User, slots []slotModel.Slot) {
	r.ID = booking.ID
	r.Date = booking.Date
	r.TotalAmount = booking.TotalAmount
	r.IsConfirmed = booking.IsConfirmed
	r.Room.FromModel(room)
	r.User.FromModel(user)
	r.Metadata.FromModel(booking.Metadata)

	r.Slots = make([]slotDto.SlotResponse, len(slots))
	for i, slot := range slots {
		r.Slots[i].FromModel(slot)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is published after a booking commits.
type BookingCreatedEvent struct {
	BookingID   string   `json:"booking_id"`
	RoomID      string   `json:"room_id"`
	UserID      string   `json:"user_id"`
	Date        string   `json:"date"`
	SlotIDs     []string `json:"slot_ids"`
	TotalAmount int      `json:"total_amount"`
}

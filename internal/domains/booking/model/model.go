package model

import "atrium/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	SlotsTableName = "booking_slots"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldUserID      = "user_id"
	FieldDate        = "date"
	FieldTotalAmount = "total_amount"
	FieldIsConfirmed = "is_confirmed"
	FieldIsDeleted   = "is_deleted"

	FieldBookingID = "booking_id"
	FieldSlotID    = "slot_id"

	StatusConfirmed   = "confirmed"
	StatusUnconfirmed = "unconfirmed"
)

type Booking struct {
	ID          string `db:"id"`
	RoomID      string `db:"room_id"`
	UserID      string `db:"user_id"`
	Date        string `db:"date"`
	TotalAmount int    `db:"total_amount"`
	IsConfirmed string `db:"is_confirmed"`
	IsDeleted   bool   `db:"is_deleted"`
	model.Metadata
}

// BookingSlot links a booking to one of the slots it claimed.
type BookingSlot struct {
	BookingID string `db:"booking_id"`
	SlotID    string `db:"slot_id"`
}

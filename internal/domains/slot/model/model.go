package model

import "atrium/shared/model"

const (
	TableName  = "slots"
	EntityName = "slot"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldDate      = "date"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldIsBooked  = "is_booked"
)

// Slot is a bookable interval of a room on a given date. Date is stored as
// YYYY-MM-DD and times as HH:MM, matching the request wire format.
type Slot struct {
	ID        string `db:"id"`
	RoomID    string `db:"room_id"`
	Date      string `db:"date"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	IsBooked  bool   `db:"is_booked"`
	model.Metadata
}

package model

import (
	"atrium/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldRoomNo       = "room_no"
	FieldFloorNo      = "floor_no"
	FieldCapacity     = "capacity"
	FieldPricePerSlot = "price_per_slot"
	FieldAmenities    = "amenities"
	FieldImage        = "image"
	FieldIsDeleted    = "is_deleted"
)

type Room struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	RoomNo       int            `db:"room_no"`
	FloorNo      int            `db:"floor_no"`
	Capacity     int            `db:"capacity"`
	PricePerSlot int            `db:"price_per_slot"`
	Amenities    pq.StringArray `db:"amenities"`
	Image        string         `db:"image"`
	IsDeleted    bool           `db:"is_deleted"`
	model.Metadata
}

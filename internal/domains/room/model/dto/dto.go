package dto

import (
	"mime/multipart"

	"atrium/internal/domains/room/model"
	"atrium/shared"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name         string                `json:"name"           validate:"required,max=100"`
	RoomNo       int                   `json:"room_no"        validate:"required,min=1"`
	FloorNo      int                   `json:"floor_no"       validate:"required,min=0"`
	Capacity     int                   `json:"capacity"       validate:"required,min=1"`
	PricePerSlot int                   `json:"price_per_slot" validate:"required,min=0"`
	Amenities    []string              `json:"amenities"      validate:"omitempty,dive,max=100"`
	Image        *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	return model.Room{
		ID:           uuid.NewString(),
		Name:         c.Name,
		RoomNo:       c.RoomNo,
		FloorNo:      c.FloorNo,
		Capacity:     c.Capacity,
		PricePerSlot: c.PricePerSlot,
		Amenities:    c.Amenities,
		Image:        imageURL,
		IsDeleted:    false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name         string                `db:"name"           json:"name"           validate:"omitempty,max=100"`
	RoomNo       *int                  `db:"room_no"        json:"room_no"        validate:"omitempty,min=1"`
	FloorNo      *int                  `db:"floor_no"       json:"floor_no"       validate:"omitempty,min=0"`
	Capacity     *int                  `db:"capacity"       json:"capacity"       validate:"omitempty,min=1"`
	PricePerSlot *int                  `db:"price_per_slot" json:"price_per_slot" validate:"omitempty,min=0"`
	Image        *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	RoomNo       int      `json:"room_no"`
	FloorNo      int      `json:"floor_no"`
	Capacity     int      `json:"capacity"`
	PricePerSlot int      `json:"price_per_slot"`
	Amenities    []string `json:"amenities"`
	Image        string   `json:"image,omitempty"`
	IsDeleted    bool     `json:"is_deleted"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomNo = model.RoomNo
	r.FloorNo = model.FloorNo
	r.Capacity = model.Capacity
	r.PricePerSlot = model.PricePerSlot
	r.Amenities = model.Amenities
	r.Image = model.Image
	r.IsDeleted = model.IsDeleted
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

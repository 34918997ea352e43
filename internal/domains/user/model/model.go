package model

import "atrium/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
	FieldAddress  = "address"
	FieldRole     = "role"
)

type User struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	Role     string `db:"role"`
	model.Metadata
}

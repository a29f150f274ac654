package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
)

const (
	TableName  = "suppliers"
	EntityName = "supplier"

	FieldID            = "id"
	FieldName          = "name"
	FieldContactPerson = "contact_person"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldAddress       = "address"
	FieldCategory      = "category"
	FieldStatus        = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var SortableFields = []string{FieldName, FieldCategory, FieldStatus, constant.FieldCreatedAt}

type Supplier struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	ContactPerson string `db:"contact_person"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Address       string `db:"address"`
	Category      string `db:"category"`
	Status        string `db:"status"`
	model.Metadata
}

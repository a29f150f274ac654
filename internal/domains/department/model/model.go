package model

import (
	"hotelops/shared/constant"
	"hotelops/shared/model"
)

const (
	TableName  = "departments"
	EntityName = "department"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
)

var SortableFields = []string{FieldName, constant.FieldCreatedAt}

type Department struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	model.Metadata
}

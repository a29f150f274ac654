package dto

import (
	"hotelops/internal/domains/supplier/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"strings"

	"github.com/google/uuid"
)

type CreateSupplierRequest struct {
	Name          string `json:"name"           validate:"required,max=150"`
	ContactPerson string `json:"contact_person" validate:"required,max=150"`
	Email         string `json:"email"          validate:"required,email"`
	Phone         string `json:"phone"          validate:"required,max=30"`
	Address       string `json:"address"        validate:"omitempty,max=500"`
	Category      string `json:"category"       validate:"omitempty,max=100"`
	Status        string `json:"status"         validate:"omitempty,oneof=active inactive"`
}

func (c *CreateSupplierRequest) ToModel(user string) model.Supplier {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusActive
	}

	return model.Supplier{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(c.Name),
		ContactPerson: strings.TrimSpace(c.ContactPerson),
		Email:         strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:         strings.TrimSpace(c.Phone),
		Address:       strings.TrimSpace(c.Address),
		Category:      strings.TrimSpace(c.Category),
		Status:        status,
		Metadata:      gModel.NewMetadata(user),
	}
}

type UpdateSupplierRequest struct {
	Name          string `db:"name"           json:"name"           validate:"required,max=150"`
	ContactPerson string `db:"contact_person" json:"contact_person" validate:"required,max=150"`
	Email         string `db:"email"          json:"email"          validate:"required,email"`
	Phone         string `db:"phone"          json:"phone"          validate:"required,max=30"`
	Address       string `db:"address"        json:"address"        validate:"omitempty,max=500"`
	Category      string `db:"category"       json:"category"       validate:"omitempty,max=100"`
	Status        string `db:"status"         json:"status"         validate:"required,oneof=active inactive"`
}

type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (r *SupplierResponse) FromModel(model model.Supplier) {
	r.ID = model.ID
	r.Name = model.Name
	r.ContactPerson = model.ContactPerson
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Category = model.Category
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSuppliersResponse) FromModels(models []model.Supplier, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Suppliers = make([]SupplierResponse, len(models))
	for i, m := range models {
		r.Suppliers[i].FromModel(m)
	}
}

package dto

import (
	"tcnursery/internal/domain/registers/supplier"
)

// CreateSupplierRequest is the request body for adding a supplier.
type CreateSupplierRequest struct {
	LastOrderDate string `json:"lastOrderDate" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Contact       string `json:"contact"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	City          string `json:"city"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.NewSupplier(r.LastOrderDate, r.Name, r.Category)
	r.fill(s)
	return s
}

func (r *CreateSupplierRequest) fill(s *supplier.Supplier) {
	s.LastOrderDate = r.LastOrderDate
	s.Name = r.Name
	s.Category = r.Category
	s.Contact = r.Contact
	s.Phone = r.Phone
	s.Email = r.Email
	s.City = r.City
}

// UpdateSupplierRequest is the request body for editing a supplier.
type UpdateSupplierRequest struct {
	CreateSupplierRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSupplierRequest) ApplyTo(s *supplier.Supplier) {
	r.fill(s)
	s.Version = r.Version
}

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	BaseResponse
	LastOrderDate string `json:"lastOrderDate"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Contact       string `json:"contact,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	City          string `json:"city,omitempty"`
}

// FromSupplier creates response DTO from domain entity.
func FromSupplier(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		BaseResponse:  FromRecord(s.Record),
		LastOrderDate: s.LastOrderDate,
		Name:          s.Name,
		Category:      s.Category,
		Contact:       s.Contact,
		Phone:         s.Phone,
		Email:         s.Email,
		City:          s.City,
	}
}

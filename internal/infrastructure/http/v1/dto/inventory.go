package dto

import (
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain/registers/inventory"
)

// CreateInventoryRequest is the request body for a receipt or issue.
type CreateInventoryRequest struct {
	Date         string              `json:"date" binding:"required"`
	ItemName     string              `json:"itemName" binding:"required"`
	Category     string              `json:"category" binding:"required"`
	Direction    inventory.Direction `json:"direction" binding:"required,oneof=in out"`
	Quantity     types.Quantity      `json:"quantity"`
	Unit         string              `json:"unit" binding:"required"`
	SupplierName string              `json:"supplierName"`
	Reference    string              `json:"reference"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateInventoryRequest) ToEntity() *inventory.Movement {
	m := inventory.NewMovement(r.Date, r.ItemName, r.Category, r.Direction, r.Quantity, r.Unit)
	r.fill(m)
	return m
}

func (r *CreateInventoryRequest) fill(m *inventory.Movement) {
	m.Date = r.Date
	m.ItemName = r.ItemName
	m.Category = r.Category
	m.Direction = r.Direction
	m.Quantity = r.Quantity
	m.Unit = r.Unit
	m.SupplierName = r.SupplierName
	if r.Reference != "" {
		m.Reference = r.Reference
	}
}

// UpdateInventoryRequest is the request body for editing a movement.
// An empty reference keeps the current one.
type UpdateInventoryRequest struct {
	CreateInventoryRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateInventoryRequest) ApplyTo(m *inventory.Movement) {
	r.fill(m)
	m.Version = r.Version
}

// InventoryResponse is the response body for a movement.
type InventoryResponse struct {
	BaseResponse
	Date         string              `json:"date"`
	ItemName     string              `json:"itemName"`
	Category     string              `json:"category"`
	Direction    inventory.Direction `json:"direction"`
	Quantity     types.Quantity      `json:"quantity"`
	Unit         string              `json:"unit"`
	SupplierName string              `json:"supplierName,omitempty"`
	Reference    string              `json:"reference"`
}

// FromInventory creates response DTO from domain entity.
func FromInventory(m *inventory.Movement) *InventoryResponse {
	return &InventoryResponse{
		BaseResponse: FromRecord(m.Record),
		Date:         m.Date,
		ItemName:     m.ItemName,
		Category:     m.Category,
		Direction:    m.Direction,
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		SupplierName: m.SupplierName,
		Reference:    m.Reference,
	}
}

// BalanceListResponse lists item balances.
type BalanceListResponse struct {
	Items []inventory.Balance `json:"items"`
}

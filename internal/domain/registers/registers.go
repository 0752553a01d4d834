// Package registers groups the nursery registers served by one process.
package registers

import (
	"tcnursery/internal/domain/registers/hardening"
	"tcnursery/internal/domain/registers/incubation"
	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/domain/registers/media"
	"tcnursery/internal/domain/registers/sampling"
	"tcnursery/internal/domain/registers/subculture"
	"tcnursery/internal/domain/registers/supplier"
)

// Set holds one service per register.
type Set struct {
	Media      *media.Service
	Incubation *incubation.Service
	Subculture *subculture.Service
	Sampling   *sampling.Service
	Hardening  *hardening.Service
	Inventory  *inventory.Service
	Supplier   *supplier.Service
}

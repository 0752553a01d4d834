// Package app assembles the register services over in-memory storage.
package app

import (
	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain/audit"
	"tcnursery/internal/domain/registers"
	"tcnursery/internal/domain/registers/hardening"
	"tcnursery/internal/domain/registers/incubation"
	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/domain/registers/media"
	"tcnursery/internal/domain/registers/sampling"
	"tcnursery/internal/domain/registers/subculture"
	"tcnursery/internal/domain/registers/supplier"
	"tcnursery/internal/infrastructure/storage/memory"
)

// NewRegisters creates every register service on its own copy-on-write store.
// When journal is non-nil, all register changes are audited into it.
func NewRegisters(gen numerator.Generator, journal audit.Journal) *registers.Set {
	set := &registers.Set{
		Media:      media.NewService(memory.NewStore[*media.Preparation]("media"), gen),
		Incubation: incubation.NewService(memory.NewStore[*incubation.Batch]("incubation"), gen),
		Subculture: subculture.NewService(memory.NewStore[*subculture.Transfer]("subculture"), gen),
		Sampling:   sampling.NewService(memory.NewStore[*sampling.Sample]("sampling")),
		Hardening:  hardening.NewService(memory.NewStore[*hardening.Batch]("hardening"), gen),
		Inventory:  inventory.NewService(memory.NewStore[*inventory.Movement]("inventory"), gen),
		Supplier:   supplier.NewService(memory.NewStore[*supplier.Supplier]("supplier")),
	}

	if journal != nil {
		audit.Attach(set.Media.RegisterService, journal)
		audit.Attach(set.Incubation.RegisterService, journal)
		audit.Attach(set.Subculture.RegisterService, journal)
		audit.Attach(set.Sampling.RegisterService, journal)
		audit.Attach(set.Hardening.RegisterService, journal)
		audit.Attach(set.Inventory.RegisterService, journal)
		audit.Attach(set.Supplier.RegisterService, journal)
	}

	return set
}

package handlers

import (
	"tcnursery/internal/domain/audit"
	"tcnursery/internal/domain/registers/hardening"
	"tcnursery/internal/domain/registers/incubation"
	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/domain/registers/media"
	"tcnursery/internal/domain/registers/sampling"
	"tcnursery/internal/domain/registers/subculture"
	"tcnursery/internal/domain/registers/supplier"
	"tcnursery/internal/infrastructure/http/v1/dto"
)

// MediaHTTPHandler serves the media register.
type MediaHTTPHandler = RegisterHandler[*media.Preparation, dto.CreateMediaRequest, dto.UpdateMediaRequest]

// NewMediaHandler creates the media register handler.
func NewMediaHandler(base *BaseHandler, service *media.Service, journal audit.Journal) *MediaHTTPHandler {
	return NewRegisterHandler(base, RegisterHandlerConfig[*media.Preparation, dto.CreateMediaRequest, dto.UpdateMediaRequest]{
		Service:      service.RegisterService,
		Journal:      journal,
		MapCreateDTO: func(req dto.CreateMediaRequest) *media.Preparation { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateMediaRequest, existing *media.Preparation) *media.Preparation {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(p *media.Preparation) any { return dto.FromMedia(p) },
	})
}

// IncubationHTTPHandler serves the incubation register.
type IncubationHTTPHandler = RegisterHandler[*incubation.Batch, dto.CreateIncubationRequest, dto.UpdateIncubationRequest]

// NewIncubationHandler creates the incubation register handler.
func NewIncubationHandler(base *BaseHandler, service *incubation.Service, journal audit.Journal) *IncubationHTTPHandler {
	return NewRegisterHandler(base, RegisterHandlerConfig[*incubation.Batch, dto.CreateIncubationRequest, dto.UpdateIncubationRequest]{
		Service:      service.RegisterService,
		Journal:      journal,
		MapCreateDTO: func(req dto.CreateIncubationRequest) *incubation.Batch { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateIncubationRequest, existing *incubation.Batch) *incubation.Batch {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(b *incubation.Batch) any { return dto.FromIncubation(b) },
	})
}

// SubcultureHTTPHandler serves the subculture register.
type SubcultureHTTPHandler = RegisterHandler[*subculture.Transfer, dto.CreateSubcultureRequest, dto.UpdateSubcultureRequest]

// NewSubcultureHandler creates the subculture register handler.
func NewSubcultureHandler(base *BaseHandler, service *subculture.Service, journal audit.Journal) *SubcultureHTTPHandler {
	return NewRegisterHandler(base, RegisterHandlerConfig[*subculture.Transfer, dto.CreateSubcultureRequest, dto.UpdateSubcultureRequest]{
		Service:      service.RegisterService,
		Journal:      journal,
		MapCreateDTO: func(req dto.CreateSubcultureRequest) *subculture.Transfer { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateSubcultureRequest, existing *subculture.Transfer) *subculture.Transfer {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(t *subculture.Transfer) any { return dto.FromSubculture(t) },
	})
}

// SamplingHTTPHandler serves the sampling register.
type SamplingHTTPHandler = RegisterHandler[*sampling.Sample, dto.CreateSamplingRequest, dto.UpdateSamplingRequest]

// NewSamplingHandler creates the sampling register handler.
func NewSamplingHandler(base *BaseHandler, service *sampling.Service, journal audit.Journal) *SamplingHTTPHandler {
	return NewRegisterHandler(base, RegisterHandlerConfig[*sampling.Sample, dto.CreateSamplingRequest, dto.UpdateSamplingRequest]{
		Service:      service.RegisterService,
		Journal:      journal,
		MapCreateDTO: func(req dto.CreateSamplingRequest) *sampling.Sample { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateSamplingRequest, existing *sampling.Sample) *sampling.Sample {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(s *sampling.Sample) any { return dto.FromSampling(s) },
	})
}

// HardeningHTTPHandler serves the hardening register.
type HardeningHTTPHandler = RegisterHandler[*hardening.Batch, dto.CreateHardeningRequest, dto.UpdateHardeningRequest]

// NewHardeningHandler creates the hardening register handler.
func NewHardeningHandler(base *BaseHandler, service *hardening.Service, journal audit.Journal) *HardeningHTTPHandler {
	return NewRegisterHandler(base, RegisterHandlerConfig[*hardening.Batch, dto.CreateHardeningRequest, dto.UpdateHardeningRequest]{
		Service:      service.RegisterService,
		Journal:      journal,
		MapCreateDTO: func(req dto.CreateHardeningRequest) *hardening.Batch { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateHardeningRequest, existing *hardening.Batch) *hardening.Batch {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(b *hardening.Batch) any { return dto.FromHardening(b) },
	})
}

// InventoryHTTPHandler serves the inventory register.
type InventoryHTTPHandler = RegisterHandler[*inventory.Movement, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]

// NewInventoryHandler creates the inventory register handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service, journal audit.Journal) *InventoryHTTPHandler {
	return NewRegisterHandler(base, RegisterHandlerConfig[*inventory.Movement, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]{
		Service:      service.RegisterService,
		Journal:      journal,
		MapCreateDTO: func(req dto.CreateInventoryRequest) *inventory.Movement { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateInventoryRequest, existing *inventory.Movement) *inventory.Movement {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(m *inventory.Movement) any { return dto.FromInventory(m) },
	})
}

// SupplierHTTPHandler serves the supplier directory.
type SupplierHTTPHandler = RegisterHandler[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]

// NewSupplierHandler creates the supplier directory handler.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service, journal audit.Journal) *SupplierHTTPHandler {
	return NewRegisterHandler(base, RegisterHandlerConfig[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]{
		Service:      service.RegisterService,
		Journal:      journal,
		MapCreateDTO: func(req dto.CreateSupplierRequest) *supplier.Supplier { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateSupplierRequest, existing *supplier.Supplier) *supplier.Supplier {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(s *supplier.Supplier) any { return dto.FromSupplier(s) },
	})
}

package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/audit"
	domainFilter "tcnursery/internal/domain/filter"
	"tcnursery/internal/infrastructure/http/v1/dto"
)

// maxLimit caps page size for list endpoints.
const maxLimit = 500

// RegisterHandler provides generic HTTP handlers for a nursery register.
type RegisterHandler[T entity.Entity[T], CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service *domain.RegisterService[T]
	journal audit.Journal

	// Mapper functions
	mapCreateDTO func(dto CreateDTO) T
	mapUpdateDTO func(dto UpdateDTO, existing T) T
	mapToDTO     func(entity T) any
}

// RegisterHandlerConfig configures the register handler.
type RegisterHandlerConfig[T entity.Entity[T], CreateDTO any, UpdateDTO any] struct {
	Service *domain.RegisterService[T]

	// Journal serves GET /audit; nil disables the endpoint's data (empty list)
	Journal audit.Journal

	MapCreateDTO func(dto CreateDTO) T
	MapUpdateDTO func(dto UpdateDTO, existing T) T
	MapToDTO     func(entity T) any
}

// NewRegisterHandler creates a new register handler.
func NewRegisterHandler[T entity.Entity[T], CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg RegisterHandlerConfig[T, CreateDTO, UpdateDTO],
) *RegisterHandler[T, CreateDTO, UpdateDTO] {
	return &RegisterHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		journal:      cfg.Journal,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) mapAll(records []T) []any {
	items := make([]any, len(records))
	for i, r := range records {
		items[i] = h.mapToDTO(r)
	}
	return items
}

// List handles GET /{register} - list with advanced filters and pagination.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Limit = h.ParseIntQuery(c, "limit", filter.Limit)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	if filter.Limit <= 0 || filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	if filterJSON := c.Query("filter"); filterJSON != "" {
		var advFilters []domainFilter.Item
		if err := json.Unmarshal([]byte(filterJSON), &advFilters); err != nil {
			h.Error(c, apperror.NewValidation("invalid filter format (json expected)"))
			return
		}
		filter.AdvancedFilters = advFilters
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.BaseHandler.List(c, h.mapAll(result.Items), result.TotalCount, result.Limit, result.Offset)
}

// Get handles GET /{register}/:id - get single record.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	recordID, ok := h.ParseID(c)
	if !ok {
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), recordID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(record))
}

// Create handles POST /{register} - create new record.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	record := h.mapCreateDTO(req)

	if err := h.service.Create(c.Request.Context(), record); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.mapToDTO(record))
}

// Update handles PUT /{register}/:id - replace an existing record.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	recordID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, recordID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdateDTO(req, existing)

	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(updated))
}

// Delete handles DELETE /{register}/:id - remove a record.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	recordID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), recordID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Filter handles GET /{register}/filter - the cascading filter bar.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) Filter(c *gin.Context) {
	var q dto.FilterQuery
	if !h.BindQuery(c, &q) {
		return
	}

	view, err := h.service.Filter(c.Request.Context(), domain.FilterQuery{
		Field1: q.Field1,
		Field2: q.Field2,
		Search: q.Search,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	def := h.service.Definition()
	h.OK(c, dto.FilterResponse{
		Fields: map[string]string{
			"field1": def.Field1.Name,
			"field2": def.Field2.Name,
		},
		State:         dto.FromFilterState(view.State),
		Field1Options: view.Field1Options,
		Field2Options: view.Field2Options,
		Items:         h.mapAll(view.Items),
		Count:         len(view.Items),
	})
}

// Select handles GET /{register}/select - the date/identifier record selector.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) Select(c *gin.Context) {
	var q dto.SelectQuery
	if !h.BindQuery(c, &q) {
		return
	}

	sel, err := h.service.Select(c.Request.Context(), q.Date, q.Identifier)
	if err != nil {
		h.Error(c, err)
		return
	}

	def := h.service.Definition()
	resp := dto.SelectResponse{
		Fields: map[string]string{
			"date":       def.Date.Name,
			"identifier": def.Identifier.Name,
		},
		Date:        sel.Date,
		Identifier:  sel.Identifier,
		Identifiers: sel.Identifiers,
		HasRecords:  sel.HasRecords,
	}
	if sel.Found {
		resp.Record = h.mapToDTO(sel.Record)
	}
	h.OK(c, resp)
}

// Audit handles GET /{register}/audit - journal entries, newest first.
// ?recordId= narrows to one record.
func (h *RegisterHandler[T, CreateDTO, UpdateDTO]) Audit(c *gin.Context) {
	ctx := c.Request.Context()
	limit := h.ParseIntQuery(c, "limit", 100)

	if h.journal == nil {
		h.BaseHandler.List(c, []dto.AuditEntryResponse{}, 0, limit, 0)
		return
	}

	name := h.service.Definition().Name
	var (
		entries []audit.Entry
		err     error
	)
	if raw := c.Query("recordId"); raw != "" {
		recordID, perr := parseRecordID(raw)
		if perr != nil {
			h.Error(c, perr)
			return
		}
		entries, err = h.journal.History(ctx, name, recordID, limit)
	} else {
		entries, err = h.journal.List(ctx, name, limit)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.AuditEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = dto.FromAuditEntry(e)
	}
	h.BaseHandler.List(c, items, int64(len(items)), limit, 0)
}

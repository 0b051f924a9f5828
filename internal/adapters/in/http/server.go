// Package http adapts the REST API to application commands and queries.
package http

import (
	"errors"
	"net/http"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/generated/servers"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	defaultPageSize = 50
	defaultActor    = "api"
)

// Handlers bundles every use case the HTTP server dispatches to.
type Handlers struct {
	CreateParcel       commands.CreateParcelCommandHandler
	ChangeParcelStatus commands.ChangeParcelStatusCommandHandler
	UpdateParcel       commands.UpdateParcelCommandHandler
	DeleteParcel       commands.DeleteParcelCommandHandler
	AddParcelProduct   commands.AddParcelProductCommandHandler
	RemoveProduct      commands.RemoveParcelProductCommandHandler
	RegisterClient     commands.RegisterClientCommandHandler
	RegisterRecipient  commands.RegisterRecipientCommandHandler
	RegisterCourier    commands.RegisterCourierCommandHandler
	RegisterZone       commands.RegisterZoneCommandHandler
	RegisterProduct    commands.RegisterProductCommandHandler

	GetParcels            queries.GetParcelsQueryHandler
	GetParcel             queries.GetParcelQueryHandler
	SearchParcels         queries.SearchParcelsQueryHandler
	FilterParcels         queries.FilterParcelsQueryHandler
	GetParcelsByClient    queries.GetParcelsByClientQueryHandler
	GetParcelsByRecipient queries.GetParcelsByRecipientQueryHandler
	GetParcelsByCourier   queries.GetParcelsByCourierQueryHandler
	GetParcelHistory      queries.GetParcelHistoryQueryHandler
	GetParcelProducts     queries.GetParcelProductsQueryHandler
	StatsByCourier        queries.StatsByCourierQueryHandler
	StatsByZone           queries.StatsByZoneQueryHandler
	OverdueParcels        queries.OverdueParcelsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors to HTTP status codes. Anything
// that is not a known business error is a 500.
func mapError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateValue):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidOperation):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := id.Bytes()
	return &u
}

func paging(page, size *int) (int, int) {
	p, s := 0, defaultPageSize
	if page != nil {
		p = *page
	}
	if size != nil {
		s = *size
	}
	return p, s
}

func toAPIParcel(resp queries.ParcelResponse) servers.Parcel {
	return servers.Parcel{
		Id:               resp.ID.Bytes(),
		ClientId:         resp.ClientID.Bytes(),
		RecipientId:      resp.RecipientID.Bytes(),
		CourierId:        toAPIUUID(resp.CourierID),
		ZoneId:           toAPIUUID(resp.ZoneID),
		Description:      resp.Description,
		Weight:           resp.Weight,
		Priority:         servers.ParcelPriority(resp.Priority),
		Status:           servers.ParcelStatus(resp.Status),
		DestinationCity:  resp.DestinationCity,
		DeliveryDeadline: resp.DeliveryDeadline,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
		CollectedAt:      resp.CollectedAt,
		DeliveredAt:      resp.DeliveredAt,
	}
}

func toAPIParcels(responses []queries.ParcelResponse) []servers.Parcel {
	parcels := make([]servers.Parcel, len(responses))
	for i, resp := range responses {
		parcels[i] = toAPIParcel(resp)
	}
	return parcels
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.NewParcel
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := toKernelUUID(body.ClientId)
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}
	recipientID, err := toKernelUUID(body.RecipientId)
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}
	var zoneID *kernel.UUID
	if body.ZoneId != nil {
		id, zoneErr := toKernelUUID(*body.ZoneId)
		if zoneErr != nil {
			return badRequest(ctx, "Invalid zone id")
		}
		zoneID = &id
	}
	priority, err := parcel.PriorityFromString(string(body.Priority))
	if err != nil {
		return badRequest(ctx, "Invalid priority: "+err.Error())
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID, clientID, recipientID, zoneID,
		body.Description, body.Weight, priority,
		body.DestinationCity, body.DeliveryDeadline,
	)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	if handleErr := s.handlers.CreateParcel.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: parcelID.Bytes()})
}

// GetParcels handles GET /api/v1/parcels.
func (s *Server) GetParcels(ctx echo.Context, params servers.GetParcelsParams) error {
	page, size := paging(params.Page, params.Size)
	query, err := queries.NewGetParcelsQuery(page, size)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.handlers.GetParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcels(parcels))
}

// GetParcel handles GET /api/v1/parcels/{parcelId}.
func (s *Server) GetParcel(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.handlers.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcel(found))
}

// UpdateParcel handles PATCH /api/v1/parcels/{parcelId}.
func (s *Server) UpdateParcel(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var body servers.UpdateParcel
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fields := commands.UpdateParcelFields{
		Description:      body.Description,
		Weight:           body.Weight,
		DestinationCity:  body.DestinationCity,
		DeliveryDeadline: body.DeliveryDeadline,
	}
	if body.Priority != nil {
		priority, priorityErr := parcel.PriorityFromString(string(*body.Priority))
		if priorityErr != nil {
			return badRequest(ctx, "Invalid priority: "+priorityErr.Error())
		}
		fields.Priority = &priority
	}
	if body.Status != nil {
		status, statusErr := parcel.StatusFromString(string(*body.Status))
		if statusErr != nil {
			return badRequest(ctx, "Invalid status: "+statusErr.Error())
		}
		fields.Status = &status
	}
	if body.CourierId != nil {
		id, courierErr := toKernelUUID(*body.CourierId)
		if courierErr != nil {
			return badRequest(ctx, "Invalid courier id")
		}
		fields.CourierID = &id
	}
	if body.ZoneId != nil {
		id, zoneErr := toKernelUUID(*body.ZoneId)
		if zoneErr != nil {
			return badRequest(ctx, "Invalid zone id")
		}
		fields.ZoneID = &id
	}

	cmd, err := commands.NewUpdateParcelCommand(parcelID, fields)
	if err != nil {
		return badRequest(ctx, "Invalid update: "+err.Error())
	}

	if handleErr := s.handlers.UpdateParcel.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteParcel handles DELETE /api/v1/parcels/{parcelId}.
func (s *Server) DeleteParcel(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.DeleteParcel.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeParcelStatus handles POST /api/v1/parcels/{parcelId}/status.
func (s *Server) ChangeParcelStatus(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var body servers.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := parcel.StatusFromString(string(body.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	comment := ""
	if body.Comment != nil {
		comment = *body.Comment
	}
	changedBy := defaultActor
	if body.ChangedBy != nil {
		changedBy = *body.ChangedBy
	}

	cmd, err := commands.NewChangeParcelStatusCommand(parcelID, status, comment, changedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.ChangeParcelStatus.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcelHistory handles GET /api/v1/parcels/{parcelId}/history.
func (s *Server) GetParcelHistory(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.handlers.GetParcelHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.HistoryEntry{
			Id:        entry.ID.Bytes(),
			ParcelId:  entry.ParcelID.Bytes(),
			Status:    servers.ParcelStatus(entry.Status),
			ChangedAt: entry.ChangedAt,
			Comment:   entry.Comment,
			ChangedBy: entry.ChangedBy,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddParcelProduct handles POST /api/v1/parcels/{parcelId}/products.
func (s *Server) AddParcelProduct(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var body servers.NewParcelProduct
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := toKernelUUID(body.ProductId)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	attachmentID := kernel.NewUUID()
	cmd, err := commands.NewAddParcelProductCommand(
		attachmentID, parcelID, productID, body.Quantity, body.UnitPrice,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.handlers.AddParcelProduct.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: attachmentID.Bytes()})
}

// GetParcelProducts handles GET /api/v1/parcels/{parcelId}/products.
func (s *Server) GetParcelProducts(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := toKernelUUID(parcelId)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	query, err := queries.NewGetParcelProductsQuery(parcelID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	attachments, err := s.handlers.GetParcelProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.ParcelProduct, len(attachments))
	for i, attachment := range attachments {
		response[i] = servers.ParcelProduct{
			Id:          attachment.ID.Bytes(),
			ParcelId:    attachment.ParcelID.Bytes(),
			ProductId:   attachment.ProductID.Bytes(),
			ProductName: attachment.ProductName,
			Quantity:    attachment.Quantity,
			UnitPrice:   attachment.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RemoveParcelProduct handles DELETE /api/v1/parcels/{parcelId}/products/{attachmentId}.
func (s *Server) RemoveParcelProduct(
	ctx echo.Context, parcelId openapi_types.UUID, attachmentId openapi_types.UUID,
) error {
	if _, err := toKernelUUID(parcelId); err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}
	attachmentID, err := toKernelUUID(attachmentId)
	if err != nil {
		return badRequest(ctx, "Invalid attachment id")
	}

	cmd, err := commands.NewRemoveParcelProductCommand(attachmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.RemoveProduct.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchParcels handles GET /api/v1/parcels/search.
func (s *Server) SearchParcels(ctx echo.Context, params servers.SearchParcelsParams) error {
	page, size := paging(params.Page, params.Size)
	query, err := queries.NewSearchParcelsQuery(params.Q, page, size)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.handlers.SearchParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcels(parcels))
}

// FilterParcels handles GET /api/v1/parcels/filter.
func (s *Server) FilterParcels(ctx echo.Context, params servers.FilterParcelsParams) error {
	var filter queries.ParcelFilter

	if params.Status != nil {
		status, err := parcel.StatusFromString(string(*params.Status))
		if err != nil {
			return badRequest(ctx, "Invalid status: "+err.Error())
		}
		filter.Status = &status
	}
	if params.Priority != nil {
		priority, err := parcel.PriorityFromString(string(*params.Priority))
		if err != nil {
			return badRequest(ctx, "Invalid priority: "+err.Error())
		}
		filter.Priority = &priority
	}
	if params.ZoneId != nil {
		id, err := toKernelUUID(*params.ZoneId)
		if err != nil {
			return badRequest(ctx, "Invalid zone id")
		}
		filter.ZoneID = &id
	}
	if params.CourierId != nil {
		id, err := toKernelUUID(*params.CourierId)
		if err != nil {
			return badRequest(ctx, "Invalid courier id")
		}
		filter.CourierID = &id
	}
	filter.City = params.City

	page, size := paging(params.Page, params.Size)
	query, err := queries.NewFilterParcelsQuery(filter, page, size)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.handlers.FilterParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcels(parcels))
}

// GetParcelsByClient handles GET /api/v1/parcels/by-client/{clientId}.
func (s *Server) GetParcelsByClient(
	ctx echo.Context, clientId openapi_types.UUID, params servers.GetParcelsByClientParams,
) error {
	clientID, err := toKernelUUID(clientId)
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	page, size := paging(params.Page, params.Size)
	query, err := queries.NewGetParcelsByClientQuery(clientID, page, size)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.handlers.GetParcelsByClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcels(parcels))
}

// GetParcelsByRecipient handles GET /api/v1/parcels/by-recipient/{recipientId}.
func (s *Server) GetParcelsByRecipient(
	ctx echo.Context, recipientId openapi_types.UUID, params servers.GetParcelsByRecipientParams,
) error {
	recipientID, err := toKernelUUID(recipientId)
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	page, size := paging(params.Page, params.Size)
	query, err := queries.NewGetParcelsByRecipientQuery(recipientID, page, size)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.handlers.GetParcelsByRecipient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcels(parcels))
}

// GetParcelsByCourier handles GET /api/v1/parcels/by-courier/{courierId}.
func (s *Server) GetParcelsByCourier(
	ctx echo.Context, courierId openapi_types.UUID, params servers.GetParcelsByCourierParams,
) error {
	courierID, err := toKernelUUID(courierId)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	page, size := paging(params.Page, params.Size)
	query, err := queries.NewGetParcelsByCourierQuery(courierID, page, size)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.handlers.GetParcelsByCourier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcels(parcels))
}

// GetOverdueParcels handles GET /api/v1/parcels/overdue.
func (s *Server) GetOverdueParcels(ctx echo.Context) error {
	query, err := queries.NewOverdueParcelsQuery(time.Now().UTC())
	if err != nil {
		return mapError(ctx, err)
	}

	parcels, err := s.handlers.OverdueParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIParcels(parcels))
}

// GetCourierStats handles GET /api/v1/parcels/stats/by-courier.
func (s *Server) GetCourierStats(ctx echo.Context) error {
	stats, err := s.handlers.StatsByCourier.Handle(ctx.Request().Context(), queries.NewStatsByCourierQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.CourierStats, len(stats))
	for i, row := range stats {
		response[i] = servers.CourierStats{
			CourierId:   row.CourierID.Bytes(),
			CourierName: row.CourierName,
			ParcelCount: row.ParcelCount,
			TotalWeight: row.TotalWeight,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetZoneStats handles GET /api/v1/parcels/stats/by-zone.
func (s *Server) GetZoneStats(ctx echo.Context) error {
	stats, err := s.handlers.StatsByZone.Handle(ctx.Request().Context(), queries.NewStatsByZoneQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.ZoneStats, len(stats))
	for i, row := range stats {
		response[i] = servers.ZoneStats{
			ZoneId:      row.ZoneID.Bytes(),
			ZoneName:    row.ZoneName,
			ParcelCount: row.ParcelCount,
			TotalWeight: row.TotalWeight,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterClient handles POST /api/v1/clients.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var body servers.NewClient
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewRegisterClientCommand(clientID, body.Name, body.Email, body.Phone, body.Address)
	if err != nil {
		return badRequest(ctx, "Invalid client data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterClient.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: clientID.Bytes()})
}

// RegisterRecipient handles POST /api/v1/recipients.
func (s *Server) RegisterRecipient(ctx echo.Context) error {
	var body servers.NewRecipient
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRecipientCommand(recipientID, body.Name, body.Phone, body.Address)
	if err != nil {
		return badRequest(ctx, "Invalid recipient data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterRecipient.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: recipientID.Bytes()})
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var body servers.NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(courierID, body.Name, body.Email, body.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterCourier.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: courierID.Bytes()})
}

// RegisterZone handles POST /api/v1/zones.
func (s *Server) RegisterZone(ctx echo.Context) error {
	var body servers.NewZone
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	zoneID := kernel.NewUUID()
	cmd, err := commands.NewRegisterZoneCommand(zoneID, body.Name, description)
	if err != nil {
		return badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterZone.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: zoneID.Bytes()})
}

// RegisterProduct handles POST /api/v1/products.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var body servers.NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProductCommand(productID, body.Name, body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.handlers.RegisterProduct.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: productID.Bytes()})
}

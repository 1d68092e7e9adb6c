package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SamDTech/realtor-api/internal/api/dto"
	"github.com/SamDTech/realtor-api/internal/auth"
	"github.com/SamDTech/realtor-api/internal/domain"
	"github.com/SamDTech/realtor-api/internal/service"
	apperrors "github.com/SamDTech/realtor-api/pkg/util"
)

// HomesHandler exposes the listing CRUD and inquiry endpoints.
type HomesHandler struct {
	homes *service.HomeService
}

// NewHomesHandler constructs handler.
func NewHomesHandler(homeService *service.HomeService) *HomesHandler {
	return &HomesHandler{homes: homeService}
}

// List handles GET /home.
func (h *HomesHandler) List(c *fiber.Ctx) error {
	filter := domain.HomeFilter{}

	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if pt := c.Query("propertyType"); pt != "" {
		parsed, ok := domain.ParsePropertyType(pt)
		if !ok {
			return apperrors.NewValidationError("unknown property type", nil)
		}
		filter.PropertyType = &parsed
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		value, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return apperrors.NewValidationError("minPrice must be a number", nil)
		}
		filter.MinPrice = &value
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		value, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return apperrors.NewValidationError("maxPrice must be a number", nil)
		}
		filter.MaxPrice = &value
	}

	homes, err := h.homes.List(c.Context(), filter)
	if err != nil {
		return err
	}

	resp := make([]dto.HomeResponse, 0, len(homes))
	for _, home := range homes {
		resp = append(resp, dto.NewHomeResponse(home))
	}
	return c.JSON(resp)
}

// Get handles GET /home/:id.
func (h *HomesHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	home, err := h.homes.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewHomeResponse(home))
}

// Create handles POST /home.
func (h *HomesHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateHomeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid payload", details)
	}
	propertyType, ok := domain.ParsePropertyType(req.PropertyType)
	if !ok {
		return apperrors.NewValidationError("unknown property type", nil)
	}

	home := &domain.Home{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		PropertyType:      propertyType,
		NumberOfRooms:     req.NumberOfRooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		LandSize:          req.LandSize,
	}
	for _, url := range req.Images {
		home.Images = append(home.Images, domain.HomeImage{URL: url})
	}

	created, err := h.homes.Create(c.Context(), home, actor.ID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewHomeResponse(created))
}

// Update handles PUT /home/:id.
func (h *HomesHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateHomeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid payload", details)
	}

	update := domain.HomeUpdate{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		NumberOfRooms:     req.NumberOfRooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		LandSize:          req.LandSize,
	}
	if req.PropertyType != nil {
		propertyType, ok := domain.ParsePropertyType(*req.PropertyType)
		if !ok {
			return apperrors.NewValidationError("unknown property type", nil)
		}
		update.PropertyType = &propertyType
	}

	home, err := h.homes.Update(c.Context(), id, update, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewHomeResponse(home))
}

// Delete handles DELETE /home/:id.
func (h *HomesHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.homes.Delete(c.Context(), id, actor.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Inquire handles POST /home/:id/inquire.
func (h *HomesHandler) Inquire(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.InquireRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid payload", details)
	}

	inquiry, err := h.homes.Inquire(c.Context(), id, actor.ID, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewInquiryResponse(inquiry))
}

// ListInquiries handles GET /home/:id/messages.
func (h *HomesHandler) ListInquiries(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	inquiries, err := h.homes.ListInquiries(c.Context(), id, actor.ID)
	if err != nil {
		return err
	}

	resp := make([]dto.InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		resp = append(resp, dto.NewInquiryResponse(inquiry))
	}
	return c.JSON(resp)
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("id must be a positive integer", nil)
	}
	return id, nil
}

package dto

import (
	"time"

	"github.com/SamDTech/realtor-api/internal/domain"
)

// CreateHomeRequest payload for POST /home.
type CreateHomeRequest struct {
	Address           string   `json:"address" validate:"required"`
	City              string   `json:"city" validate:"required"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	PropertyType      string   `json:"propertyType" validate:"required"`
	NumberOfRooms     int      `json:"numberOfRooms" validate:"gte=0"`
	NumberOfBathrooms int      `json:"numberOfBathrooms" validate:"gte=0"`
	LandSize          float64  `json:"landSize" validate:"gte=0"`
	Images            []string `json:"images" validate:"dive,url"`
}

// UpdateHomeRequest payload for PUT /home/:id. Nil fields keep their value.
type UpdateHomeRequest struct {
	Address           *string  `json:"address"`
	City              *string  `json:"city"`
	Price             *float64 `json:"price" validate:"omitempty,gt=0"`
	PropertyType      *string  `json:"propertyType"`
	NumberOfRooms     *int     `json:"numberOfRooms" validate:"omitempty,gte=0"`
	NumberOfBathrooms *int     `json:"numberOfBathrooms" validate:"omitempty,gte=0"`
	LandSize          *float64 `json:"landSize" validate:"omitempty,gte=0"`
}

// InquireRequest payload for POST /home/:id/inquire.
type InquireRequest struct {
	Message string `json:"message" validate:"required"`
}

// HomeResponse shapes a listing for responses; only the first image is sent.
type HomeResponse struct {
	ID                int64     `json:"id"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	Price             float64   `json:"price"`
	PropertyType      string    `json:"propertyType"`
	NumberOfRooms     int       `json:"numberOfRooms"`
	NumberOfBathrooms int       `json:"numberOfBathrooms"`
	LandSize          float64   `json:"landSize"`
	ListedDate        time.Time `json:"listedDate"`
	Image             string    `json:"image,omitempty"`
}

// NewHomeResponse maps a domain listing onto the wire shape.
func NewHomeResponse(home *domain.Home) HomeResponse {
	resp := HomeResponse{
		ID:                home.ID,
		Address:           home.Address,
		City:              home.City,
		Price:             home.Price,
		PropertyType:      string(home.PropertyType),
		NumberOfRooms:     home.NumberOfRooms,
		NumberOfBathrooms: home.NumberOfBathrooms,
		LandSize:          home.LandSize,
		ListedDate:        home.ListedDate,
	}
	if len(home.Images) > 0 {
		resp.Image = home.Images[0].URL
	}
	return resp
}

// InquiryResponse shapes a buyer message for responses.
type InquiryResponse struct {
	ID        int64     `json:"id"`
	HomeID    int64     `json:"homeId"`
	BuyerID   int64     `json:"buyerId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewInquiryResponse maps a domain inquiry onto the wire shape.
func NewInquiryResponse(inquiry *domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        inquiry.ID,
		HomeID:    inquiry.HomeID,
		BuyerID:   inquiry.BuyerID,
		Message:   inquiry.Message,
		CreatedAt: inquiry.CreatedAt,
	}
}

package domain

import "time"

// PropertyType enumerates listing categories.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "RESIDENTIAL"
	PropertyTypeCondo       PropertyType = "CONDO"
)

// ParsePropertyType maps a query/body value onto the closed property type set.
func ParsePropertyType(value string) (PropertyType, bool) {
	switch PropertyType(value) {
	case PropertyTypeResidential, PropertyTypeCondo:
		return PropertyType(value), true
	}
	return "", false
}

// Home is a property listing owned by a realtor.
type Home struct {
	ID                int64
	Address           string
	City              string
	Price             float64
	PropertyType      PropertyType
	NumberOfRooms     int
	NumberOfBathrooms int
	LandSize          float64
	ListedDate        time.Time
	RealtorID         int64
	Images            []HomeImage
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HomeImage is one photo attached to a listing.
type HomeImage struct {
	ID     int64
	HomeID int64
	URL    string
}

// HomeFilter narrows listing searches. Nil fields are ignored.
type HomeFilter struct {
	City         *string
	PropertyType *PropertyType
	MinPrice     *float64
	MaxPrice     *float64
}

// HomeUpdate carries a partial listing update. Nil fields keep their value.
type HomeUpdate struct {
	Address           *string
	City              *string
	Price             *float64
	PropertyType      *PropertyType
	NumberOfRooms     *int
	NumberOfBathrooms *int
	LandSize          *float64
}

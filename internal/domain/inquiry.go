package domain

import "time"

// Inquiry is a buyer message about a listing, addressed to its realtor.
type Inquiry struct {
	ID        int64
	HomeID    int64
	RealtorID int64
	BuyerID   int64
	Message   string
	CreatedAt time.Time
}

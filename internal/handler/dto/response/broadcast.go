package response

import (
	"time"

	"zenithstays/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BroadcastResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customerId"`
	CustomerName string     `json:"customerName"`
	Location     string     `json:"location"`
	CheckInDate  time.Time  `json:"checkInDate"`
	CheckOutDate time.Time  `json:"checkOutDate"`
	Guests       int32      `json:"guests"`
	Pets         bool       `json:"pets"`
	Phone        string     `json:"phone"`
	Status       string     `json:"status"`
	AcceptedBy   *uuid.UUID `json:"acceptedBy,omitempty"`
	AcceptedAt   *time.Time `json:"acceptedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromBroadcastView(view *queries.BroadcastView) (*BroadcastResponse, error) {
	var resp BroadcastResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBroadcastViews(views []*queries.BroadcastView) ([]*BroadcastResponse, error) {
	resps := make([]*BroadcastResponse, 0, len(views))
	for _, view := range views {
		resp, err := FromBroadcastView(view)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}

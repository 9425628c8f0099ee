//go:build unit || e2e

package builder

import (
	"time"

	dombroadcast "zenithstays/internal/domain/broadcast"
	reqdto "zenithstays/internal/handler/dto/request"
	"zenithstays/internal/usecase/queries"

	"github.com/google/uuid"
)

type BroadcastBuilder struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	Location     string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Guests       int
	Pets         bool
	Phone        string
	Status       string
	CreatedAt    time.Time
}

func NewBroadcastBuilder() *BroadcastBuilder {
	now := time.Now().Truncate(time.Second)
	return &BroadcastBuilder{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "wanderer",
		Location:     "Santorini",
		CheckInDate:  now.AddDate(0, 0, 7),
		CheckOutDate: now.AddDate(0, 0, 10),
		Guests:       2,
		Pets:         false,
		Phone:        "+306900000001",
		Status:       string(dombroadcast.StatusOpen),
		CreatedAt:    now,
	}
}

func (b *BroadcastBuilder) With(mutate func(*BroadcastBuilder)) *BroadcastBuilder {
	mutate(b)
	return b
}

func (b *BroadcastBuilder) BuildDomain() (*dombroadcast.Broadcast, error) {
	location, err := dombroadcast.NewLocation(b.Location)
	if err != nil {
		return nil, err
	}
	stay, err := dombroadcast.NewStayWindow(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	guests, err := dombroadcast.NewGuestCount(b.Guests)
	if err != nil {
		return nil, err
	}
	phone, err := dombroadcast.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	return dombroadcast.NewBroadcast(b.CustomerID, location, stay, guests, b.Pets, phone, b.CreatedAt), nil
}

func (b *BroadcastBuilder) BuildCreateRequestDTO() reqdto.CreateBroadcastRequest {
	phone := b.Phone
	return reqdto.CreateBroadcastRequest{
		Location:     b.Location,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Guests:       b.Guests,
		Pets:         b.Pets,
		Phone:        &phone,
	}
}

func (b *BroadcastBuilder) BuildView() *queries.BroadcastView {
	return &queries.BroadcastView{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		Location:     b.Location,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Guests:       int32(b.Guests),
		Pets:         b.Pets,
		Phone:        b.Phone,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BroadcastBuilder) BuildAcceptedView(ownerID uuid.UUID, acceptedAt time.Time) *queries.BroadcastView {
	view := b.BuildView()
	view.Status = string(dombroadcast.StatusAccepted)
	view.AcceptedBy = &ownerID
	view.AcceptedAt = &acceptedAt
	return view
}

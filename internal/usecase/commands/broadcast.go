package commands

import (
	"context"
	"log/slog"
	"time"

	"zenithstays/internal/domain/broadcast"
	reqdto "zenithstays/internal/handler/dto/request"
	"zenithstays/internal/infra"
	"zenithstays/internal/notifier"
	"zenithstays/internal/pkg/clock"
	"zenithstays/internal/pkg/errs"
	"zenithstays/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBroadcastNotFound       = errs.New("broadcast not found")
	ErrBroadcastAlreadyTaken   = errs.New("broadcast already accepted")
	ErrPhoneRequired           = errs.New("phone number required")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// EventNewBroadcastRequest is the room event every matched owner receives.
const EventNewBroadcastRequest = "new_broadcast_request"

// BroadcastEvent is the live-push payload for new_broadcast_request.
type BroadcastEvent struct {
	BroadcastID   uuid.UUID `json:"broadcastId"`
	RequesterID   uuid.UUID `json:"requesterId"`
	RequesterName string    `json:"requesterDisplayName"`
	Location      string    `json:"location"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	Guests        int       `json:"guests"`
	Pets          bool      `json:"pets"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BroadcastCommands interface {
	// Submit persists the request, then fans it out: one live room event per
	// matched owner plus one queued SMS per matched owner with a phone on
	// file. Only the persistence step can fail the call; fan-out problems
	// are logged and the customer still gets their durably recorded request.
	Submit(ctx context.Context, customerID uuid.UUID, req reqdto.CreateBroadcastRequest) (*queries.BroadcastView, error)
	// Accept claims the broadcast for ownerID. Exactly one concurrent caller
	// wins; the rest observe ErrBroadcastAlreadyTaken.
	Accept(ctx context.Context, broadcastID, ownerID uuid.UUID) (*queries.BroadcastView, error)
}

type broadcastCommandsImpl struct {
	repo       BroadcastRepository
	owners     OwnerDirectory
	users      UserReads
	readStore  queries.BroadcastReadStore
	emitter    EventEmitter
	dispatcher notifier.Dispatcher
	clock      clock.Clock
}

func NewBroadcastCommands(
	repo BroadcastRepository,
	owners OwnerDirectory,
	users UserReads,
	readStore queries.BroadcastReadStore,
	emitter EventEmitter,
	dispatcher notifier.Dispatcher,
	clock clock.Clock,
) BroadcastCommands {
	return &broadcastCommandsImpl{
		repo:       repo,
		owners:     owners,
		users:      users,
		readStore:  readStore,
		emitter:    emitter,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

func (c *broadcastCommandsImpl) Submit(
	ctx context.Context,
	customerID uuid.UUID,
	req reqdto.CreateBroadcastRequest,
) (*queries.BroadcastView, error) {
	requester, err := c.users.FindByID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	phone, err := c.resolvePhone(req, requester)
	if err != nil {
		return nil, err
	}

	entity, err := req.ToDomain(customerID, phone, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view := viewFromEntity(entity, requester.Username)

	// Fan-out is best-effort from here on: the request is durable, so a
	// matcher or delivery problem must not fail the submission.
	c.fanOut(ctx, entity, requester)

	return view, nil
}

func (c *broadcastCommandsImpl) resolvePhone(req reqdto.CreateBroadcastRequest, requester *UserSnapshot) (string, error) {
	if p := req.GetPhone(); p != nil {
		return *p, nil
	}
	if requester.Phone != nil && *requester.Phone != "" {
		return *requester.Phone, nil
	}
	return "", ErrPhoneRequired
}

func (c *broadcastCommandsImpl) fanOut(ctx context.Context, entity *broadcast.Broadcast, requester *UserSnapshot) {
	owners, err := c.owners.FindOwnersByLocation(ctx, entity.Location().Value())
	if err != nil {
		slog.Warn("owner matching failed, broadcast stored without fan-out",
			"broadcast_id", entity.ID().String(), "error", err.Error())
		return
	}

	event := BroadcastEvent{
		BroadcastID:   entity.ID(),
		RequesterID:   requester.ID,
		RequesterName: requester.Username,
		Location:      entity.Location().Value(),
		CheckInDate:   entity.Stay().CheckIn(),
		CheckOutDate:  entity.Stay().CheckOut(),
		Guests:        entity.Guests().Value(),
		Pets:          entity.Pets(),
		Phone:         entity.Phone().Value(),
		CreatedAt:     entity.CreatedAt(),
	}

	details := notifier.StayDetails{
		Location:     event.Location,
		CheckInDate:  event.CheckInDate,
		CheckOutDate: event.CheckOutDate,
		Guests:       event.Guests,
	}

	for _, owner := range owners {
		c.emitter.Emit(owner.ID, EventNewBroadcastRequest, event)

		if owner.Phone == nil || *owner.Phone == "" {
			continue
		}
		c.dispatcher.Dispatch(notifier.Owner{
			ID:       owner.ID,
			Username: owner.Username,
			Phone:    *owner.Phone,
		}, details)
	}

	slog.Info("broadcast fanned out",
		"broadcast_id", entity.ID().String(),
		"location", event.Location,
		"matched_owners", len(owners))
}

func (c *broadcastCommandsImpl) Accept(ctx context.Context, broadcastID, ownerID uuid.UUID) (*queries.BroadcastView, error) {
	err := c.repo.AcceptIfOpen(ctx, broadcastID, ownerID, c.clock.Now())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBroadcastNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrBroadcastAlreadyTaken
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	// Read-after-write: return the accepted state from the read store.
	view, err := c.readStore.FindByID(ctx, broadcastID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func viewFromEntity(b *broadcast.Broadcast, customerName string) *queries.BroadcastView {
	return &queries.BroadcastView{
		ID:           b.ID(),
		CustomerID:   b.CustomerID(),
		CustomerName: customerName,
		Location:     b.Location().Value(),
		CheckInDate:  b.Stay().CheckIn(),
		CheckOutDate: b.Stay().CheckOut(),
		Guests:       int32(b.Guests().Value()),
		Pets:         b.Pets(),
		Phone:        b.Phone().Value(),
		Status:       b.Status().String(),
		AcceptedBy:   b.AcceptedBy(),
		AcceptedAt:   b.AcceptedAt(),
		CreatedAt:    b.CreatedAt(),
	}
}

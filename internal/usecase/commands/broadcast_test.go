//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"zenithstays/internal/domain/broadcast"
	"zenithstays/internal/infra"
	"zenithstays/internal/notifier"
	"zenithstays/internal/pkg/clock"
	"zenithstays/internal/usecase/commands"
	"zenithstays/tests/common/builder"
	commandsmock "zenithstays/tests/mock/commands"
	notifiermock "zenithstays/tests/mock/notifier"
	queriesmock "zenithstays/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BroadcastCommandsTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRepo       *commandsmock.MockBroadcastRepository
	mockOwners     *commandsmock.MockOwnerDirectory
	mockUsers      *commandsmock.MockUserReads
	mockReadStore  *queriesmock.MockBroadcastReadStore
	mockEmitter    *commandsmock.MockEventEmitter
	mockDispatcher *notifiermock.MockDispatcher
	clock          *clock.MockClock
	commands       commands.BroadcastCommands
}

func (s *BroadcastCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBroadcastRepository(s.mockCtrl)
	s.mockOwners = commandsmock.NewMockOwnerDirectory(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserReads(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockBroadcastReadStore(s.mockCtrl)
	s.mockEmitter = commandsmock.NewMockEventEmitter(s.mockCtrl)
	s.mockDispatcher = notifiermock.NewMockDispatcher(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.commands = commands.NewBroadcastCommands(
		s.mockRepo,
		s.mockOwners,
		s.mockUsers,
		s.mockReadStore,
		s.mockEmitter,
		s.mockDispatcher,
		s.clock,
	)
}

func (s *BroadcastCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBroadcastCommandsSuite(t *testing.T) {
	suite.Run(t, new(BroadcastCommandsTestSuite))
}

func strPtr(s string) *string { return &s }

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BroadcastCommandsTestSuite) TestSubmit() {
	customer := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
		u.Username = "wanderer"
		u.Role = "customer"
	})
	req := builder.NewBroadcastBuilder().BuildCreateRequestDTO()
	ctx := context.Background()

	s.Run("success: stores, emits to every matched owner, queues SMS for those with phones", func() {
		ownerWithPhone := commands.OwnerContact{ID: uuid.New(), Username: "host-a", Phone: strPtr("+30111")}
		ownerNoPhone := commands.OwnerContact{ID: uuid.New(), Username: "host-b"}

		s.mockUsers.EXPECT().FindByID(ctx, customer.ID).Return(customer.BuildSnapshot(), nil)
		s.mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		s.mockOwners.EXPECT().FindOwnersByLocation(ctx, req.Location).
			Return([]commands.OwnerContact{ownerWithPhone, ownerNoPhone}, nil)

		s.mockEmitter.EXPECT().Emit(ownerWithPhone.ID, commands.EventNewBroadcastRequest, gomock.Any())
		s.mockEmitter.EXPECT().Emit(ownerNoPhone.ID, commands.EventNewBroadcastRequest, gomock.Any()).
			Do(func(_ uuid.UUID, _ string, payload any) {
				event, ok := payload.(commands.BroadcastEvent)
				s.Require().True(ok)
				s.Equal("wanderer", event.RequesterName)
				s.Equal(req.Location, event.Location)
				s.Equal(req.Guests, event.Guests)
			})
		// Only the owner with a phone reaches the SMS queue.
		s.mockDispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Do(func(owner notifier.Owner, details notifier.StayDetails) {
				s.Equal(ownerWithPhone.ID, owner.ID)
				s.Equal("+30111", owner.Phone)
				s.Equal(req.Location, details.Location)
			}).Times(1)

		view, err := s.commands.Submit(ctx, customer.ID, req)
		s.Require().NoError(err)
		s.Require().NotNil(view)
		s.Equal("open", view.Status)
		s.Equal(customer.ID, view.CustomerID)
		s.Equal("wanderer", view.CustomerName)
		s.Equal(s.clock.Now(), view.CreatedAt)
	})

	s.Run("success: request without phone falls back to profile phone", func() {
		noPhoneReq := req
		noPhoneReq.Phone = nil

		s.mockUsers.EXPECT().FindByID(ctx, customer.ID).Return(customer.BuildSnapshot(), nil)
		s.mockRepo.EXPECT().Create(ctx, gomock.Any()).
			Do(func(_ context.Context, b *broadcast.Broadcast) {
				s.Equal(*customer.Phone, b.Phone().Value())
			}).Return(nil)
		s.mockOwners.EXPECT().FindOwnersByLocation(ctx, noPhoneReq.Location).
			Return([]commands.OwnerContact{}, nil)

		view, err := s.commands.Submit(ctx, customer.ID, noPhoneReq)
		s.Require().NoError(err)
		s.Equal(*customer.Phone, view.Phone)
	})

	s.Run("error: no phone anywhere", func() {
		noPhone := builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.Phone = nil })
		noPhoneReq := req
		noPhoneReq.Phone = nil

		s.mockUsers.EXPECT().FindByID(ctx, noPhone.ID).Return(noPhone.BuildSnapshot(), nil)

		_, err := s.commands.Submit(ctx, noPhone.ID, noPhoneReq)
		s.Require().ErrorIs(err, commands.ErrPhoneRequired)
	})

	s.Run("error: domain validation failure does not reach the repository", func() {
		badReq := req
		badReq.Guests = 0

		s.mockUsers.EXPECT().FindByID(ctx, customer.ID).Return(customer.BuildSnapshot(), nil)

		_, err := s.commands.Submit(ctx, customer.ID, badReq)
		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: persistence failure fails the submission", func() {
		s.mockUsers.EXPECT().FindByID(ctx, customer.ID).Return(customer.BuildSnapshot(), nil)
		s.mockRepo.EXPECT().Create(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", errors.New("connection reset")))

		_, err := s.commands.Submit(ctx, customer.ID, req)
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("matcher failure is swallowed, submission still succeeds", func() {
		s.mockUsers.EXPECT().FindByID(ctx, customer.ID).Return(customer.BuildSnapshot(), nil)
		s.mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		s.mockOwners.EXPECT().FindOwnersByLocation(ctx, req.Location).
			Return(nil, errors.New("matcher down"))

		view, err := s.commands.Submit(ctx, customer.ID, req)
		s.Require().NoError(err)
		s.NotNil(view)
	})
}

// ================================================================================
// TestAccept
// ================================================================================

func (s *BroadcastCommandsTestSuite) TestAccept() {
	ctx := context.Background()
	broadcastID := uuid.New()
	ownerID := uuid.New()

	s.Run("success: conditional update wins and accepted view is returned", func() {
		acceptedView := builder.NewBroadcastBuilder().BuildAcceptedView(ownerID, s.clock.Now())

		s.mockRepo.EXPECT().AcceptIfOpen(ctx, broadcastID, ownerID, s.clock.Now()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(ctx, broadcastID).Return(acceptedView, nil)

		view, err := s.commands.Accept(ctx, broadcastID, ownerID)
		s.Require().NoError(err)
		s.Equal("accepted", view.Status)
		s.Require().NotNil(view.AcceptedBy)
		s.Equal(ownerID, *view.AcceptedBy)
	})

	s.Run("error: unknown broadcast", func() {
		s.mockRepo.EXPECT().AcceptIfOpen(ctx, broadcastID, ownerID, s.clock.Now()).
			Return(infra.WrapRepoErr("broadcast not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Accept(ctx, broadcastID, ownerID)
		s.Require().ErrorIs(err, commands.ErrBroadcastNotFound)
	})

	s.Run("error: already claimed by another owner", func() {
		s.mockRepo.EXPECT().AcceptIfOpen(ctx, broadcastID, ownerID, s.clock.Now()).
			Return(infra.WrapRepoErr("broadcast already accepted", errors.New("conflict"), infra.KindConflict))

		_, err := s.commands.Accept(ctx, broadcastID, ownerID)
		s.Require().ErrorIs(err, commands.ErrBroadcastAlreadyTaken)
	})

	s.Run("error: database failure", func() {
		s.mockRepo.EXPECT().AcceptIfOpen(ctx, broadcastID, ownerID, s.clock.Now()).
			Return(infra.WrapRepoErr("update failed", errors.New("connection reset")))

		_, err := s.commands.Accept(ctx, broadcastID, ownerID)
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"zenithstays/internal/infra"
	"zenithstays/internal/pkg/jwt"
	"zenithstays/internal/pkg/password"
	"zenithstays/internal/usecase/commands"
	"zenithstays/tests/common/builder"
	commandsmock "zenithstays/tests/mock/commands"
	queriesmock "zenithstays/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUsers    *queriesmock.MockUserReadStore
	mockUserRepo *commandsmock.MockUserRepository
	commands     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.mockUserRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	jwtService := jwt.NewService("test-secret-key-for-unit-tests", time.Hour)
	s.commands = commands.NewAuthCommands(s.mockUsers, s.mockUserRepo, jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	u := builder.NewUserBuilder()
	req := u.BuildLoginRequestDTO()
	hash, err := password.Hash(u.Password)
	s.Require().NoError(err)

	s.Run("success: valid credentials yield a token and the user view", func() {
		s.mockUsers.EXPECT().FindByEmail(ctx, u.Email).Return(u.BuildView(), hash, nil)

		result, loginErr := s.commands.Login(ctx, req)
		s.Require().NoError(loginErr)
		s.NotEmpty(result.AccessToken)
		s.Equal(u.Email, result.User.Email)
	})

	s.Run("error: unknown email maps to invalid credentials", func() {
		s.mockUsers.EXPECT().FindByEmail(ctx, u.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound))

		_, loginErr := s.commands.Login(ctx, req)
		s.Require().ErrorIs(loginErr, commands.ErrInvalidCredentials)
	})

	s.Run("error: wrong password maps to invalid credentials", func() {
		wrongHash, hashErr := password.Hash("a-different-password")
		s.Require().NoError(hashErr)
		s.mockUsers.EXPECT().FindByEmail(ctx, u.Email).Return(u.BuildView(), wrongHash, nil)

		_, loginErr := s.commands.Login(ctx, req)
		s.Require().ErrorIs(loginErr, commands.ErrInvalidCredentials)
	})

	s.Run("error: inactive account is rejected before the password check", func() {
		inactive := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.IsActive = false })
		s.mockUsers.EXPECT().FindByEmail(ctx, u.Email).Return(inactive.BuildView(), hash, nil)

		_, loginErr := s.commands.Login(ctx, req)
		s.Require().ErrorIs(loginErr, commands.ErrUserInactive)
	})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()
	u := builder.NewUserBuilder()
	req := u.BuildRegisterRequestDTO()

	s.Run("success: creates the user and returns a session", func() {
		s.mockUserRepo.EXPECT().
			Create(ctx, u.Username, u.Email, gomock.Any(), u.Role, u.Phone).
			Return(u.ID, nil)
		s.mockUsers.EXPECT().FindByID(ctx, u.ID).Return(u.BuildView(), nil)

		result, err := s.commands.Register(ctx, req)
		s.Require().NoError(err)
		s.NotEmpty(result.AccessToken)
		s.Equal(u.ID, result.User.ID)
	})

	s.Run("success: blank role defaults to customer", func() {
		blankRole := req
		blankRole.Role = ""

		s.mockUserRepo.EXPECT().
			Create(ctx, u.Username, u.Email, gomock.Any(), "customer", u.Phone).
			Return(u.ID, nil)
		s.mockUsers.EXPECT().FindByID(ctx, u.ID).Return(u.BuildView(), nil)

		_, err := s.commands.Register(ctx, blankRole)
		s.Require().NoError(err)
	})

	s.Run("error: duplicate email", func() {
		s.mockUserRepo.EXPECT().
			Create(ctx, u.Username, u.Email, gomock.Any(), u.Role, u.Phone).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate email", errors.New("23505"), infra.KindDuplicateKey))

		_, err := s.commands.Register(ctx, req)
		s.Require().ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("error: blank username", func() {
		blank := req
		blank.Username = "   "

		_, err := s.commands.Register(ctx, blank)
		s.Require().ErrorIs(err, commands.ErrAuthenticationFailed)
	})
}

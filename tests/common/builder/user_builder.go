//go:build unit || e2e

package builder

import (
	reqdto "zenithstays/internal/handler/dto/request"
	"zenithstays/internal/usecase/commands"
	"zenithstays/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string
	Role     string
	Phone    *string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	phone := "+306900000099"
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "host",
		Email:    "host@example.com",
		Password: "password123",
		Role:     "owner",
		Phone:    &phone,
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Phone:    u.Phone,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Phone:    u.Phone,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
		Phone:    u.Phone,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

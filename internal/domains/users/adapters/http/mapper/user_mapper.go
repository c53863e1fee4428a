package mapper

import (
	usersdomain "github.com/amrutdhara/orders-api/internal/domains/users/domain"
	usersports "github.com/amrutdhara/orders-api/internal/domains/users/ports"
)

// LoginRequest is the transport shape for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the transport representation of an account.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// SessionResponse carries the issued token plus the signed-in user.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromDomainUser converts a domain user to the transport representation.
// The password never crosses this boundary.
func FromDomainUser(user *usersdomain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		CompanyName: user.CompanyName,
		Phone:       user.Phone,
	}
}

// FromSession converts an issued session to the transport representation.
func FromSession(session *usersports.Session) SessionResponse {
	if session == nil {
		return SessionResponse{}
	}
	return SessionResponse{
		Token: session.Token,
		User:  FromDomainUser(session.User),
	}
}

package models

import (
	"errors"
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

var (
	// ErrInvalidRole возвращается при некорректной роли
	ErrInvalidRole = errors.New("invalid user role")
)

// Request модели

// RegisterUserRequest запрос на регистрацию пользователя
type RegisterUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"` // По умолчанию client
}

// Response модели

// UserResponse ответ с данными пользователя (без хэша пароля)
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
// Хэш пароля наружу не отдаётся
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	if users == nil {
		return &UserListResponse{
			Users: []UserResponse{},
		}
	}

	resp := &UserListResponse{
		Users: make([]UserResponse, len(users)),
	}

	for i, user := range users {
		if userResp := FromDomainUser(user); userResp != nil {
			resp.Users[i] = *userResp
		}
	}

	return resp
}

// ToDomainUserRole конвертирует строку в domain.UserRole с валидацией
func ToDomainUserRole(role string) (domain.UserRole, error) {
	r := domain.UserRole(role)

	switch r {
	case domain.RoleClient, domain.RolePromoter, domain.RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

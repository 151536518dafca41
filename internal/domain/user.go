package domain

import "time"

const (
	RoleDriver = "motorista"
	RoleOwner  = "proprietario"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	Role           string
	TelegramChatID *int64
}

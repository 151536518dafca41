package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Phone          string `json:"phone"`
	Role           string `json:"role" binding:"omitempty,oneof=motorista proprietario"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequest struct {
	FacilityID string `json:"estacionamento_id" binding:"required,uuid"`
	SpotNumber string `json:"spot_number" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
}

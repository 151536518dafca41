package dto

import (
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"gopkg.in/guregu/null.v4"
)

type BookingResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	FacilityID  string  `json:"estacionamento_id"`
	SpotNumber  string  `json:"spot_number"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ExpiresAt   string  `json:"expires_at"`
	AcceptedAt  *string `json:"accepted_at,omitempty"`
	RejectedAt  *string `json:"rejected_at,omitempty"`
	ArrivalOwn  *string `json:"arrival_owner_at,omitempty"`
	ArrivalUser *string `json:"arrival_user_at,omitempty"`
	DepartOwn   *string `json:"departure_owner_at,omitempty"`
	DepartUser  *string `json:"departure_user_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

type ConfirmationResponse struct {
	Status   string `json:"status"`
	Advanced bool   `json:"phase_advanced"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type FacilityResponse struct {
	ID             string  `json:"id"`
	OwnerID        string  `json:"owner_id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	OpensAt        string  `json:"opens_at"`
	ClosesAt       string  `json:"closes_at"`
	PricePerHour   float64 `json:"price_per_hour"`
	ReservationTTL string  `json:"reservation_ttl"`
}

type SpotResponse struct {
	ID         string  `json:"id"`
	FacilityID string  `json:"estacionamento_id"`
	Number     string  `json:"number"`
	Status     string  `json:"status"`
	BookingID  *string `json:"booking_id,omitempty"`
}

type NotificationResponse struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	BookingID  *string `json:"booking_id,omitempty"`
	FacilityID *string `json:"estacionamento_id,omitempty"`
	Read       bool    `json:"read"`
	CreatedAt  string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		FacilityID:  b.FacilityID,
		SpotNumber:  b.SpotNumber,
		Date:        b.Date.Format("2006-01-02"),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Price:       b.Price,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   b.ExpiresAt.Format(time.RFC3339),
		AcceptedAt:  formatNullTime(b.AcceptedAt),
		RejectedAt:  formatNullTime(b.RejectedAt),
		ArrivalOwn:  formatNullTime(b.ArrivalOwner),
		ArrivalUser: formatNullTime(b.ArrivalUser),
		DepartOwn:   formatNullTime(b.DepartOwner),
		DepartUser:  formatNullTime(b.DepartUser),
		CompletedAt: formatNullTime(b.CompletedAt),
		CancelledAt: formatNullTime(b.CancelledAt),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToFacilityResponse(f *domain.Facility) FacilityResponse {
	return FacilityResponse{
		ID:             f.ID,
		OwnerID:        f.OwnerID,
		Name:           f.Name,
		Address:        f.Address,
		OpensAt:        f.OpensAt,
		ClosesAt:       f.ClosesAt,
		PricePerHour:   f.PricePerHour,
		ReservationTTL: f.ReservationTTL.String(),
	}
}

func ToSpotResponse(s *domain.Spot) SpotResponse {
	return SpotResponse{
		ID:         s.ID,
		FacilityID: s.FacilityID,
		Number:     s.Number,
		Status:     string(s.Status),
		BookingID:  nullStringPtr(s.BookingID),
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		BookingID:  nullStringPtr(n.BookingID),
		FacilityID: nullStringPtr(n.FacilityID),
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}

func formatNullTime(t null.Time) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(time.RFC3339)
	return &s
}

func nullStringPtr(s null.String) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

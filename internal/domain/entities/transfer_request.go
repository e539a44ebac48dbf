package entities

import "time"

type TransferRequestStatus string

const (
	TransferRequestPending   TransferRequestStatus = "pending"
	TransferRequestConfirmed TransferRequestStatus = "confirmed"
	TransferRequestCancelled TransferRequestStatus = "cancelled"
)

// TransferRequest is a student's request to pay a course by bank transfer.
// The docente confirms it manually once the money arrived.
type TransferRequest struct {
	ID          string                `json:"id"`
	UserID      string                `json:"user_id"`
	UserName    string                `json:"user_name"`
	UserPhone   string                `json:"user_phone"`
	CourseID    string                `json:"course_id"`
	CourseTitle string                `json:"course_title"`
	Status      TransferRequestStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

package entities

import "time"

// Course is a sellable course of the catalog.
//
// Storage model (DynamoDB):
//   - PK: id
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Order       int       `json:"order"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Lesson belongs to a course.
//
// Storage model (DynamoDB):
//   - PK: course_id
//   - SK: id
//
// Order is nil until the docente saves a reordering; unordered lessons are
// listed after the ordered ones.
type Lesson struct {
	ID                 string    `json:"id"`
	CourseID           string    `json:"course_id"`
	Title              string    `json:"title"`
	TextContent        string    `json:"text_content,omitempty"`
	VideoURL           string    `json:"video_url"`
	SupportMaterialURL string    `json:"support_material_url,omitempty"`
	Order              *int      `json:"order,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// LessonOrder is one (lesson, position) pair of a reorder batch.
type LessonOrder struct {
	LessonID string `json:"lesson_id"`
	Order    int    `json:"order"`
}

// CourseProgress tracks the lessons a student marked as seen.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - SK: course_id
type CourseProgress struct {
	UserID           string   `json:"user_id"`
	CourseID         string   `json:"course_id"`
	CompletedLessons []string `json:"completed_lessons"`
}

// UploadURL is a presigned direct-to-storage upload target.
type UploadURL struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

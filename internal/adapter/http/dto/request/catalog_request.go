package request

import (
	"strings"

	"academia_bere/internal/domain/entities"
)

type CourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
}

type LessonRequest struct {
	Title              string `json:"title" binding:"required"`
	TextContent        string `json:"textContent"`
	VideoURL           string `json:"videoUrl" binding:"required"`
	SupportMaterialURL string `json:"supportMaterialUrl"`
}

type LessonOrderRequest struct {
	LessonID string `json:"lessonId"`
	Order    int    `json:"order"`
}

// ReorderLessonsRequest is the drag-and-drop result: the full
// (lessonId, order) list of a course.
type ReorderLessonsRequest struct {
	Updates []LessonOrderRequest `json:"updates" binding:"required"`
}

func (r ReorderLessonsRequest) ToLessonOrders() []entities.LessonOrder {
	out := make([]entities.LessonOrder, 0, len(r.Updates))
	for _, u := range r.Updates {
		out = append(out, entities.LessonOrder{LessonID: strings.TrimSpace(u.LessonID), Order: u.Order})
	}
	return out
}

type PresignUploadRequest struct {
	Kind        string `json:"kind" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type CreateCouponRequest struct {
	Code               string `json:"code" binding:"required"`
	DiscountPercentage int    `json:"discountPercentage" binding:"required"`
}

type SetCouponActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

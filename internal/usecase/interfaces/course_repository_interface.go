package interfaces

import (
	"context"

	"academia_bere/internal/domain/entities"
)

// ICourseRepository abstracts DynamoDB persistence for the catalog.
type ICourseRepository interface {
	Create(ctx context.Context, c entities.Course) (entities.Course, error)
	GetByID(ctx context.Context, id string) (entities.Course, error)
	List(ctx context.Context) ([]entities.Course, error)
	Update(ctx context.Context, c entities.Course) (entities.Course, error)
}

// ILessonRepository abstracts DynamoDB persistence for the lessons of a course.
type ILessonRepository interface {
	Create(ctx context.Context, l entities.Lesson) (entities.Lesson, error)
	ListByCourseID(ctx context.Context, courseID string) ([]entities.Lesson, error)
	// UpdateOrders writes every order in one transaction. applied is false,
	// and nothing is written, when any lesson of the batch does not exist.
	UpdateOrders(ctx context.Context, courseID string, updates []entities.LessonOrder) (applied bool, err error)
}

// IProgressRepository stores the lessons a student completed.
type IProgressRepository interface {
	AddCompletedLesson(ctx context.Context, userID, courseID, lessonID string) error
	Get(ctx context.Context, userID, courseID string) (entities.CourseProgress, error)
}

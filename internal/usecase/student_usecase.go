package usecase

import (
	"context"
	"strings"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"
)

// IStudentUseCase is the student area: enrolled courses and lesson progress.
type IStudentUseCase interface {
	MyCourses(ctx context.Context, identity *entities.Identity) ([]entities.Course, error)
	CompleteLesson(ctx context.Context, identity *entities.Identity, courseID, lessonID string) (entities.CourseProgress, error)
	Progress(ctx context.Context, identity *entities.Identity, courseID string) (entities.CourseProgress, error)
}

type StudentUseCase struct {
	users    interfaces.IUserRepository
	courses  ICourseUseCase
	lessons  interfaces.ILessonRepository
	progress interfaces.IProgressRepository
}

var _ IStudentUseCase = (*StudentUseCase)(nil)

func NewStudentUseCase(users interfaces.IUserRepository, courses ICourseUseCase, lessons interfaces.ILessonRepository, progress interfaces.IProgressRepository) *StudentUseCase {
	return &StudentUseCase{users: users, courses: courses, lessons: lessons, progress: progress}
}

// MyCourses lists the catalog courses the caller is enrolled in, in catalog
// order. Enrollments pointing at deleted courses are skipped.
func (u *StudentUseCase) MyCourses(ctx context.Context, identity *entities.Identity) ([]entities.Course, error) {
	user, err := u.currentUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	if len(user.CursosInscritos) == 0 {
		return []entities.Course{}, nil
	}
	catalog, err := u.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Course, 0, len(user.CursosInscritos))
	for _, c := range catalog {
		if user.IsEnrolled(c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *StudentUseCase) CompleteLesson(ctx context.Context, identity *entities.Identity, courseID, lessonID string) (entities.CourseProgress, error) {
	courseID, lessonID = strings.TrimSpace(courseID), strings.TrimSpace(lessonID)
	if courseID == "" {
		return entities.CourseProgress{}, ErrInvalidCourseID
	}
	if lessonID == "" {
		return entities.CourseProgress{}, ErrLessonNotFound
	}
	if err := u.requireEnrollment(ctx, identity, courseID); err != nil {
		return entities.CourseProgress{}, err
	}

	lessons, err := u.lessons.ListByCourseID(ctx, courseID)
	if err != nil {
		return entities.CourseProgress{}, err
	}
	found := false
	for _, l := range lessons {
		if l.ID == lessonID {
			found = true
			break
		}
	}
	if !found {
		return entities.CourseProgress{}, ErrLessonNotFound
	}

	if err := u.progress.AddCompletedLesson(ctx, identity.UID, courseID, lessonID); err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("user_id", identity.UID).Str("course_id", courseID).Str("lesson_id", lessonID).Msg("[student][usecase] failed saving progress")
		return entities.CourseProgress{}, err
	}
	return u.progress.Get(ctx, identity.UID, courseID)
}

func (u *StudentUseCase) Progress(ctx context.Context, identity *entities.Identity, courseID string) (entities.CourseProgress, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return entities.CourseProgress{}, ErrInvalidCourseID
	}
	if err := u.requireEnrollment(ctx, identity, courseID); err != nil {
		return entities.CourseProgress{}, err
	}
	p, err := u.progress.Get(ctx, identity.UID, courseID)
	if err != nil {
		return entities.CourseProgress{}, err
	}
	p.UserID, p.CourseID = identity.UID, courseID
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	return p, nil
}

func (u *StudentUseCase) requireEnrollment(ctx context.Context, identity *entities.Identity, courseID string) error {
	user, err := u.currentUser(ctx, identity)
	if err != nil {
		return err
	}
	if !user.IsEnrolled(courseID) {
		return ErrNotEnrolled
	}
	return nil
}

func (u *StudentUseCase) currentUser(ctx context.Context, identity *entities.Identity) (entities.User, error) {
	if err := requireIdentity(identity); err != nil {
		return entities.User{}, err
	}
	user, err := u.users.GetByID(ctx, identity.UID)
	if err != nil {
		return entities.User{}, err
	}
	if user.UID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

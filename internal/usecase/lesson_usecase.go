package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/google/uuid"
)

// MaxReorderBatch is the largest reorder applied in one transaction.
const MaxReorderBatch = 100

var (
	ErrInvalidLesson      = errors.New("lesson title and video url are required")
	ErrInvalidLessonOrder = errors.New("invalid lesson order batch")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrInvalidUpload      = errors.New("invalid upload request")
	ErrStorageNotSet      = errors.New("object storage not configured")
)

// UploadKind selects the folder of a lesson asset.
type UploadKind string

const (
	UploadKindVideo   UploadKind = "video"
	UploadKindSupport UploadKind = "support"
)

type LessonInput struct {
	Title              string
	TextContent        string
	VideoURL           string
	SupportMaterialURL string
}

type ILessonUseCase interface {
	Create(ctx context.Context, identity *entities.Identity, courseID string, in LessonInput) (entities.Lesson, error)
	List(ctx context.Context, identity *entities.Identity, courseID string) ([]entities.Lesson, error)
	Reorder(ctx context.Context, identity *entities.Identity, courseID string, updates []entities.LessonOrder) error
	PresignUpload(ctx context.Context, identity *entities.Identity, courseID string, kind UploadKind, fileName, contentType string) (entities.UploadURL, error)
}

type LessonUseCase struct {
	lessons interfaces.ILessonRepository
	courses interfaces.ICourseRepository
	users   interfaces.IUserRepository
	storage interfaces.IObjectStorage
}

var _ ILessonUseCase = (*LessonUseCase)(nil)

func NewLessonUseCase(lessons interfaces.ILessonRepository, courses interfaces.ICourseRepository, users interfaces.IUserRepository, storage interfaces.IObjectStorage) *LessonUseCase {
	return &LessonUseCase{lessons: lessons, courses: courses, users: users, storage: storage}
}

func (u *LessonUseCase) Create(ctx context.Context, identity *entities.Identity, courseID string, in LessonInput) (entities.Lesson, error) {
	if err := requireDocente(identity); err != nil {
		return entities.Lesson{}, err
	}
	if err := u.ensureCourse(ctx, courseID); err != nil {
		return entities.Lesson{}, err
	}
	title := strings.TrimSpace(in.Title)
	videoURL := strings.TrimSpace(in.VideoURL)
	if title == "" || videoURL == "" {
		return entities.Lesson{}, ErrInvalidLesson
	}

	l := entities.Lesson{
		ID:                 uuid.NewString(),
		CourseID:           strings.TrimSpace(courseID),
		Title:              title,
		TextContent:        strings.TrimSpace(in.TextContent),
		VideoURL:           videoURL,
		SupportMaterialURL: strings.TrimSpace(in.SupportMaterialURL),
		CreatedAt:          time.Now().UTC(),
	}
	created, err := u.lessons.Create(ctx, l)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("course_id", l.CourseID).Msg("[lesson][usecase] failed creating lesson")
		return entities.Lesson{}, err
	}
	return created, nil
}

// List returns the lessons of a course to the docente or to an enrolled
// student, in display order.
func (u *LessonUseCase) List(ctx context.Context, identity *entities.Identity, courseID string) ([]entities.Lesson, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, ErrInvalidCourseID
	}
	if !identity.IsDocente() {
		user, err := u.users.GetByID(ctx, identity.UID)
		if err != nil {
			return nil, err
		}
		if !user.IsEnrolled(courseID) {
			return nil, ErrNotEnrolled
		}
	}

	lessons, err := u.lessons.ListByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	SortLessons(lessons)
	return lessons, nil
}

// Reorder persists a drag-and-drop reordering. The whole batch is validated
// before anything is written and is then applied atomically.
func (u *LessonUseCase) Reorder(ctx context.Context, identity *entities.Identity, courseID string, updates []entities.LessonOrder) error {
	if err := requireDocente(identity); err != nil {
		return err
	}
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return ErrInvalidCourseID
	}
	if err := validateLessonOrders(updates); err != nil {
		return err
	}

	applied, err := u.lessons.UpdateOrders(ctx, courseID, updates)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("course_id", courseID).Int("updates", len(updates)).Msg("[lesson][usecase] reorder failed")
		return err
	}
	if !applied {
		return ErrLessonNotFound
	}
	logger.WithContext(ctx).Info().Str("course_id", courseID).Int("updates", len(updates)).Msg("[lesson][usecase] lessons reordered")
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// PresignUpload returns a direct upload URL under courses/{id}/videos or
// courses/{id}/support.
func (u *LessonUseCase) PresignUpload(ctx context.Context, identity *entities.Identity, courseID string, kind UploadKind, fileName, contentType string) (entities.UploadURL, error) {
	if err := requireDocente(identity); err != nil {
		return entities.UploadURL{}, err
	}
	if u.storage == nil {
		return entities.UploadURL{}, ErrStorageNotSet
	}
	if err := u.ensureCourse(ctx, courseID); err != nil {
		return entities.UploadURL{}, err
	}

	var folder string
	switch kind {
	case UploadKindVideo:
		folder = "videos"
	case UploadKindSupport:
		folder = "support"
	default:
		return entities.UploadURL{}, ErrInvalidUpload
	}
	name := unsafeFileChars.ReplaceAllString(path.Base(strings.TrimSpace(fileName)), "_")
	if name == "" || name == "." || name == "_" || strings.TrimSpace(contentType) == "" {
		return entities.UploadURL{}, ErrInvalidUpload
	}

	key := fmt.Sprintf("courses/%s/%s/%d_%s", strings.TrimSpace(courseID), folder, time.Now().UnixMilli(), name)
	return u.storage.PresignUpload(ctx, key, contentType)
}

func (u *LessonUseCase) ensureCourse(ctx context.Context, courseID string) error {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return ErrInvalidCourseID
	}
	c, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCourseNotFound
	}
	return nil
}

func validateLessonOrders(updates []entities.LessonOrder) error {
	if len(updates) == 0 || len(updates) > MaxReorderBatch {
		return ErrInvalidLessonOrder
	}
	seen := make(map[string]struct{}, len(updates))
	for _, upd := range updates {
		id := strings.TrimSpace(upd.LessonID)
		if id == "" || upd.Order < 1 {
			return ErrInvalidLessonOrder
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidLessonOrder
		}
		seen[id] = struct{}{}
	}
	return nil
}

// SortLessons orders lessons by their explicit order, placing lessons without
// one after all ordered lessons. Ties fall back to creation time.
func SortLessons(lessons []entities.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		a, b := lessons[i], lessons[j]
		switch {
		case a.Order != nil && b.Order != nil && *a.Order != *b.Order:
			return *a.Order < *b.Order
		case a.Order != nil && b.Order == nil:
			return true
		case a.Order == nil && b.Order != nil:
			return false
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

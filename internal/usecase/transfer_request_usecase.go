package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/infrastructure/metrics"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrTransferRequestNotFound   = errors.New("transfer request not found")
	ErrTransferRequestNotPending = errors.New("transfer request is not pending")
	ErrInvalidTransferRequest    = errors.New("name and phone are required")
	ErrInvalidStatusFilter       = errors.New("invalid status filter")
)

type TransferRequestInput struct {
	CourseID  string
	UserName  string
	UserPhone string
}

// ITransferRequestUseCase is the manual bank-transfer enrollment workflow.
type ITransferRequestUseCase interface {
	Create(ctx context.Context, identity *entities.Identity, in TransferRequestInput) (entities.TransferRequest, error)
	List(ctx context.Context, identity *entities.Identity, status entities.TransferRequestStatus) ([]entities.TransferRequest, error)
	Confirm(ctx context.Context, identity *entities.Identity, id string) (entities.TransferRequest, error)
	Cancel(ctx context.Context, identity *entities.Identity, id string) (entities.TransferRequest, error)
}

type TransferRequestUseCase struct {
	repo     interfaces.ITransferRequestRepository
	courses  interfaces.ICourseRepository
	users    interfaces.IUserRepository
	notifier interfaces.INotifier
}

var _ ITransferRequestUseCase = (*TransferRequestUseCase)(nil)

func NewTransferRequestUseCase(repo interfaces.ITransferRequestRepository, courses interfaces.ICourseRepository, users interfaces.IUserRepository, notifier interfaces.INotifier) *TransferRequestUseCase {
	return &TransferRequestUseCase{repo: repo, courses: courses, users: users, notifier: notifier}
}

func (u *TransferRequestUseCase) Create(ctx context.Context, identity *entities.Identity, in TransferRequestInput) (entities.TransferRequest, error) {
	if err := requireIdentity(identity); err != nil {
		return entities.TransferRequest{}, err
	}
	courseID := strings.TrimSpace(in.CourseID)
	if courseID == "" {
		return entities.TransferRequest{}, ErrInvalidCourseID
	}
	name, phone := strings.TrimSpace(in.UserName), strings.TrimSpace(in.UserPhone)
	if name == "" || phone == "" {
		return entities.TransferRequest{}, ErrInvalidTransferRequest
	}
	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		return entities.TransferRequest{}, err
	}
	if course.ID == "" {
		return entities.TransferRequest{}, ErrCourseNotFound
	}

	r := entities.TransferRequest{
		ID:          uuid.NewString(),
		UserID:      identity.UID,
		UserName:    name,
		UserPhone:   phone,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Status:      entities.TransferRequestPending,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("user_id", r.UserID).Str("course_id", r.CourseID).Msg("[transfer][usecase] failed creating request")
		return entities.TransferRequest{}, err
	}

	// Best effort: the request is already stored and visible in the back-office.
	if u.notifier != nil {
		if err := u.notifier.NotifyTransferRequest(ctx, created); err != nil {
			logger.WithContext(ctx).Warn().Err(err).Str("transfer_request_id", created.ID).Msg("[transfer][usecase] admin notification failed")
		}
	}
	return created, nil
}

// List returns requests newest first. An empty status returns all of them.
func (u *TransferRequestUseCase) List(ctx context.Context, identity *entities.Identity, status entities.TransferRequestStatus) ([]entities.TransferRequest, error) {
	if err := requireDocente(identity); err != nil {
		return nil, err
	}
	switch status {
	case "", entities.TransferRequestPending, entities.TransferRequestConfirmed, entities.TransferRequestCancelled:
	default:
		return nil, ErrInvalidStatusFilter
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.TransferRequest, 0, len(all))
	for _, r := range all {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Confirm grants the course and then marks the request confirmed. The grant is
// a set union, so a confirm retried after a failed status write is harmless.
func (u *TransferRequestUseCase) Confirm(ctx context.Context, identity *entities.Identity, id string) (entities.TransferRequest, error) {
	if err := requireDocente(identity); err != nil {
		return entities.TransferRequest{}, err
	}
	r, err := u.pending(ctx, id)
	if err != nil {
		return entities.TransferRequest{}, err
	}

	found, err := u.users.AddEnrolledCourse(ctx, r.UserID, r.CourseID)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("transfer_request_id", r.ID).Msg("[transfer][usecase] enrollment failed")
		return entities.TransferRequest{}, err
	}
	if !found {
		return entities.TransferRequest{}, ErrUserNotFound
	}
	metrics.EnrollmentsGrantedTotal.WithLabelValues("transfer").Inc()

	if err := u.transition(ctx, r.ID, entities.TransferRequestConfirmed); err != nil {
		return entities.TransferRequest{}, err
	}
	r.Status = entities.TransferRequestConfirmed
	logger.WithContext(ctx).Info().Str("transfer_request_id", r.ID).Str("user_id", r.UserID).Str("course_id", r.CourseID).Msg("[transfer][usecase] request confirmed")
	return r, nil
}

func (u *TransferRequestUseCase) Cancel(ctx context.Context, identity *entities.Identity, id string) (entities.TransferRequest, error) {
	if err := requireDocente(identity); err != nil {
		return entities.TransferRequest{}, err
	}
	r, err := u.pending(ctx, id)
	if err != nil {
		return entities.TransferRequest{}, err
	}
	if err := u.transition(ctx, r.ID, entities.TransferRequestCancelled); err != nil {
		return entities.TransferRequest{}, err
	}
	r.Status = entities.TransferRequestCancelled
	return r, nil
}

func (u *TransferRequestUseCase) pending(ctx context.Context, id string) (entities.TransferRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TransferRequest{}, ErrTransferRequestNotFound
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TransferRequest{}, err
	}
	if r.ID == "" {
		return entities.TransferRequest{}, ErrTransferRequestNotFound
	}
	if r.Status != entities.TransferRequestPending {
		return entities.TransferRequest{}, ErrTransferRequestNotPending
	}
	return r, nil
}

func (u *TransferRequestUseCase) transition(ctx context.Context, id string, to entities.TransferRequestStatus) error {
	changed, err := u.repo.TransitionStatus(ctx, id, entities.TransferRequestPending, to)
	if err != nil {
		return err
	}
	if !changed {
		return ErrTransferRequestNotPending
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"net/mail"
	"sort"
	"strings"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/infrastructure/metrics"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrWeakPassword      = errors.New("password too short")
	ErrInvalidUser       = errors.New("name and email are required")
	ErrCannotDeleteSelf  = errors.New("cannot delete own account")
)

type UserInput struct {
	Nombre   string
	Email    string
	Password string
}

// IUserUseCase is the docente's account management.
type IUserUseCase interface {
	List(ctx context.Context, identity *entities.Identity) ([]entities.User, error)
	Get(ctx context.Context, identity *entities.Identity, uid string) (entities.User, error)
	Create(ctx context.Context, identity *entities.Identity, in UserInput) (entities.User, error)
	Update(ctx context.Context, identity *entities.Identity, uid string, in UserInput) (entities.User, error)
	Delete(ctx context.Context, identity *entities.Identity, uid string) error
	AssignDocente(ctx context.Context, identity *entities.Identity, email string) (entities.User, error)
	Enroll(ctx context.Context, identity *entities.Identity, uid, courseID string) (entities.User, error)
	Unenroll(ctx context.Context, identity *entities.Identity, uid, courseID string) (entities.User, error)
}

type UserUseCase struct {
	repo             interfaces.IUserRepository
	courses          interfaces.ICourseRepository
	minPasswordChars int
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, courses interfaces.ICourseRepository, minPasswordChars int) *UserUseCase {
	if minPasswordChars <= 0 {
		minPasswordChars = 6
	}
	return &UserUseCase{repo: repo, courses: courses, minPasswordChars: minPasswordChars}
}

func (u *UserUseCase) List(ctx context.Context, identity *entities.Identity) ([]entities.User, error) {
	if err := requireDocente(identity); err != nil {
		return nil, err
	}
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (u *UserUseCase) Get(ctx context.Context, identity *entities.Identity, uid string) (entities.User, error) {
	if err := requireDocente(identity); err != nil {
		return entities.User{}, err
	}
	return u.existing(ctx, uid)
}

// Create registers a student account on behalf of the docente.
func (u *UserUseCase) Create(ctx context.Context, identity *entities.Identity, in UserInput) (entities.User, error) {
	if err := requireDocente(identity); err != nil {
		return entities.User{}, err
	}
	return u.createAccount(ctx, in, entities.RoleEstudiante)
}

func (u *UserUseCase) Update(ctx context.Context, identity *entities.Identity, uid string, in UserInput) (entities.User, error) {
	if err := requireDocente(identity); err != nil {
		return entities.User{}, err
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.User{}, ErrUserNotFound
	}

	upd := entities.UserUpdate{Nombre: strings.TrimSpace(in.Nombre)}
	if email := strings.TrimSpace(in.Email); email != "" {
		normalized, err := normalizeEmail(email)
		if err != nil {
			return entities.User{}, err
		}
		other, err := u.repo.GetByEmail(ctx, normalized)
		if err != nil {
			return entities.User{}, err
		}
		if other.UID != "" && other.UID != uid {
			return entities.User{}, ErrUserAlreadyExists
		}
		upd.Email = normalized
	}
	if in.Password != "" {
		hash, err := u.hashPassword(in.Password)
		if err != nil {
			return entities.User{}, err
		}
		upd.PasswordHash = hash
	}

	updated, err := u.repo.Update(ctx, uid, upd)
	if err != nil {
		return entities.User{}, err
	}
	if updated.UID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, identity *entities.Identity, uid string) error {
	if err := requireDocente(identity); err != nil {
		return err
	}
	uid = strings.TrimSpace(uid)
	if uid == identity.UID {
		return ErrCannotDeleteSelf
	}
	existing, err := u.repo.GetByID(ctx, uid)
	if err != nil {
		return err
	}
	if existing.UID == "" {
		return ErrUserNotFound
	}
	if err := u.repo.Delete(ctx, uid); err != nil {
		return err
	}
	logger.WithContext(ctx).Info().Str("user_id", uid).Str("by", identity.UID).Msg("[user][usecase] user deleted")
	return nil
}

// AssignDocente grants the docente role to the account with the given email.
func (u *UserUseCase) AssignDocente(ctx context.Context, identity *entities.Identity, email string) (entities.User, error) {
	if err := requireDocente(identity); err != nil {
		return entities.User{}, err
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return entities.User{}, err
	}
	user, err := u.repo.GetByEmail(ctx, normalized)
	if err != nil {
		return entities.User{}, err
	}
	if user.UID == "" {
		return entities.User{}, ErrUserNotFound
	}
	updated, err := u.repo.SetRole(ctx, user.UID, entities.RoleDocente)
	if err != nil {
		return entities.User{}, err
	}
	if updated.UID == "" {
		return entities.User{}, ErrUserNotFound
	}
	logger.WithContext(ctx).Info().Str("user_id", updated.UID).Str("by", identity.UID).Msg("[user][usecase] docente role assigned")
	return updated, nil
}

// Enroll grants a course by hand, for payments settled outside the platform.
func (u *UserUseCase) Enroll(ctx context.Context, identity *entities.Identity, uid, courseID string) (entities.User, error) {
	if err := requireDocente(identity); err != nil {
		return entities.User{}, err
	}
	uid, courseID = strings.TrimSpace(uid), strings.TrimSpace(courseID)
	if courseID == "" {
		return entities.User{}, ErrInvalidCourseID
	}
	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		return entities.User{}, err
	}
	if course.ID == "" {
		return entities.User{}, ErrCourseNotFound
	}
	if err := u.changeEnrollment(ctx, uid, courseID, u.repo.AddEnrolledCourse); err != nil {
		return entities.User{}, err
	}
	metrics.EnrollmentsGrantedTotal.WithLabelValues("admin").Inc()
	logger.WithContext(ctx).Info().Str("user_id", uid).Str("course_id", courseID).Str("by", identity.UID).Msg("[user][usecase] course granted")
	return u.existing(ctx, uid)
}

// Unenroll revokes a course. The catalog is not consulted so that courses
// removed since the grant can still be revoked.
func (u *UserUseCase) Unenroll(ctx context.Context, identity *entities.Identity, uid, courseID string) (entities.User, error) {
	if err := requireDocente(identity); err != nil {
		return entities.User{}, err
	}
	uid, courseID = strings.TrimSpace(uid), strings.TrimSpace(courseID)
	if courseID == "" {
		return entities.User{}, ErrInvalidCourseID
	}
	if err := u.changeEnrollment(ctx, uid, courseID, u.repo.RemoveEnrolledCourse); err != nil {
		return entities.User{}, err
	}
	logger.WithContext(ctx).Info().Str("user_id", uid).Str("course_id", courseID).Str("by", identity.UID).Msg("[user][usecase] course revoked")
	return u.existing(ctx, uid)
}

func (u *UserUseCase) changeEnrollment(ctx context.Context, uid, courseID string, change func(ctx context.Context, uid, courseID string) (bool, error)) error {
	if uid == "" {
		return ErrUserNotFound
	}
	found, err := change(ctx, uid, courseID)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

func (u *UserUseCase) existing(ctx context.Context, uid string) (entities.User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.repo.GetByID(ctx, uid)
	if err != nil {
		return entities.User{}, err
	}
	if user.UID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) createAccount(ctx context.Context, in UserInput, role entities.Role) (entities.User, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" || strings.TrimSpace(in.Email) == "" {
		return entities.User{}, ErrInvalidUser
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.User{}, err
	}
	hash, err := u.hashPassword(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	// Email uniqueness is checked through the index; two concurrent sign-ups
	// with the same address can still both succeed.
	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.UID != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	user := entities.User{
		UID:             uuid.NewString(),
		Nombre:          nombre,
		Email:           email,
		Rol:             role,
		PasswordHash:    hash,
		CursosInscritos: []string{},
		CreatedAt:       time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if !created {
		return entities.User{}, ErrUserAlreadyExists
	}
	logger.WithContext(ctx).Info().Str("user_id", user.UID).Str("rol", string(role)).Msg("[user][usecase] account created")
	return user, nil
}

func (u *UserUseCase) hashPassword(password string) (string, error) {
	if len([]rune(password)) < u.minPasswordChars {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

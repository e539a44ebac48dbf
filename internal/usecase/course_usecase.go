package usecase

import (
	"context"
	"errors"
	"math"
	"slices"
	"sort"
	"strings"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidCourse  = errors.New("course title is required and price must be positive")
)

const catalogCacheKey = "catalog:courses"

type CourseInput struct {
	Title       string
	Description string
	Price       float64
	ImageURL    string
}

// ICourseUseCase serves the public catalog and its administration.
type ICourseUseCase interface {
	List(ctx context.Context) ([]entities.Course, error)
	Get(ctx context.Context, id string) (entities.Course, error)
	Create(ctx context.Context, identity *entities.Identity, in CourseInput) (entities.Course, error)
	Update(ctx context.Context, identity *entities.Identity, id string, in CourseInput) (entities.Course, error)
}

type CourseUseCase struct {
	repo  interfaces.ICourseRepository
	cache interfaces.ICache
	ttl   time.Duration
}

var _ ICourseUseCase = (*CourseUseCase)(nil)

// NewCourseUseCase builds the catalog usecase. cache may be nil.
func NewCourseUseCase(repo interfaces.ICourseRepository, cache interfaces.ICache, ttl time.Duration) *CourseUseCase {
	return &CourseUseCase{repo: repo, cache: cache, ttl: ttl}
}

func (u *CourseUseCase) List(ctx context.Context) ([]entities.Course, error) {
	if u.cache != nil {
		if v, ok := u.cache.Get(catalogCacheKey); ok {
			if courses, ok := v.([]entities.Course); ok {
				return slices.Clone(courses), nil
			}
		}
	}

	courses, err := u.repo.List(ctx)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("[course][usecase] failed listing courses")
		return nil, err
	}
	sortCourses(courses)
	if u.cache != nil {
		u.cache.Set(catalogCacheKey, slices.Clone(courses), u.ttl)
	}
	return courses, nil
}

func (u *CourseUseCase) Get(ctx context.Context, id string) (entities.Course, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Course{}, ErrInvalidCourseID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Course{}, err
	}
	if c.ID == "" {
		return entities.Course{}, ErrCourseNotFound
	}
	return c, nil
}

// Create appends the course at the end of the catalog.
func (u *CourseUseCase) Create(ctx context.Context, identity *entities.Identity, in CourseInput) (entities.Course, error) {
	if err := requireDocente(identity); err != nil {
		return entities.Course{}, err
	}
	if err := validateCourseInput(in); err != nil {
		return entities.Course{}, err
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Course{}, err
	}
	now := time.Now().UTC()
	c := entities.Course{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Price:       roundCents(in.Price),
		Order:       len(existing) + 1,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("course_id", c.ID).Msg("[course][usecase] failed creating course")
		return entities.Course{}, err
	}
	u.invalidate()
	logger.WithContext(ctx).Info().Str("course_id", created.ID).Int("order", created.Order).Msg("[course][usecase] course created")
	return created, nil
}

func (u *CourseUseCase) Update(ctx context.Context, identity *entities.Identity, id string, in CourseInput) (entities.Course, error) {
	if err := requireDocente(identity); err != nil {
		return entities.Course{}, err
	}
	if err := validateCourseInput(in); err != nil {
		return entities.Course{}, err
	}

	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Course{}, err
	}
	current.Title = strings.TrimSpace(in.Title)
	current.Description = strings.TrimSpace(in.Description)
	current.Price = roundCents(in.Price)
	if img := strings.TrimSpace(in.ImageURL); img != "" {
		current.ImageURL = img
	}
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Course{}, err
	}
	if updated.ID == "" {
		return entities.Course{}, ErrCourseNotFound
	}
	u.invalidate()
	return updated, nil
}

func (u *CourseUseCase) invalidate() {
	if u.cache != nil {
		u.cache.Delete(catalogCacheKey)
	}
}

func validateCourseInput(in CourseInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidCourse
	}
	if in.Price <= 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return ErrInvalidCourse
	}
	return nil
}

func sortCourses(courses []entities.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].Order != courses[j].Order {
			return courses[i].Order < courses[j].Order
		}
		return courses[i].CreatedAt.Before(courses[j].CreatedAt)
	})
}

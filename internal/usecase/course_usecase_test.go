package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/infrastructure/cache"
	mock_interfaces "academia_bere/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCourseList_CachesUntilInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICourseRepository(ctrl)
	uc := NewCourseUseCase(repo, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
	ctx := context.Background()

	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := []entities.Course{
		{ID: "b", Order: 2, CreatedAt: t0},
		{ID: "a", Order: 1, CreatedAt: t0},
	}
	repo.EXPECT().List(gomock.Any()).Return(stored, nil).Times(1)

	first, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, courseIDs(first))

	second, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, courseIDs(second))

	// Callers may mutate what they get without touching the cached catalog.
	second[0].Title = "changed"
	third, _ := uc.List(ctx)
	assert.Empty(t, third[0].Title)

	repo.EXPECT().List(gomock.Any()).Return(stored, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Course) (entities.Course, error) {
		assert.Equal(t, 3, c.Order)
		assert.Equal(t, 99.99, c.Price)
		assert.NotEmpty(t, c.ID)
		return c, nil
	})
	_, err = uc.Create(ctx, docente, CourseInput{Title: " Chocolatería ", Price: 99.991})
	require.NoError(t, err)

	repo.EXPECT().List(gomock.Any()).Return(stored, nil).Times(1)
	_, err = uc.List(ctx)
	require.NoError(t, err)
}

func courseIDs(courses []entities.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCourseGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICourseRepository(ctrl)
	uc := NewCourseUseCase(repo, nil, 0)

	repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Course{}, nil)
	_, err := uc.Get(context.Background(), "x")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = uc.Get(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidCourseID)
}

func TestCourseCreateAndUpdate_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICourseRepository(ctrl)
	uc := NewCourseUseCase(repo, nil, 0)
	ctx := context.Background()

	_, err := uc.Create(ctx, estudiante, CourseInput{Title: "t", Price: 1})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = uc.Create(ctx, docente, CourseInput{Title: " ", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidCourse)
	_, err = uc.Update(ctx, docente, "c1", CourseInput{Title: "t", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidCourse)
}

func TestCourseUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICourseRepository(ctrl)
	c := mock_interfaces.NewMockICache(ctrl)
	uc := NewCourseUseCase(repo, c, time.Minute)
	ctx := context.Background()

	current := entities.Course{ID: "c1", Title: "Old", Price: 10, Order: 4, ImageURL: "img.png"}
	repo.EXPECT().GetByID(gomock.Any(), "c1").Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, upd entities.Course) (entities.Course, error) {
		return upd, nil
	})
	c.EXPECT().Delete(catalogCacheKey)

	updated, err := uc.Update(ctx, docente, "c1", CourseInput{Title: "New", Price: 20})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, float64(20), updated.Price)
	assert.Equal(t, 4, updated.Order)
	assert.Equal(t, "img.png", updated.ImageURL)

	repo.EXPECT().GetByID(gomock.Any(), "c1").Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Course{}, nil)
	_, err = uc.Update(ctx, docente, "c1", CourseInput{Title: "New", Price: 20})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	boom := errors.New("dynamo down")
	repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Course{}, boom)
	_, err = uc.Update(ctx, docente, "c1", CourseInput{Title: "New", Price: 20})
	assert.ErrorIs(t, err, boom)
}

package handlers

import (
	"net/http"
	"testing"

	"academia_bere/internal/adapter/http/handlers/mocks"
	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestCouponHandler(t *testing.T) {
	t.Run("validate inactive coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)
		r := newRouter(student)
		r.GET("/v1/coupons/:code/validate", h.Validate)

		uc.EXPECT().Validate(gomock.Any(), "viejo").Return(entities.CouponDiscount{}, &usecase.CouponNotFoundError{Code: "VIEJO"})

		w := do(r, http.MethodGet, "/v1/coupons/viejo/validate", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)
		r := newRouter(docente)
		r.POST("/v1/admin/coupons", h.Create)

		uc.EXPECT().Create(gomock.Any(), docente, "AHORRA20", 20).Return(entities.Coupon{}, usecase.ErrCouponAlreadyExists)

		w := do(r, http.MethodPost, "/v1/admin/coupons", `{"code":"AHORRA20","discountPercentage":20}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("set active requires the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewCouponHandler(mocks.NewMockICouponUseCase(ctrl))
		r := newRouter(docente)
		r.PATCH("/v1/admin/coupons/:code", h.SetActive)

		w := do(r, http.MethodPatch, "/v1/admin/coupons/AHORRA20", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set active false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)
		r := newRouter(docente)
		r.PATCH("/v1/admin/coupons/:code", h.SetActive)

		uc.EXPECT().SetActive(gomock.Any(), docente, "AHORRA20", false).Return(entities.Coupon{Code: "AHORRA20", DiscountPercentage: 20}, nil)

		w := do(r, http.MethodPatch, "/v1/admin/coupons/AHORRA20", `{"active":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete forbidden for students", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICouponUseCase(ctrl)
		h := NewCouponHandler(uc)
		r := newRouter(student)
		r.DELETE("/v1/admin/coupons/:code", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), student, "AHORRA20").Return(usecase.ErrPermissionDenied)

		w := do(r, http.MethodDelete, "/v1/admin/coupons/AHORRA20", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestCourseHandler(t *testing.T) {
	t.Run("list catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		courses := mocks.NewMockICourseUseCase(ctrl)
		h := NewCourseHandler(courses, mocks.NewMockILessonUseCase(ctrl))
		r := newRouter(nil)
		r.GET("/v1/courses", h.ListCourses)

		courses.EXPECT().List(gomock.Any()).Return([]entities.Course{{ID: "c1", Title: "Repostería", Price: 499, Order: 1}}, nil)

		w := do(r, http.MethodGet, "/v1/courses", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get unknown course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		courses := mocks.NewMockICourseUseCase(ctrl)
		h := NewCourseHandler(courses, mocks.NewMockILessonUseCase(ctrl))
		r := newRouter(nil)
		r.GET("/v1/courses/:id", h.GetCourse)

		courses.EXPECT().Get(gomock.Any(), "nope").Return(entities.Course{}, usecase.ErrCourseNotFound)

		w := do(r, http.MethodGet, "/v1/courses/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		courses := mocks.NewMockICourseUseCase(ctrl)
		h := NewCourseHandler(courses, mocks.NewMockILessonUseCase(ctrl))
		r := newRouter(docente)
		r.POST("/v1/admin/courses", h.CreateCourse)

		courses.EXPECT().Create(gomock.Any(), docente, usecase.CourseInput{Title: "Pan", Price: 350}).Return(entities.Course{ID: "c2", Title: "Pan", Price: 350, Order: 2}, nil)

		w := do(r, http.MethodPost, "/v1/admin/courses", `{"title":"Pan","price":350}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("lessons require enrollment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lessons := mocks.NewMockILessonUseCase(ctrl)
		h := NewCourseHandler(mocks.NewMockICourseUseCase(ctrl), lessons)
		r := newRouter(student)
		r.GET("/v1/courses/:id/lessons", h.ListLessons)

		lessons.EXPECT().List(gomock.Any(), student, "c1").Return(nil, usecase.ErrNotEnrolled)

		w := do(r, http.MethodGet, "/v1/courses/c1/lessons", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("reorder passes the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lessons := mocks.NewMockILessonUseCase(ctrl)
		h := NewCourseHandler(mocks.NewMockICourseUseCase(ctrl), lessons)
		r := newRouter(docente)
		r.PUT("/v1/admin/courses/:id/lessons/order", h.ReorderLessons)

		lessons.EXPECT().Reorder(gomock.Any(), docente, "c1", []entities.LessonOrder{
			{LessonID: "l2", Order: 1},
			{LessonID: "l1", Order: 2},
		}).Return(nil)

		w := do(r, http.MethodPut, "/v1/admin/courses/c1/lessons/order", `{"updates":[{"lessonId":"l2","order":1},{"lessonId":" l1 ","order":2}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["updated"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("reorder with unknown lesson", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lessons := mocks.NewMockILessonUseCase(ctrl)
		h := NewCourseHandler(mocks.NewMockICourseUseCase(ctrl), lessons)
		r := newRouter(docente)
		r.PUT("/v1/admin/courses/:id/lessons/order", h.ReorderLessons)

		lessons.EXPECT().Reorder(gomock.Any(), docente, "c1", gomock.Any()).Return(usecase.ErrLessonNotFound)

		w := do(r, http.MethodPut, "/v1/admin/courses/c1/lessons/order", `{"updates":[{"lessonId":"ghost","order":1}]}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("presign upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lessons := mocks.NewMockILessonUseCase(ctrl)
		h := NewCourseHandler(mocks.NewMockICourseUseCase(ctrl), lessons)
		r := newRouter(docente)
		r.POST("/v1/admin/courses/:id/uploads", h.PresignUpload)

		lessons.EXPECT().PresignUpload(gomock.Any(), docente, "c1", usecase.UploadKindVideo, "clase 1.mp4", "video/mp4").
			Return(entities.UploadURL{Key: "courses/c1/videos/1_clase-1.mp4", UploadURL: "https://s3/put"}, nil)

		w := do(r, http.MethodPost, "/v1/admin/courses/c1/uploads", `{"kind":"video","fileName":"clase 1.mp4","contentType":"video/mp4"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestStudentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIStudentUseCase(ctrl)
	h := NewStudentHandler(uc)
	r := newRouter(student)
	r.GET("/v1/me/courses", h.MyCourses)
	r.POST("/v1/me/courses/:id/lessons/:lessonId/complete", h.CompleteLesson)

	uc.EXPECT().MyCourses(gomock.Any(), student).Return([]entities.Course{{ID: "c456"}}, nil)
	uc.EXPECT().CompleteLesson(gomock.Any(), student, "c456", "l1").Return(entities.CourseProgress{UserID: "u123", CourseID: "c456", CompletedLessons: []string{"l1"}}, nil)

	if w := do(r, http.MethodGet, "/v1/me/courses", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/v1/me/courses/c456/lessons/l1/complete", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

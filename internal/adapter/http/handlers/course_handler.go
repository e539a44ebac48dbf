package handlers

import (
	"net/http"

	"academia_bere/internal/adapter/http/dto/request"
	"academia_bere/internal/adapter/http/middleware"
	"academia_bere/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CourseHandler serves the catalog and the lessons of each course.
type CourseHandler struct {
	courses usecase.ICourseUseCase
	lessons usecase.ILessonUseCase
}

func NewCourseHandler(courses usecase.ICourseUseCase, lessons usecase.ILessonUseCase) *CourseHandler {
	return &CourseHandler{courses: courses, lessons: lessons}
}

// ListCourses godoc
// @Summary      List the catalog
// @Tags         courses
// @Produce      json
// @Success      200  {array}   entities.Course
// @Router       /v1/courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		respondError(c, "course", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var body request.CourseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	course, err := h.courses.Create(c.Request.Context(), middleware.IdentityFrom(c), toCourseInput(body))
	if err != nil {
		respondError(c, "course", err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var body request.CourseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	course, err := h.courses.Update(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), toCourseInput(body))
	if err != nil {
		respondError(c, "course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// ListLessons returns the ordered lessons of a course to enrolled students
// and docentes.
func (h *CourseHandler) ListLessons(c *gin.Context) {
	lessons, err := h.lessons.List(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, "lesson", err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

func (h *CourseHandler) CreateLesson(c *gin.Context) {
	var body request.LessonRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	lesson, err := h.lessons.Create(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), usecase.LessonInput{
		Title:              body.Title,
		TextContent:        body.TextContent,
		VideoURL:           body.VideoURL,
		SupportMaterialURL: body.SupportMaterialURL,
	})
	if err != nil {
		respondError(c, "lesson", err)
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

// ReorderLessons godoc
// @Summary      Save a new lesson order
// @Description  Applies every (lessonId, order) pair atomically.
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                         true  "Course id"
// @Param        body  body      request.ReorderLessonsRequest  true  "New order"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /v1/admin/courses/{id}/lessons/order [put]
func (h *CourseHandler) ReorderLessons(c *gin.Context) {
	var body request.ReorderLessonsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	if err := h.lessons.Reorder(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), body.ToLessonOrders()); err != nil {
		respondError(c, "lesson", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(body.Updates)})
}

// PresignUpload hands the docente a direct upload URL for a lesson asset.
func (h *CourseHandler) PresignUpload(c *gin.Context) {
	var body request.PresignUploadRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	upload, err := h.lessons.PresignUpload(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), usecase.UploadKind(body.Kind), body.FileName, body.ContentType)
	if err != nil {
		respondError(c, "lesson", err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

func toCourseInput(body request.CourseRequest) usecase.CourseInput {
	return usecase.CourseInput{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		ImageURL:    body.ImageURL,
	}
}

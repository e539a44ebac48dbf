package handlers

import (
	"net/http"

	"academia_bere/internal/adapter/http/middleware"
	"academia_bere/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	usecase usecase.IStudentUseCase
}

func NewStudentHandler(uc usecase.IStudentUseCase) *StudentHandler {
	return &StudentHandler{usecase: uc}
}

func (h *StudentHandler) MyCourses(c *gin.Context) {
	courses, err := h.usecase.MyCourses(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, "student", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *StudentHandler) CompleteLesson(c *gin.Context) {
	progress, err := h.usecase.CompleteLesson(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), c.Param("lessonId"))
	if err != nil {
		respondError(c, "student", err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *StudentHandler) Progress(c *gin.Context) {
	progress, err := h.usecase.Progress(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, "student", err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

package handlers

import (
	"errors"
	"net/http"

	"academia_bere/internal/usecase"
	"academia_bere/pkg"
	"academia_bere/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Solicitud inválida.", http.StatusBadRequest)

// mapError translates usecase errors into the codes and messages the UI
// shows. Anything unknown is an internal error whose details stay in the logs.
func mapError(err error) *pkg.AppError {
	var couponErr *usecase.CouponNotFoundError
	switch {
	case errors.As(err, &couponErr):
		return pkg.NewDomainError("COUPON_NOT_FOUND", couponErr.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Debes iniciar sesión.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Solo los docentes pueden realizar esta acción.", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotEnrolled):
		return pkg.NewDomainErrorSimple("NOT_ENROLLED", "No estás inscrito en este curso.", http.StatusForbidden)

	case errors.Is(err, usecase.ErrMissingEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "El usuario no tiene un email asociado.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "El precio debe ser mayor a cero.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCourseID):
		return pkg.NewDomainErrorSimple("INVALID_COURSE_ID", "Se necesita el curso.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCourse):
		return pkg.NewDomainErrorSimple("INVALID_COURSE", "El curso necesita un título y un precio mayor a cero.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCouponCode):
		return pkg.NewDomainErrorSimple("INVALID_COUPON_CODE", "El código del cupón es obligatorio.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "El descuento debe estar entre 1 y 100.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLesson):
		return pkg.NewDomainErrorSimple("INVALID_LESSON", "La lección necesita un título y un video.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLessonOrder):
		return pkg.NewDomainErrorSimple("INVALID_LESSON_ORDER", "El orden de las lecciones no es válido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUpload):
		return pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Archivo no válido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransferRequest):
		return pkg.NewDomainErrorSimple("INVALID_TRANSFER_REQUEST", "Se necesitan tu nombre y teléfono.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Estado no válido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Se necesita un email válido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "La contraseña es demasiado corta.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUser):
		return pkg.NewDomainErrorSimple("INVALID_USER", "Se necesitan nombre y email.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCannotDeleteSelf):
		return pkg.NewDomainErrorSimple("CANNOT_DELETE_SELF", "No puedes eliminar tu propia cuenta.", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Email o contraseña incorrectos.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSetupDisabled):
		return pkg.NewDomainErrorSimple("SETUP_DISABLED", "La configuración inicial no está habilitada.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Firma inválida.", http.StatusUnauthorized)

	case errors.Is(err, usecase.ErrCourseNotFound):
		return pkg.NewDomainErrorSimple("COURSE_NOT_FOUND", "El curso no existe.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLessonNotFound):
		return pkg.NewDomainErrorSimple("LESSON_NOT_FOUND", "La lección no existe.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "El usuario no existe.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "El pago no existe.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransferRequestNotFound):
		return pkg.NewDomainErrorSimple("TRANSFER_REQUEST_NOT_FOUND", "La solicitud no existe.", http.StatusNotFound)

	case errors.Is(err, usecase.ErrCouponAlreadyExists):
		return pkg.NewDomainErrorSimple("COUPON_ALREADY_EXISTS", "Ya existe un cupón con ese código.", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "Ya existe una cuenta con ese email.", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransferRequestNotPending):
		return pkg.NewDomainErrorSimple("TRANSFER_REQUEST_NOT_PENDING", "La solicitud ya fue procesada.", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocenteExists):
		return pkg.NewDomainErrorSimple("DOCENTE_EXISTS", "Ya existe una cuenta de docente.", http.StatusConflict)

	case errors.Is(err, usecase.ErrPaymentGatewayNotSet), errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "No se pudo crear la preferencia de pago.", err, http.StatusInternalServerError)
	default:
		return pkg.NewInternalError(err)
	}
}

func respondError(c *gin.Context, scope string, err error) {
	appErr := mapError(err)
	event := logger.WithContext(c.Request.Context()).Info()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		event = logger.WithContext(c.Request.Context()).Error()
	}
	event.Err(err).Str("code", appErr.Code).Msg("[" + scope + "][handler] request failed")
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidRequest(c *gin.Context, err error) {
	logger.WithContext(c.Request.Context()).Info().Err(err).Msg("[http][handler] invalid request body")
	c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}

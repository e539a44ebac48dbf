package routes

import (
	"context"
	"net/http"
	"time"

	"academia_bere/internal/adapter/http/handlers"
	"academia_bere/internal/adapter/http/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
)

const (
	PathAuth             = "/auth"
	PathCourses          = "/courses"
	PathCoupons          = "/coupons"
	PathPayments         = "/payments"
	PathMe               = "/me"
	PathTransferRequests = "/transfer-requests"
	PathAdmin            = "/admin"
)

type routeHandlers struct {
	auth      *handlers.AuthHandler
	coupons   *handlers.CouponHandler
	courses   *handlers.CourseHandler
	students  *handlers.StudentHandler
	payments  *handlers.PaymentHandler
	transfers *handlers.TransferRequestHandler
	users     *handlers.UserHandler
}

// tableDescriber is the part of the DynamoDB client /ready needs.
type tableDescriber interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

func addHealthRoutes(r gin.IRoutes, ddb tableDescriber, table string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if _, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// addAPIRoutes mounts the /v1 API. The webhook takes webhookLimited instead of
// rateLimited, since Mercado Pago retries in bursts from a few addresses.
func addAPIRoutes(rg *gin.RouterGroup, h routeHandlers, authenticated, rateLimited, webhookLimited gin.HandlerFunc) {
	authGroup := rg.Group(PathAuth, rateLimited)
	{
		authGroup.POST("/register", h.auth.Register)
		authGroup.POST("/login", h.auth.Login)
		authGroup.POST("/setup-admin", h.auth.SetupAdmin)
	}

	courses := rg.Group(PathCourses)
	{
		courses.GET("", h.courses.ListCourses)
		courses.GET("/:id", h.courses.GetCourse)
		courses.GET("/:id/lessons", authenticated, h.courses.ListLessons)
	}

	rg.GET(PathCoupons+"/:code/validate", authenticated, h.coupons.Validate)

	payments := rg.Group(PathPayments)
	{
		// Mercado Pago calls this without a session; non-POST methods get 405.
		payments.Any("/webhook", webhookLimited, h.payments.Webhook)
		payments.POST("/preference", rateLimited, authenticated, h.payments.CreatePreference)
		payments.GET("/:payment_id", authenticated, h.payments.GetPayment)
	}

	me := rg.Group(PathMe, authenticated)
	{
		me.GET("/courses", h.students.MyCourses)
		me.GET("/courses/:id/progress", h.students.Progress)
		me.POST("/courses/:id/lessons/:lessonId/complete", h.students.CompleteLesson)
		me.GET("/payments", h.payments.MyPayments)
	}

	rg.POST(PathTransferRequests, authenticated, h.transfers.Create)

	admin := rg.Group(PathAdmin, authenticated, middleware.RequireDocente())
	{
		admin.GET("/coupons", h.coupons.List)
		admin.POST("/coupons", h.coupons.Create)
		admin.PATCH("/coupons/:code", h.coupons.SetActive)
		admin.DELETE("/coupons/:code", h.coupons.Delete)

		admin.POST("/courses", h.courses.CreateCourse)
		admin.PUT("/courses/:id", h.courses.UpdateCourse)
		admin.POST("/courses/:id/lessons", h.courses.CreateLesson)
		admin.PUT("/courses/:id/lessons/order", h.courses.ReorderLessons)
		admin.POST("/courses/:id/uploads", h.courses.PresignUpload)

		admin.GET("/users", h.users.List)
		admin.GET("/users/:uid", h.users.Get)
		admin.POST("/users", h.users.Create)
		admin.POST("/users/docente", h.users.AssignDocente)
		admin.PATCH("/users/:uid", h.users.Update)
		admin.DELETE("/users/:uid", h.users.Delete)
		admin.GET("/users/:uid/payments", h.payments.UserPayments)
		admin.POST("/users/:uid/courses/:courseId", h.users.Enroll)
		admin.DELETE("/users/:uid/courses/:courseId", h.users.Unenroll)

		admin.GET("/transfer-requests", h.transfers.List)
		admin.POST("/transfer-requests/:id/confirm", h.transfers.Confirm)
		admin.POST("/transfer-requests/:id/cancel", h.transfers.Cancel)
	}
}

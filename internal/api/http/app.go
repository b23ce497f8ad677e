package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/i474232898/ims-api/internal/logger"
	"github.com/i474232898/ims-api/internal/metrics"
	"github.com/i474232898/ims-api/internal/weather"
)

// Options configures NewApp.
type Options struct {
	CORSAllowOrigins string
	AccessLog        bool
	Metrics          *metrics.Metrics
}

// NewApp builds the Fiber app with middleware, the central error handler
// and all routes.
func NewApp(service *weather.Service, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
			Output: logger.Output(),
		}))
	}

	origins := opts.CORSAllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	RegisterRoutes(app, service, opts.Metrics)
	return app
}

const invalidLocationDetail = "Invalid location ID"

// errorHandler renders every error as {"detail": message}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := err.Error()

	var fe *fiber.Error
	switch {
	case errors.Is(err, weather.ErrInvalidLocation):
		code = fiber.StatusBadRequest
		detail = invalidLocationDetail
	case errors.As(err, &fe):
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.WithFields(logger.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"request_id": c.Locals("requestid"),
		}).Error(err)
	}

	return c.Status(code).JSON(fiber.Map{
		"detail": detail,
	})
}

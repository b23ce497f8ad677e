package httpapi

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/ims-api/internal/metrics"
	"github.com/i474232898/ims-api/internal/weather"
)

const (
	serviceName = "ims-api"
	version     = "1.0.0"
)

//go:embed openapi.json
var openAPISpec []byte

// RegisterRoutes wires the HTTP handlers into the Fiber app. m may be nil,
// in which case /metrics is not served.
func RegisterRoutes(app *fiber.App, service *weather.Service, m *metrics.Metrics) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":     "IMS Weather API",
			"description": "HTTP wrapper for the Israel Meteorological Service weather data",
			"docs":        "/docs",
			"version":     version,
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	app.Get("/locations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"locations": service.Locations(),
		})
	})

	app.Get("/weather/current/:location_id", func(c *fiber.Ctx) error {
		req, err := parseLocationRequest(c)
		if err != nil {
			return err
		}

		data, err := service.Current(c.UserContext(), req.LocationID, req.Language)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"data": data})
	})

	app.Get("/weather/forecast/:location_id", func(c *fiber.Ctx) error {
		req, err := parseLocationRequest(c)
		if err != nil {
			return err
		}

		days, err := service.Forecast(c.UserContext(), req.LocationID, req.Language)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"days": days})
	})

	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.Send(openAPISpec)
	})

	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/openapi.json", fiber.StatusTemporaryRedirect)
	})

	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))
	}
}

// locationRequest holds the path and query parameters of the weather endpoints.
type locationRequest struct {
	LocationID int
	Language   string
}

func parseLocationRequest(c *fiber.Ctx) (locationRequest, error) {
	var req locationRequest

	id, err := c.ParamsInt("location_id")
	if err != nil {
		return req, fiber.NewError(fiber.StatusUnprocessableEntity, "location_id must be an integer")
	}
	req.LocationID = id
	// Passed through as-is; the provider decides what it supports.
	req.Language = c.Query("language")

	return req, nil
}

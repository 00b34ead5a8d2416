package webserver

import (
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/jobs"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	Version string
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, runner *jobs.Runner) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: cfg.Version,
	})

	routes(app, SetupControllers(runner))

	return app
}

package job

import (
	"strings"
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/jobs"
	"github.com/gofiber/fiber/v2"
)

// Run executes the job named in the URL and answers with its Result. The
// authorization decision belongs to the dispatcher; this controller only
// extracts the token and maps the outcome to an HTTP status.
func (j *Controller) Run(c *fiber.Ctx) error {
	result := j.runner.Run(time.Now().UTC(), c.Params("jobType"), token(c))

	status := fiber.StatusOK
	if !result.Success {
		switch result.Error {
		case jobs.ErrUnauthorized.Error():
			status = fiber.StatusUnauthorized
		case jobs.ErrInvalidJobType.Error():
			status = fiber.StatusBadRequest
		default:
			status = fiber.StatusInternalServerError
		}
	}
	return c.Status(status).JSON(result)
}

// token reads the bearer token, falling back to a token query argument for
// cron services which cannot set headers.
func token(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

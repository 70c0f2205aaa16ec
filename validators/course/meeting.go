package courseValidator

import (
	"strconv"
	"strings"

	controllers "istem/controllers/course"
	"istem/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateMeeting validates the :id parameter and the meeting payload.
func CreateMeeting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(controllers.CreateMeetingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if reqData.ScheduledAt.IsZero() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"scheduled_at": "Scheduled time is required!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedMeeting", reqData)
		return c.Next()
	}
}

package apperr

import "github.com/gofiber/fiber/v2"

// StatusOf maps an error's kind to an HTTP status code. Unclassified
// errors map to 500.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindValidation:
		return fiber.StatusBadRequest
	case KindExternalService:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the standard error body for err. The message comes
// from MessageOf, so wrapped causes never leak to clients.
func Respond(c *fiber.Ctx, err error) error {
	return c.Status(StatusOf(err)).JSON(fiber.Map{
		"success": false,
		"message": MessageOf(err),
	})
}

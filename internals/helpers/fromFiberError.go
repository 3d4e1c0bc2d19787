package helper

import "github.com/gofiber/fiber/v2"

// ErrorHandler es el fiber.Config.ErrorHandler de la app: todo error que llega hasta
// Fiber (middlewares incluidos) sale con la forma estándar de ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return JsonFromError(c, err, "")
}

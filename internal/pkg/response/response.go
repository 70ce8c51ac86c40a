package response

import "github.com/gofiber/fiber/v2"

// Message is the body used for every status-only reply. The web and
// mobile clients key off this exact shape.
type Message struct {
	Message string `json:"message"`
}

// Send sends a message-only response with the given status code
func Send(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Message{Message: message})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string) error {
	return Send(c, fiber.StatusCreated, message)
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Send(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Send(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Send(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Send(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Send(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Send(c, fiber.StatusInternalServerError, message)
}

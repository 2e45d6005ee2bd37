package controller

import (
	"github.com/gofiber/fiber/v2"

	authMiddleware "quizku_backend/internals/middlewares/auth"
)

// Landing merender halaman utama; identitas ditampilkan kalau ter-resolve.
func Landing(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"User": authMiddleware.CurrentUser(c),
	})
}

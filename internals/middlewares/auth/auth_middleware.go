// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "quizku_backend/internals/features/users/auth/repository"
	authService "quizku_backend/internals/features/users/auth/service"
	userModel "quizku_backend/internals/features/users/user/model"
	helpers "quizku_backend/internals/helpers"
)

const localsUserKey = "user"

// LoadUser mencoba resolve identitas dari cookie sesi dan menyimpannya di Locals.
// Cookie hilang, token rusak, token kadaluarsa, atau user tidak aktif semuanya
// diperlakukan sama: request lanjut sebagai anonim, bukan error.
func LoadUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helpers.GetRawAccessToken(c)
		if raw == "" {
			return c.Next()
		}
		username, ok := authService.ResolveUsername(raw)
		if !ok {
			return c.Next()
		}
		user, err := authRepo.FindUserByUsername(db, username)
		if err != nil || !user.IsActive {
			return c.Next()
		}
		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// RequireUser mengalihkan ke /login kalau belum ada identitas di Locals.
// Dipasang setelah LoadUser pada route yang butuh login.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// CurrentUser mengambil user hasil LoadUser, atau nil untuk anonim.
func CurrentUser(c *fiber.Ctx) *userModel.UserModel {
	user, _ := c.Locals(localsUserKey).(*userModel.UserModel)
	return user
}

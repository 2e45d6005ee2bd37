package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	authHelper "quizku_backend/internals/features/users/auth/helper"
	authRepo "quizku_backend/internals/features/users/auth/repository"
	authService "quizku_backend/internals/features/users/auth/service"
	userModel "quizku_backend/internals/features/users/user/model"
	helpers "quizku_backend/internals/helpers"
)

/* ==========================
   PAGES
========================== */

func LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

func RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{})
}

/* ==========================
   LOGIN (username + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	if err := authHelper.ValidateLoginInput(username, password); err != nil {
		return renderLoginError(c, err.Error())
	}

	user, err := authRepo.FindUserByUsername(db, username)
	if err != nil {
		return renderLoginError(c, "Invalid username or password")
	}
	if !user.IsActive {
		return renderLoginError(c, "Your account has been deactivated")
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return renderLoginError(c, "Invalid username or password")
	}

	return issueSession(c, user.UserName)
}

func renderLoginError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{"Error": msg})
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	// Panjang password dicek duluan, baru keunikan.
	if err := authHelper.ValidateRegisterInput(username, email, password); err != nil {
		return renderRegisterError(c, err.Error())
	}

	existing, err := authRepo.FindUserByUsernameOrEmail(db, username, email)
	if err == nil {
		return renderRegisterError(c, ConflictMessage(existing, username))
	}

	input := userModel.UserModel{
		UserName: username,
		Email:    email,
		Password: password,
		IsActive: true,
	}
	if err := input.Validate(); err != nil {
		return renderRegisterError(c, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			Render("register", fiber.Map{"Error": "Registration failed. Please try again."})
	}
	input.Password = passwordHash

	if err := authRepo.CreateUser(db, &input); err != nil {
		low := strings.ToLower(err.Error())
		// Backstop untuk race: unique constraint di DB
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return renderRegisterError(c, "Username or email already taken")
		}
		log.Printf("[ERROR] create user: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			Render("register", fiber.Map{"Error": "Registration failed. Please try again."})
	}

	return issueSession(c, input.UserName)
}

func renderRegisterError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Error": msg})
}

// ConflictMessage menyebut field mana yang bentrok: username dicek duluan.
func ConflictMessage(existing *userModel.UserModel, username string) string {
	if existing.UserName == username {
		return "Username already taken"
	}
	return "Email already taken"
}

/* ==========================
   SESSION & LOGOUT
========================== */

func issueSession(c *fiber.Ctx, username string) error {
	ttl := configs.AccessTokenTTL()
	token, err := authService.CreateAccessToken(username, ttl)
	if err != nil {
		log.Printf("[ERROR] create access token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}
	helpers.SetAccessTokenCookie(c, token, ttl)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func Logout(c *fiber.Ctx) error {
	helpers.ClearAccessTokenCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

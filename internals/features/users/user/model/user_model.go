package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName  string    `gorm:"column:user_name;size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email     string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	Password  string    `gorm:"column:user_password;not null" json:"-" validate:"required,min=6"`
	IsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	CreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan.
// Dipanggil sebelum Password diganti hash (min=6 berlaku untuk plaintext).
func (u *UserModel) Validate() error {
	err := validate.Struct(u)
	if err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi pesan yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var msg string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + " is required. "
			case "email":
				msg += "Invalid email format. "
			case "min":
				msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters. "
			case "max":
				msg += fieldErr.Field() + " must be shorter than " + fieldErr.Param() + " characters. "
			default:
				msg += fieldErr.Field() + " has an invalid format. "
			}
		}
		return errors.New(msg)
	}
	return err
}

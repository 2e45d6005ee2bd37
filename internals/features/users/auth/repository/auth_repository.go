package repository

import (
	"gorm.io/gorm"

	userModel "quizku_backend/internals/features/users/user/model"
)

// CreateUser menyimpan user baru. Unique constraint di DB jadi backstop
// untuk race pendaftaran ganda.
func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

// FindUserByUsername mencari user berdasarkan username (untuk login & resolve sesi).
func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUsernameOrEmail dipakai cek duplikasi saat registrasi.
func FindUserByUsernameOrEmail(db *gorm.DB, username, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ? OR user_email = ?", username, email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

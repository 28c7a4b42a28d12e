package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "taskverse_backend/internals/features/users/auth/model"
	userModel "taskverse_backend/internals/features/users/user/model"
)

// =======================
// Usuários
// =======================

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByLogin(db *gorm.DB, login string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "login = ?", login).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsUserByEmail / ExistsUserByLogin: pré-checagens do cadastro, cada uma
// com sua mensagem própria (o índice único continua sendo a garantia final).
func ExistsUserByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func ExistsUserByLogin(db *gorm.DB, login string) (bool, error) {
	var count int64
	err := db.Model(&userModel.UserModel{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

// =======================
// Token blacklist
// =======================

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

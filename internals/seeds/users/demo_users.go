package seeds

import (
	"log"

	"gorm.io/gorm"

	authHelper "taskverse_backend/internals/features/users/auth/helper"
	userModel "taskverse_backend/internals/features/users/user/model"
)

type demoUser struct {
	Nome  string
	Email string
	Login string
	Senha string
	Tipo  string
}

var demoUsers = []demoUser{
	{Nome: "Aluno Demo", Email: "aluno@taskverse.dev", Login: "aluno", Senha: "aluno@123", Tipo: "aluno"},
	{Nome: "Professor Demo", Email: "professor@taskverse.dev", Login: "professor", Senha: "professor@123", Tipo: "professor"},
}

// SeedDemoUsers garante as contas de demonstração para ambiente local.
// Idempotente: contas já existentes são mantidas como estão.
func SeedDemoUsers(db *gorm.DB) {
	for _, d := range demoUsers {
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("login = ?", d.Login).
			Count(&count).Error; err != nil {
			log.Printf("[ERROR] seed: falha ao consultar usuário %s: %v", d.Login, err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := authHelper.HashPassword(d.Senha)
		if err != nil {
			log.Printf("[ERROR] seed: falha ao gerar hash para %s: %v", d.Login, err)
			continue
		}

		u := userModel.UserModel{
			Nome:     d.Nome,
			Email:    d.Email,
			Login:    d.Login,
			Senha:    hash,
			Tipo:     d.Tipo,
			IsActive: true,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("[ERROR] seed: falha ao criar usuário %s: %v", d.Login, err)
			continue
		}
		log.Printf("[INFO] seed: usuário de demonstração %s criado", d.Login)
	}
}

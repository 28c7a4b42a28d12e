package database

import (
	"log"
	"os"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	submissionModel "taskverse_backend/internals/features/missions/submissions/model"
	authModel "taskverse_backend/internals/features/users/auth/model"
	userModel "taskverse_backend/internals/features/users/user/model"
)

// AutoMigrate cria/ajusta o schema. Desligável com DB_AUTO_MIGRATE=false
// quando o schema é gerenciado por migração externa.
func AutoMigrate() {
	if os.Getenv("DB_AUTO_MIGRATE") == "false" {
		log.Println("[INFO] auto-migrate desligado por DB_AUTO_MIGRATE=false")
		return
	}

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&missionModel.MissionModel{},
		&submissionModel.SubmissionModel{},
	)
	if err != nil {
		log.Fatalf("❌ Falha no auto-migrate: %v", err)
	}
	log.Println("✅ Schema migrado.")
}

package seeds

import (
	"log"

	"gorm.io/gorm"

	"taskverse_backend/internals/constants"
	missionModel "taskverse_backend/internals/features/missions/missions/model"
	userModel "taskverse_backend/internals/features/users/user/model"
)

type defaultMission struct {
	Titulo      string
	Descricao   string
	PontosXP    int
	Materia     string
	Dificuldade string
}

var defaultMissions = []defaultMission{
	{"Soma Simples", "Resolva as dez contas de adição da lista.", 10, constants.MateriaMatematica, constants.DificuldadeFacil},
	{"Leitura da Semana", "Leia o conto indicado e escreva um resumo de cinco linhas.", 15, constants.MateriaPortugues, constants.DificuldadeMedia},
	{"Sistema Solar", "Descreva os planetas do Sistema Solar em ordem.", 20, constants.MateriaCiencias, constants.DificuldadeMedia},
	{"Brasil Colônia", "Monte uma linha do tempo do período colonial.", 25, constants.MateriaHistoria, constants.DificuldadeDificil},
	{"Capitais do Brasil", "Liste as capitais de dez estados à sua escolha.", 10, constants.MateriaGeografia, constants.DificuldadeFacil},
}

// SeedDefaultMissions cria o pacote de missões pré-carregadas (origem
// "padrao"), uma por matéria, em nome do primeiro professor cadastrado.
// Não roda de novo se já existem missões padrão.
func SeedDefaultMissions(db *gorm.DB) {
	var count int64
	if err := db.Model(&missionModel.MissionModel{}).
		Where("origem = ?", constants.OrigemPadrao).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] seed: falha ao consultar missões padrão: %v", err)
		return
	}
	if count > 0 {
		return
	}

	var prof userModel.UserModel
	if err := db.First(&prof, "tipo = ?", constants.RoleProfessor).Error; err != nil {
		log.Println("[WARN] seed: nenhum professor cadastrado, missões padrão puladas")
		return
	}

	for _, d := range defaultMissions {
		dif := d.Dificuldade
		m := missionModel.MissionModel{
			Titulo:      d.Titulo,
			Descricao:   d.Descricao,
			PontosXP:    d.PontosXP,
			Materia:     d.Materia,
			Dificuldade: &dif,
			Origem:      constants.OrigemPadrao,
			Status:      "ativa",
			CriadoPor:   prof.ID,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("[ERROR] seed: falha ao criar missão %q: %v", d.Titulo, err)
			continue
		}
	}
	log.Printf("[INFO] seed: %d missões padrão criadas", len(defaultMissions))
}

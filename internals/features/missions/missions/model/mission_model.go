package model

import (
	"time"

	"github.com/google/uuid"
)

// MissionModel representa a tabela missoes no banco
type MissionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Titulo    string    `gorm:"size:200;not null" json:"titulo"`
	Descricao string    `gorm:"type:text;not null" json:"descricao"`
	PontosXP  int       `gorm:"column:pontos_xp;not null" json:"pontos_xp"`
	Materia   string    `gorm:"type:varchar(20);not null" json:"materia"`

	// tag opcional de dificuldade (facil | media | dificil)
	Dificuldade *string `gorm:"type:varchar(20)" json:"dificuldade,omitempty"`

	// padrao = missão pré-carregada, customizada = criada por professor
	Origem string `gorm:"type:varchar(20);not null;default:'customizada'" json:"origem"`

	// status do lado da autoria; a visão do aluno deriva o dela das entregas
	Status string `gorm:"type:varchar(20);not null;default:'ativa'" json:"status"`

	CriadoPor uuid.UUID `gorm:"column:criado_por;type:uuid;not null;index" json:"criado_por"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MissionModel) TableName() string {
	return "missoes"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Status persistido de uma entrega. A transição é só uma e irreversível:
// aguardando → aprovada.
const (
	StatusAguardando = "aguardando"
	StatusAprovada   = "aprovada"
)

// SubmissionModel representa a tabela entregas no banco. O índice único em
// (id_missao, id_aluno) garante no servidor uma entrega por aluno por missão.
type SubmissionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	IDMissao     uuid.UUID `gorm:"column:id_missao;type:uuid;not null;uniqueIndex:idx_entregas_missao_aluno" json:"id_missao"`
	IDAluno      uuid.UUID `gorm:"column:id_aluno;type:uuid;not null;uniqueIndex:idx_entregas_missao_aluno" json:"id_aluno"`
	TextoEntrega string    `gorm:"column:texto_entrega;type:text;not null" json:"texto_entrega"`
	Status       string    `gorm:"type:varchar(20);not null;default:'aguardando'" json:"status"`
	DataEntrega  time.Time `gorm:"column:data_entrega;autoCreateTime" json:"data_entrega"`
}

func (SubmissionModel) TableName() string {
	return "entregas"
}

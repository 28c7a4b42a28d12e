package dto

import (
	"strings"
	"time"

	"taskverse_backend/internals/features/missions/submissions/model"
)

// ============================
// Create Request DTO
// ============================

type CreateSubmissionRequest struct {
	IDMissao     string `json:"id_missao" validate:"required,uuid4"`
	TextoEntrega string `json:"texto_entrega" validate:"required,min=1"`
}

func (r *CreateSubmissionRequest) Normalize() {
	r.TextoEntrega = strings.TrimSpace(r.TextoEntrega)
}

// ============================
// Response DTOs
// ============================

type SubmissionDTO struct {
	ID           string    `json:"id"`
	IDMissao     string    `json:"id_missao"`
	IDAluno      string    `json:"id_aluno"`
	TextoEntrega string    `json:"texto_entrega"`
	Status       string    `json:"status"`
	DataEntrega  time.Time `json:"data_entrega"`
}

// PendingSubmissionDTO é a linha da fila de correção do professor: entrega
// aguardando + título/XP da missão + nome do aluno.
type PendingSubmissionDTO struct {
	SubmissionDTO
	MissaoTitulo   string `json:"missao_titulo"`
	MissaoPontosXP int    `json:"missao_pontos_xp"`
	AlunoNome      string `json:"aluno_nome"`
}

// ============================
// Converter
// ============================

func ToSubmissionDTO(m model.SubmissionModel) SubmissionDTO {
	return SubmissionDTO{
		ID:           m.ID.String(),
		IDMissao:     m.IDMissao.String(),
		IDAluno:      m.IDAluno.String(),
		TextoEntrega: m.TextoEntrega,
		Status:       m.Status,
		DataEntrega:  m.DataEntrega,
	}
}

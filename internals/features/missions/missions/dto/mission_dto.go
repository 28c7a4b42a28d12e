package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskverse_backend/internals/constants"
	"taskverse_backend/internals/features/missions/missions/model"
)

// ============================
// Response DTOs
// ============================

type MissionDTO struct {
	ID          string    `json:"id"`
	Titulo      string    `json:"titulo"`
	Descricao   string    `json:"descricao"`
	PontosXP    int       `json:"pontos_xp"`
	Materia     string    `json:"materia"`
	Dificuldade *string   `json:"dificuldade,omitempty"`
	Origem      string    `json:"origem"`
	CriadoPor   string    `json:"criado_por"`
	CreatedAt   time.Time `json:"created_at"`
}

// EffectiveMissionDTO é a visão do aluno: missão + status derivado da entrega.
type EffectiveMissionDTO struct {
	MissionDTO
	StatusDerivado string `json:"status"`
}

// ============================
// Create / Update Requests
// ============================

type CreateMissionRequest struct {
	Titulo      string  `json:"titulo" validate:"required,min=3,max=200"`
	Descricao   string  `json:"descricao" validate:"required,min=3"`
	PontosXP    int     `json:"pontos_xp" validate:"omitempty,min=5,max=100"`
	Materia     string  `json:"materia" validate:"required,oneof=matematica portugues ciencias historia geografia"`
	Dificuldade *string `json:"dificuldade" validate:"omitempty,oneof=facil media dificil"`
}

func (r *CreateMissionRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Descricao = strings.TrimSpace(r.Descricao)
	if r.PontosXP == 0 {
		r.PontosXP = 10
	}
	if r.Dificuldade == nil {
		d := constants.DificuldadeMedia
		r.Dificuldade = &d
	}
}

func (r CreateMissionRequest) ToModel(criadoPor uuid.UUID) model.MissionModel {
	return model.MissionModel{
		Titulo:      r.Titulo,
		Descricao:   r.Descricao,
		PontosXP:    r.PontosXP,
		Materia:     r.Materia,
		Dificuldade: r.Dificuldade,
		Origem:      constants.OrigemCustomizada,
		Status:      "ativa",
		CriadoPor:   criadoPor,
	}
}

type UpdateMissionRequest struct {
	Titulo      string  `json:"titulo" validate:"required,min=3,max=200"`
	Descricao   string  `json:"descricao" validate:"required,min=3"`
	PontosXP    int     `json:"pontos_xp" validate:"required,min=5,max=100"`
	Materia     string  `json:"materia" validate:"required,oneof=matematica portugues ciencias historia geografia"`
	Dificuldade *string `json:"dificuldade" validate:"omitempty,oneof=facil media dificil"`
}

func (r *UpdateMissionRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Descricao = strings.TrimSpace(r.Descricao)
}

// ============================
// Converters
// ============================

func ToMissionDTO(m model.MissionModel) MissionDTO {
	return MissionDTO{
		ID:          m.ID.String(),
		Titulo:      m.Titulo,
		Descricao:   m.Descricao,
		PontosXP:    m.PontosXP,
		Materia:     m.Materia,
		Dificuldade: m.Dificuldade,
		Origem:      m.Origem,
		CriadoPor:   m.CriadoPor.String(),
		CreatedAt:   m.CreatedAt,
	}
}

package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMissionRequestNormalize(t *testing.T) {
	t.Run("aplica os padrões", func(t *testing.T) {
		req := CreateMissionRequest{
			Titulo:    "  Tabuada do 7  ",
			Descricao: " Responda a lista. ",
			Materia:   "matematica",
		}
		req.Normalize()

		assert.Equal(t, "Tabuada do 7", req.Titulo)
		assert.Equal(t, "Responda a lista.", req.Descricao)
		assert.Equal(t, 10, req.PontosXP)
		require.NotNil(t, req.Dificuldade)
		assert.Equal(t, "media", *req.Dificuldade)
	})

	t.Run("não sobrescreve valores informados", func(t *testing.T) {
		d := "dificil"
		req := CreateMissionRequest{
			Titulo:      "Redação",
			Descricao:   "Escreva 20 linhas.",
			PontosXP:    50,
			Materia:     "portugues",
			Dificuldade: &d,
		}
		req.Normalize()

		assert.Equal(t, 50, req.PontosXP)
		assert.Equal(t, "dificil", *req.Dificuldade)
	})
}

func TestCreateMissionRequestToModel(t *testing.T) {
	professor := uuid.New()
	req := CreateMissionRequest{
		Titulo:    "Linha do tempo",
		Descricao: "Monte a linha do tempo do Brasil colônia.",
		Materia:   "historia",
	}
	req.Normalize()

	m := req.ToModel(professor)
	assert.Equal(t, professor, m.CriadoPor)
	assert.Equal(t, "customizada", m.Origem)
	assert.Equal(t, "ativa", m.Status)
	assert.Equal(t, 10, m.PontosXP)
}

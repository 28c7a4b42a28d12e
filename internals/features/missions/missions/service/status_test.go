package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	submissionModel "taskverse_backend/internals/features/missions/submissions/model"
)

func newMission(materia string, xp int) missionModel.MissionModel {
	return missionModel.MissionModel{
		ID:       uuid.New(),
		Titulo:   "Missão de " + materia,
		PontosXP: xp,
		Materia:  materia,
	}
}

func TestDeriveStatus(t *testing.T) {
	aluno := uuid.New()
	m := newMission("matematica", 10)

	t.Run("sem entrega é pendente", func(t *testing.T) {
		assert.Equal(t, StatusPendente, DeriveStatus(m, nil))
	})

	t.Run("entrega aguardando é entregue", func(t *testing.T) {
		subs := []submissionModel.SubmissionModel{
			{IDMissao: m.ID, IDAluno: aluno, Status: submissionModel.StatusAguardando},
		}
		assert.Equal(t, StatusEntregue, DeriveStatus(m, subs))
	})

	t.Run("entrega aprovada é aprovada", func(t *testing.T) {
		subs := []submissionModel.SubmissionModel{
			{IDMissao: m.ID, IDAluno: aluno, Status: submissionModel.StatusAprovada},
		}
		assert.Equal(t, StatusAprovada, DeriveStatus(m, subs))
	})

	t.Run("entrega de outra missão não conta", func(t *testing.T) {
		subs := []submissionModel.SubmissionModel{
			{IDMissao: uuid.New(), IDAluno: aluno, Status: submissionModel.StatusAprovada},
		}
		assert.Equal(t, StatusPendente, DeriveStatus(m, subs))
	})

	t.Run("determinístico para a mesma entrada", func(t *testing.T) {
		subs := []submissionModel.SubmissionModel{
			{IDMissao: m.ID, IDAluno: aluno, Status: submissionModel.StatusAguardando},
		}
		first := DeriveStatus(m, subs)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, DeriveStatus(m, subs))
		}
	})
}

func TestDerivedStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusPendente.Rank())
	assert.Equal(t, 1, StatusEntregue.Rank())
	assert.Equal(t, 2, StatusAprovada.Rank())
}

func TestDerivedStatusValid(t *testing.T) {
	assert.True(t, StatusPendente.Valid())
	assert.True(t, StatusEntregue.Valid())
	assert.True(t, StatusAprovada.Valid())
	assert.False(t, DerivedStatus("concluida").Valid())
	assert.False(t, DerivedStatus("").Valid())
}

func TestBuildEffectiveMissions(t *testing.T) {
	aluno := uuid.New()
	m1 := newMission("matematica", 10)
	m2 := newMission("ciencias", 20)
	m3 := newMission("historia", 15)

	subs := []submissionModel.SubmissionModel{
		{IDMissao: m2.ID, IDAluno: aluno, Status: submissionModel.StatusAguardando},
		{IDMissao: m3.ID, IDAluno: aluno, Status: submissionModel.StatusAprovada},
	}

	views := BuildEffectiveMissions([]missionModel.MissionModel{m1, m2, m3}, subs)
	require.Len(t, views, 3)

	byID := make(map[uuid.UUID]DerivedStatus, len(views))
	for _, v := range views {
		byID[v.Mission.ID] = v.Status
	}
	assert.Equal(t, StatusPendente, byID[m1.ID])
	assert.Equal(t, StatusEntregue, byID[m2.ID])
	assert.Equal(t, StatusAprovada, byID[m3.ID])
}

func TestBuildEffectiveMissionsIsolaAlunos(t *testing.T) {
	m := newMission("portugues", 10)

	// entregas passadas são sempre só as do aluno consultado; sem entrega,
	// a missão volta pendente mesmo que outro aluno tenha entregado
	views := BuildEffectiveMissions([]missionModel.MissionModel{m}, nil)
	require.Len(t, views, 1)
	assert.Equal(t, StatusPendente, views[0].Status)
}

func TestFilterSort(t *testing.T) {
	aluno := uuid.New()
	mat := newMission("matematica", 10)
	cie := newMission("ciencias", 20)
	his1 := newMission("historia", 15)
	his2 := newMission("historia", 25)

	subs := []submissionModel.SubmissionModel{
		{IDMissao: his1.ID, IDAluno: aluno, Status: submissionModel.StatusAprovada},
		{IDMissao: his2.ID, IDAluno: aluno, Status: submissionModel.StatusAguardando},
	}
	views := BuildEffectiveMissions(
		[]missionModel.MissionModel{mat, cie, his1, his2}, subs)

	t.Run("ordena por materia e depois por status", func(t *testing.T) {
		sorted := FilterSort(views, "todas", "todas")
		require.Len(t, sorted, 4)
		assert.Equal(t, "ciencias", sorted[0].Mission.Materia)
		assert.Equal(t, "historia", sorted[1].Mission.Materia)
		assert.Equal(t, StatusEntregue, sorted[1].Status)
		assert.Equal(t, "historia", sorted[2].Mission.Materia)
		assert.Equal(t, StatusAprovada, sorted[2].Status)
		assert.Equal(t, "matematica", sorted[3].Mission.Materia)
	})

	t.Run("filtra por aba de status", func(t *testing.T) {
		pendentes := FilterSort(views, "pendente", "")
		require.Len(t, pendentes, 2)
		for _, v := range pendentes {
			assert.Equal(t, StatusPendente, v.Status)
		}
	})

	t.Run("filtra por materia", func(t *testing.T) {
		historia := FilterSort(views, "", "historia")
		require.Len(t, historia, 2)
		for _, v := range historia {
			assert.Equal(t, "historia", v.Mission.Materia)
		}
	})

	t.Run("filtros combinados", func(t *testing.T) {
		out := FilterSort(views, "aprovada", "historia")
		require.Len(t, out, 1)
		assert.Equal(t, his1.ID, out[0].Mission.ID)
	})

	t.Run("vazio e todas são equivalentes", func(t *testing.T) {
		assert.Equal(t, FilterSort(views, "", ""), FilterSort(views, "todas", "todas"))
	})

	t.Run("não muta a entrada", func(t *testing.T) {
		before := make([]EffectiveMission, len(views))
		copy(before, views)
		_ = FilterSort(views, "todas", "todas")
		assert.Equal(t, before, views)
	})
}

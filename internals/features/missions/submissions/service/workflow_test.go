package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	missionService "taskverse_backend/internals/features/missions/missions/service"
	"taskverse_backend/internals/features/missions/submissions/model"
	progressService "taskverse_backend/internals/features/progress/progress/service"
)

// memStore é a implementação em memória de Store usada nos testes.
type memStore struct {
	missions    map[uuid.UUID]missionModel.MissionModel
	submissions map[uuid.UUID]model.SubmissionModel
}

func newMemStore() *memStore {
	return &memStore{
		missions:    make(map[uuid.UUID]missionModel.MissionModel),
		submissions: make(map[uuid.UUID]model.SubmissionModel),
	}
}

func (s *memStore) addMission(materia string, xp int) missionModel.MissionModel {
	m := missionModel.MissionModel{
		ID:       uuid.New(),
		Titulo:   "Missão de " + materia,
		PontosXP: xp,
		Materia:  materia,
	}
	s.missions[m.ID] = m
	return m
}

func (s *memStore) subsByStudent(alunoID uuid.UUID) []model.SubmissionModel {
	var out []model.SubmissionModel
	for _, sub := range s.submissions {
		if sub.IDAluno == alunoID {
			out = append(out, sub)
		}
	}
	return out
}

func (s *memStore) GetMission(_ context.Context, id uuid.UUID) (missionModel.MissionModel, bool, error) {
	m, ok := s.missions[id]
	return m, ok, nil
}

func (s *memStore) GetSubmissionByMissionAndStudent(_ context.Context, missionID, alunoID uuid.UUID) (model.SubmissionModel, bool, error) {
	for _, sub := range s.submissions {
		if sub.IDMissao == missionID && sub.IDAluno == alunoID {
			return sub, true, nil
		}
	}
	return model.SubmissionModel{}, false, nil
}

func (s *memStore) CreateSubmission(_ context.Context, sub *model.SubmissionModel) error {
	for _, existing := range s.submissions {
		if existing.IDMissao == sub.IDMissao && existing.IDAluno == sub.IDAluno {
			return ErrJaEntregue
		}
	}
	sub.ID = uuid.New()
	s.submissions[sub.ID] = *sub
	return nil
}

func (s *memStore) GetSubmission(_ context.Context, id uuid.UUID) (model.SubmissionModel, bool, error) {
	sub, ok := s.submissions[id]
	return sub, ok, nil
}

func (s *memStore) SetSubmissionApproved(_ context.Context, id uuid.UUID) error {
	sub, ok := s.submissions[id]
	if !ok {
		return errors.New("not found")
	}
	sub.Status = model.StatusAprovada
	s.submissions[id] = sub
	return nil
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	aluno := uuid.New()

	t.Run("registra entrega aguardando", func(t *testing.T) {
		store := newMemStore()
		m := store.addMission("matematica", 10)
		w := NewWorkflow(store)

		sub, err := w.Submit(ctx, aluno, m.ID, "Resolvi as dez questões.")
		require.NoError(t, err)
		assert.Equal(t, model.StatusAguardando, sub.Status)
		assert.Equal(t, m.ID, sub.IDMissao)
		assert.Equal(t, aluno, sub.IDAluno)
		assert.Len(t, store.submissions, 1)
	})

	t.Run("texto vazio não cria linha", func(t *testing.T) {
		store := newMemStore()
		m := store.addMission("matematica", 10)
		w := NewWorkflow(store)

		_, err := w.Submit(ctx, aluno, m.ID, "   ")
		assert.ErrorIs(t, err, ErrTextoVazio)
		assert.Empty(t, store.submissions)
	})

	t.Run("missão inexistente", func(t *testing.T) {
		store := newMemStore()
		w := NewWorkflow(store)

		_, err := w.Submit(ctx, aluno, uuid.New(), "texto")
		assert.ErrorIs(t, err, ErrMissaoNaoEncontrada)
	})

	t.Run("segunda entrega do mesmo aluno é rejeitada", func(t *testing.T) {
		store := newMemStore()
		m := store.addMission("ciencias", 20)
		w := NewWorkflow(store)

		_, err := w.Submit(ctx, aluno, m.ID, "primeira")
		require.NoError(t, err)

		_, err = w.Submit(ctx, aluno, m.ID, "segunda")
		assert.ErrorIs(t, err, ErrJaEntregue)
		assert.Len(t, store.submissions, 1)
	})

	t.Run("a entrega de um aluno não afeta outro", func(t *testing.T) {
		store := newMemStore()
		m := store.addMission("historia", 15)
		w := NewWorkflow(store)
		outroAluno := uuid.New()

		_, err := w.Submit(ctx, aluno, m.ID, "minha resposta")
		require.NoError(t, err)

		sub, err := w.Submit(ctx, outroAluno, m.ID, "outra resposta")
		require.NoError(t, err)
		assert.Equal(t, outroAluno, sub.IDAluno)
		assert.Len(t, store.submissions, 2)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	aluno := uuid.New()

	t.Run("aprova entrega aguardando", func(t *testing.T) {
		store := newMemStore()
		m := store.addMission("matematica", 10)
		w := NewWorkflow(store)

		sub, err := w.Submit(ctx, aluno, m.ID, "resposta")
		require.NoError(t, err)

		approved, err := w.Approve(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusAprovada, approved.Status)
	})

	t.Run("aprovar duas vezes é conflito", func(t *testing.T) {
		store := newMemStore()
		m := store.addMission("matematica", 10)
		w := NewWorkflow(store)

		sub, err := w.Submit(ctx, aluno, m.ID, "resposta")
		require.NoError(t, err)

		_, err = w.Approve(ctx, sub.ID)
		require.NoError(t, err)

		_, err = w.Approve(ctx, sub.ID)
		assert.ErrorIs(t, err, ErrJaAprovada)
		assert.Equal(t, model.StatusAprovada, store.submissions[sub.ID].Status)
	})

	t.Run("entrega inexistente", func(t *testing.T) {
		store := newMemStore()
		w := NewWorkflow(store)

		_, err := w.Approve(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrEntregaNaoEncontrada)
	})
}

// brokenStore simula o banco fora do ar: todo lookup falha.
type brokenStore struct {
	*memStore
	err error
}

func (s *brokenStore) GetMission(_ context.Context, _ uuid.UUID) (missionModel.MissionModel, bool, error) {
	return missionModel.MissionModel{}, false, s.err
}

func (s *brokenStore) GetSubmission(_ context.Context, _ uuid.UUID) (model.SubmissionModel, bool, error) {
	return model.SubmissionModel{}, false, s.err
}

// Falha de acesso ao banco não pode virar "não encontrado": o erro original
// sobe intacto para o controller responder 500.
func TestFalhaDeBancoNaoViraNaoEncontrado(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("driver: bad connection")
	store := &brokenStore{memStore: newMemStore(), err: dbErr}
	w := NewWorkflow(store)

	_, err := w.Submit(ctx, uuid.New(), uuid.New(), "texto")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrMissaoNaoEncontrada)

	_, err = w.Approve(ctx, uuid.New())
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrEntregaNaoEncontrada)
}

// Cenário completo: a aluna entrega uma missão de 10 XP, o professor aprova,
// e o status derivado e o progresso acompanham cada passo.
func TestCicloCompletoDaEntrega(t *testing.T) {
	ctx := context.Background()
	ana := uuid.New()

	store := newMemStore()
	m := store.addMission("matematica", 10)
	w := NewWorkflow(store)

	allMissions := []missionModel.MissionModel{m}

	// antes de entregar: pendente, 0 XP
	views := missionService.BuildEffectiveMissions(allMissions, store.subsByStudent(ana))
	require.Len(t, views, 1)
	assert.Equal(t, missionService.StatusPendente, views[0].Status)
	assert.Equal(t, 0, progressService.ComputeProgress(views).TotalXP)

	// entrega: entregue, ainda 0 XP
	sub, err := w.Submit(ctx, ana, m.ID, "Terminei a lista de exercícios.")
	require.NoError(t, err)

	views = missionService.BuildEffectiveMissions(allMissions, store.subsByStudent(ana))
	assert.Equal(t, missionService.StatusEntregue, views[0].Status)
	assert.Equal(t, 0, progressService.ComputeProgress(views).TotalXP)

	// aprovação: aprovada, 10 XP no nível 1
	_, err = w.Approve(ctx, sub.ID)
	require.NoError(t, err)

	views = missionService.BuildEffectiveMissions(allMissions, store.subsByStudent(ana))
	assert.Equal(t, missionService.StatusAprovada, views[0].Status)

	p := progressService.ComputeProgress(views)
	assert.Equal(t, 10, p.TotalXP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 10, p.XPInCurrentLevel)
	assert.Equal(t, 10, p.ProgressPercentage)
}

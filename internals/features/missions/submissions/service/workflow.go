package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	"taskverse_backend/internals/features/missions/submissions/model"
)

// Erros do ciclo de vida de uma entrega. O controller mapeia cada um para o
// status HTTP adequado.
var (
	ErrTextoVazio           = errors.New("o texto da entrega não pode ser vazio")
	ErrMissaoNaoEncontrada  = errors.New("missão não encontrada")
	ErrJaEntregue           = errors.New("esta missão já foi entregue")
	ErrEntregaNaoEncontrada = errors.New("entrega não encontrada")
	ErrJaAprovada           = errors.New("esta entrega já foi aprovada")
)

// Store é o que o workflow precisa da camada de persistência. Em produção é
// o repositório GORM; nos testes, uma implementação em memória. Lookups
// separam "não existe" (found=false) de falha de acesso (err != nil): a
// primeira vira 404 no controller, a segunda sobe como erro genérico.
type Store interface {
	GetMission(ctx context.Context, id uuid.UUID) (missionModel.MissionModel, bool, error)
	GetSubmissionByMissionAndStudent(ctx context.Context, missionID, alunoID uuid.UUID) (model.SubmissionModel, bool, error)
	CreateSubmission(ctx context.Context, s *model.SubmissionModel) error
	GetSubmission(ctx context.Context, id uuid.UUID) (model.SubmissionModel, bool, error)
	SetSubmissionApproved(ctx context.Context, id uuid.UUID) error
}

// Workflow implementa a máquina de estados de uma entrega:
// (sem entrega) → aguardando → aprovada, com "aprovada" terminal.
type Workflow struct {
	store Store
}

func NewWorkflow(store Store) *Workflow {
	return &Workflow{store: store}
}

// Submit cria a entrega de um aluno para uma missão (transição
// sem-entrega → aguardando). Nenhuma linha é criada quando a validação falha.
func (w *Workflow) Submit(ctx context.Context, alunoID, missionID uuid.UUID, texto string) (model.SubmissionModel, error) {
	if strings.TrimSpace(texto) == "" {
		return model.SubmissionModel{}, ErrTextoVazio
	}

	if _, found, err := w.store.GetMission(ctx, missionID); err != nil {
		return model.SubmissionModel{}, err
	} else if !found {
		return model.SubmissionModel{}, ErrMissaoNaoEncontrada
	}

	if _, found, err := w.store.GetSubmissionByMissionAndStudent(ctx, missionID, alunoID); err != nil {
		return model.SubmissionModel{}, err
	} else if found {
		return model.SubmissionModel{}, ErrJaEntregue
	}

	sub := model.SubmissionModel{
		IDMissao:     missionID,
		IDAluno:      alunoID,
		TextoEntrega: texto,
		Status:       model.StatusAguardando,
	}
	if err := w.store.CreateSubmission(ctx, &sub); err != nil {
		// corrida entre a checagem e o insert: o índice único decide
		return model.SubmissionModel{}, err
	}
	return sub, nil
}

// Approve move uma entrega de aguardando para aprovada (transição terminal,
// sem caminho de volta). Aprovar duas vezes é rejeitado.
func (w *Workflow) Approve(ctx context.Context, submissionID uuid.UUID) (model.SubmissionModel, error) {
	sub, found, err := w.store.GetSubmission(ctx, submissionID)
	if err != nil {
		return model.SubmissionModel{}, err
	}
	if !found {
		return model.SubmissionModel{}, ErrEntregaNaoEncontrada
	}
	if sub.Status == model.StatusAprovada {
		return model.SubmissionModel{}, ErrJaAprovada
	}

	if err := w.store.SetSubmissionApproved(ctx, submissionID); err != nil {
		return model.SubmissionModel{}, err
	}
	sub.Status = model.StatusAprovada
	return sub, nil
}

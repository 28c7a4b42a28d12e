package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	"taskverse_backend/internals/features/missions/submissions/model"
	"taskverse_backend/internals/features/missions/submissions/service"
	"taskverse_backend/internals/helpers"
)

// GormStore implementa service.Store sobre o banco relacional.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetMission(ctx context.Context, id uuid.UUID) (missionModel.MissionModel, bool, error) {
	var m missionModel.MissionModel
	err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return missionModel.MissionModel{}, false, nil
	}
	if err != nil {
		return missionModel.MissionModel{}, false, err
	}
	return m, true, nil
}

func (s *GormStore) GetSubmissionByMissionAndStudent(ctx context.Context, missionID, alunoID uuid.UUID) (model.SubmissionModel, bool, error) {
	var sub model.SubmissionModel
	err := s.DB.WithContext(ctx).
		First(&sub, "id_missao = ? AND id_aluno = ?", missionID, alunoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SubmissionModel{}, false, nil
	}
	if err != nil {
		return model.SubmissionModel{}, false, err
	}
	return sub, true, nil
}

func (s *GormStore) CreateSubmission(ctx context.Context, sub *model.SubmissionModel) error {
	if err := s.DB.WithContext(ctx).Create(sub).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return service.ErrJaEntregue
		}
		return err
	}
	return nil
}

func (s *GormStore) GetSubmission(ctx context.Context, id uuid.UUID) (model.SubmissionModel, bool, error) {
	var sub model.SubmissionModel
	err := s.DB.WithContext(ctx).First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SubmissionModel{}, false, nil
	}
	if err != nil {
		return model.SubmissionModel{}, false, err
	}
	return sub, true, nil
}

func (s *GormStore) SetSubmissionApproved(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ?", id).
		Update("status", model.StatusAprovada).Error
}

// PendingRow alimenta a fila de correção do professor.
type PendingRow struct {
	ID             uuid.UUID `json:"id"`
	IDMissao       uuid.UUID `json:"id_missao"`
	IDAluno        uuid.UUID `json:"id_aluno"`
	TextoEntrega   string    `json:"texto_entrega"`
	Status         string    `json:"status"`
	DataEntrega    time.Time `json:"data_entrega"`
	MissaoTitulo   string    `json:"missao_titulo"`
	MissaoPontosXP int       `json:"missao_pontos_xp"`
	AlunoNome      string    `json:"aluno_nome"`
}

// ListPending retorna as entregas aguardando aprovação, mais novas primeiro.
func (s *GormStore) ListPending(ctx context.Context) ([]PendingRow, error) {
	var rows []PendingRow
	err := s.DB.WithContext(ctx).
		Table("entregas").
		Select(`entregas.id, entregas.id_missao, entregas.id_aluno,
			entregas.texto_entrega, entregas.status, entregas.data_entrega,
			missoes.titulo AS missao_titulo, missoes.pontos_xp AS missao_pontos_xp,
			usuarios.nome AS aluno_nome`).
		Joins("JOIN missoes ON missoes.id = entregas.id_missao").
		Joins("JOIN usuarios ON usuarios.id = entregas.id_aluno").
		Where("entregas.status = ?", model.StatusAguardando).
		Order("entregas.data_entrega DESC").
		Scan(&rows).Error
	return rows, err
}

// ListByStudent lista todas as entregas de um aluno (insumo do status derivado
// das missões e do progresso).
func (s *GormStore) ListByStudent(ctx context.Context, alunoID uuid.UUID) ([]model.SubmissionModel, error) {
	var subs []model.SubmissionModel
	err := s.DB.WithContext(ctx).
		Where("id_aluno = ?", alunoID).
		Find(&subs).Error
	return subs, err
}

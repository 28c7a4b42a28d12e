package service

import (
	"sort"

	"github.com/google/uuid"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	submissionModel "taskverse_backend/internals/features/missions/submissions/model"
)

// DerivedStatus é o status da missão na visão de um aluno, derivado da
// presença (e do status) da entrega dele. Nunca é gravado no banco.
type DerivedStatus string

const (
	StatusPendente DerivedStatus = "pendente" // sem entrega
	StatusEntregue DerivedStatus = "entregue" // entrega aguardando aprovação
	StatusAprovada DerivedStatus = "aprovada" // entrega aprovada
)

// rank fixo usado na ordenação das listas
func (s DerivedStatus) Rank() int {
	switch s {
	case StatusPendente:
		return 0
	case StatusEntregue:
		return 1
	case StatusAprovada:
		return 2
	}
	return 0
}

func (s DerivedStatus) Valid() bool {
	switch s {
	case StatusPendente, StatusEntregue, StatusAprovada:
		return true
	}
	return false
}

// EffectiveMission é a junção missão ⋈ entrega (no máximo uma) de um aluno.
type EffectiveMission struct {
	Mission missionModel.MissionModel
	Status  DerivedStatus
}

// DeriveStatus é uma função total e determinística: para qualquer par
// (missão, entregas do aluno) devolve exatamente um dos três status.
func DeriveStatus(mission missionModel.MissionModel, submissions []submissionModel.SubmissionModel) DerivedStatus {
	for _, s := range submissions {
		if s.IDMissao == mission.ID {
			if s.Status == submissionModel.StatusAprovada {
				return StatusAprovada
			}
			return StatusEntregue
		}
	}
	return StatusPendente
}

// BuildEffectiveMissions monta a visão efetiva de todas as missões para um
// aluno. As entregas são indexadas por missão antes do merge.
func BuildEffectiveMissions(missions []missionModel.MissionModel, submissions []submissionModel.SubmissionModel) []EffectiveMission {
	byMission := make(map[uuid.UUID]submissionModel.SubmissionModel, len(submissions))
	for _, s := range submissions {
		byMission[s.IDMissao] = s
	}

	out := make([]EffectiveMission, 0, len(missions))
	for _, m := range missions {
		status := StatusPendente
		if s, ok := byMission[m.ID]; ok {
			if s.Status == submissionModel.StatusAprovada {
				status = StatusAprovada
			} else {
				status = StatusEntregue
			}
		}
		out = append(out, EffectiveMission{Mission: m, Status: status})
	}
	return out
}

// FilterSort aplica o filtro por aba de status e por matéria, e ordena por
// matéria (lexicográfica) e depois pelo rank do status. A ordenação é estável:
// itens com chaves iguais preservam a ordem relativa de entrada.
func FilterSort(views []EffectiveMission, statusTab, materia string) []EffectiveMission {
	filtered := make([]EffectiveMission, 0, len(views))
	for _, v := range views {
		if statusTab != "" && statusTab != "todas" && string(v.Status) != statusTab {
			continue
		}
		if materia != "" && materia != "todas" && v.Mission.Materia != materia {
			continue
		}
		filtered = append(filtered, v)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Mission.Materia != filtered[j].Mission.Materia {
			return filtered[i].Mission.Materia < filtered[j].Mission.Materia
		}
		return filtered[i].Status.Rank() < filtered[j].Status.Rank()
	})
	return filtered
}

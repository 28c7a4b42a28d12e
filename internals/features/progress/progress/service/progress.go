package service

import (
	missionService "taskverse_backend/internals/features/missions/missions/service"
)

// xpPorNivel é o custo fixo de cada nível.
const xpPorNivel = 100

// Progress é o resumo de gamificação de um aluno. Todos os campos são
// derivados das missões aprovadas, nada é persistido.
type Progress struct {
	TotalXP            int `json:"total_xp"`
	Level              int `json:"level"`
	XPInCurrentLevel   int `json:"xp_in_current_level"`
	ProgressPercentage int `json:"progress_percentage"`
}

// ComputeProgress soma o XP das missões aprovadas e deriva nível e progresso.
// Nível 1 começa em 0 XP; cada 100 XP sobe um nível.
func ComputeProgress(views []missionService.EffectiveMission) Progress {
	total := 0
	for _, v := range views {
		if v.Status == missionService.StatusAprovada {
			total += v.Mission.PontosXP
		}
	}

	inLevel := total % xpPorNivel
	return Progress{
		TotalXP:            total,
		Level:              total/xpPorNivel + 1,
		XPInCurrentLevel:   inLevel,
		ProgressPercentage: inLevel * 100 / xpPorNivel,
	}
}

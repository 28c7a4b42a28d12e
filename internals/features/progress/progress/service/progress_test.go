package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	missionModel "taskverse_backend/internals/features/missions/missions/model"
	missionService "taskverse_backend/internals/features/missions/missions/service"
)

func view(xp int, status missionService.DerivedStatus) missionService.EffectiveMission {
	return missionService.EffectiveMission{
		Mission: missionModel.MissionModel{ID: uuid.New(), PontosXP: xp},
		Status:  status,
	}
}

func TestComputeProgress(t *testing.T) {
	t.Run("sem missões aprovadas", func(t *testing.T) {
		p := ComputeProgress([]missionService.EffectiveMission{
			view(10, missionService.StatusPendente),
			view(20, missionService.StatusEntregue),
		})
		assert.Equal(t, 0, p.TotalXP)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 0, p.XPInCurrentLevel)
		assert.Equal(t, 0, p.ProgressPercentage)
	})

	t.Run("só aprovadas somam XP", func(t *testing.T) {
		p := ComputeProgress([]missionService.EffectiveMission{
			view(10, missionService.StatusAprovada),
			view(20, missionService.StatusEntregue),
			view(30, missionService.StatusAprovada),
		})
		assert.Equal(t, 40, p.TotalXP)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 40, p.XPInCurrentLevel)
		assert.Equal(t, 40, p.ProgressPercentage)
	})

	t.Run("150 XP é nível 2 com metade do progresso", func(t *testing.T) {
		p := ComputeProgress([]missionService.EffectiveMission{
			view(100, missionService.StatusAprovada),
			view(50, missionService.StatusAprovada),
		})
		assert.Equal(t, 150, p.TotalXP)
		assert.Equal(t, 2, p.Level)
		assert.Equal(t, 50, p.XPInCurrentLevel)
		assert.Equal(t, 50, p.ProgressPercentage)
	})

	t.Run("fronteira exata de nível zera o progresso", func(t *testing.T) {
		p := ComputeProgress([]missionService.EffectiveMission{
			view(100, missionService.StatusAprovada),
		})
		assert.Equal(t, 100, p.TotalXP)
		assert.Equal(t, 2, p.Level)
		assert.Equal(t, 0, p.XPInCurrentLevel)
		assert.Equal(t, 0, p.ProgressPercentage)
	})

	t.Run("lista vazia", func(t *testing.T) {
		p := ComputeProgress(nil)
		assert.Equal(t, Progress{TotalXP: 0, Level: 1, XPInCurrentLevel: 0, ProgressPercentage: 0}, p)
	})
}

package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("meio da listagem", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 2, 20)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("listagem vazia ainda tem uma página", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("última página", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 3, 20)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("valores inválidos caem nos padrões", func(t *testing.T) {
		p := BuildPaginationFromPage(10, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(400))
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(401))
	assert.Equal(t, "FORBIDDEN", statusToErrorCode(403))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
}

package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMateria(t *testing.T) {
	for _, m := range Materias {
		assert.True(t, IsValidMateria(m), m)
	}
	assert.False(t, IsValidMateria("quimica"))
	assert.False(t, IsValidMateria("todas"))
	assert.False(t, IsValidMateria(""))
}

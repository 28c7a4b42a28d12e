package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name    string
		nome    string
		email   string
		login   string
		senha   string
		confirm string
		wantErr string
	}{
		{"entrada válida", "Ana Souza", "ana@escola.com", "ana", "segredo1", "segredo1", ""},
		{"nome vazio", "  ", "ana@escola.com", "ana", "segredo1", "segredo1", "Por favor, preencha todos os campos"},
		{"email vazio", "Ana", "", "ana", "segredo1", "segredo1", "Por favor, preencha todos os campos"},
		{"email inválido", "Ana", "ana-escola.com", "ana", "segredo1", "segredo1", "Formato de e-mail inválido"},
		{"senhas diferentes", "Ana", "ana@escola.com", "ana", "segredo1", "segredo2", "As senhas não coincidem"},
		{"senha curta", "Ana", "ana@escola.com", "ana", "12345", "12345", "A senha deve ter no mínimo 6 caracteres"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegisterInput(tc.nome, tc.email, tc.login, tc.senha, tc.confirm)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("ana", "segredo1"))
	assert.Error(t, ValidateLoginInput("", "segredo1"))
	assert.Error(t, ValidateLoginInput("ana", ""))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("aluno@123")
	require.NoError(t, err)
	assert.NotEqual(t, "aluno@123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "aluno@123"))
	assert.Error(t, CheckPasswordHash(hash, "outra-senha"))
}

package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateRegisterInput cobre as regras locais do cadastro, antes de qualquer
// ida ao banco: campos obrigatórios, confirmação e tamanho mínimo da senha.
func ValidateRegisterInput(nome, email, login, senha, confirmarSenha string) error {
	if strings.TrimSpace(nome) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(login) == "" ||
		senha == "" || confirmarSenha == "" {
		return errors.New("Por favor, preencha todos os campos")
	}
	if !isValidEmail(email) {
		return errors.New("Formato de e-mail inválido")
	}
	if senha != confirmarSenha {
		return errors.New("As senhas não coincidem")
	}
	if len(senha) < 6 {
		return errors.New("A senha deve ter no mínimo 6 caracteres")
	}
	return nil
}

func ValidateLoginInput(login, senha string) error {
	if strings.TrimSpace(login) == "" || senha == "" {
		return errors.New("Por favor, preencha todos os campos")
	}
	return nil
}

// =======================
// Password helpers
// =======================

func HashPassword(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, senha string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
}

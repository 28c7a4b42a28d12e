package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Session é o registro do usuário autenticado, extraído das claims pelo
// middleware de auth. Handlers recebem identidade/papel por aqui em vez de
// reler o token.
type Session struct {
	UserID uuid.UUID
	Nome   string
	Tipo   string // "aluno" | "professor"
}

// FromContext monta a Session a partir dos Locals preenchidos pelo middleware.
func FromContext(c *fiber.Ctx) (Session, error) {
	idStr, _ := c.Locals("user_id").(string)
	if idStr == "" {
		return Session{}, fiber.NewError(fiber.StatusUnauthorized, "Sessão ausente ou inválida")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Session{}, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido na sessão")
	}

	nome, _ := c.Locals("user_nome").(string)
	tipo, _ := c.Locals("user_tipo").(string)

	return Session{UserID: id, Nome: nome, Tipo: tipo}, nil
}

func (s Session) IsAluno() bool     { return s.Tipo == "aluno" }
func (s Session) IsProfessor() bool { return s.Tipo == "professor" }

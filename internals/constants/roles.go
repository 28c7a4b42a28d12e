package constants

import "fmt"

const (
	RoleAluno     = "aluno"
	RoleProfessor = "professor"
)

// Template das mensagens de erro de permissão
const (
	ErrOnlyStudentsCanAccess = "❌ Apenas alunos podem acessar o recurso %s."
	ErrOnlyTeachersCanAccess = "❌ Apenas professores podem acessar o recurso %s."
)

func RoleErrorAluno(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorProfessor(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AlunoOnly = []string{
		RoleAluno,
	}

	ProfessorOnly = []string{
		RoleProfessor,
	}
)

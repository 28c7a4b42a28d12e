package constants

// Matérias válidas para uma missão (conjunto fechado, igual ao enum do banco)
const (
	MateriaMatematica = "matematica"
	MateriaPortugues  = "portugues"
	MateriaCiencias   = "ciencias"
	MateriaHistoria   = "historia"
	MateriaGeografia  = "geografia"
)

var Materias = []string{
	MateriaMatematica,
	MateriaPortugues,
	MateriaCiencias,
	MateriaHistoria,
	MateriaGeografia,
}

// Dificuldades
const (
	DificuldadeFacil   = "facil"
	DificuldadeMedia   = "media"
	DificuldadeDificil = "dificil"
)

// Origem da missão
const (
	OrigemPadrao      = "padrao"
	OrigemCustomizada = "customizada"
)

func IsValidMateria(m string) bool {
	for _, v := range Materias {
		if v == m {
			return true
		}
	}
	return false
}

package intent

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Category é um tema inferido a partir do texto do usuário
type Category string

const (
	Recipes   Category = "recipes"
	Shopping  Category = "shopping"
	Nutrition Category = "nutrition"
	Planning  Category = "planning"
	General   Category = "general"
)

// All lista as categorias na ordem canônica
var All = []Category{Recipes, Shopping, Nutrition, Planning, General}

// IsValid verifica se a categoria pertence ao conjunto fechado
func (c Category) IsValid() bool {
	for _, known := range All {
		if c == known {
			return true
		}
	}
	return false
}

// matcher associa uma categoria ao padrão do seu vocabulário
type matcher struct {
	category Category
	pattern  *regexp.Regexp
}

// Cada padrão é avaliado de forma independente, não é uma cadeia de prioridade.
var matchers = []matcher{
	{Recipes, regexp.MustCompile(`(?i)receta|cocinar|preparar|plato|comida|cena|men[uú]`)},
	{Shopping, regexp.MustCompile(`(?i)compra|lista|ingredientes|supermercado`)},
	{Nutrition, regexp.MustCompile(`(?i)nutrici[oó]n|calor[ií]as|prote[ií]nas|dieta|saludable`)},
	{Planning, regexp.MustCompile(`(?i)planificar|semana|horario|organizar`)},
}

// Classify retorna as categorias cujo vocabulário aparece no texto.
// Quando nenhuma categoria casa, retorna {general}.
func Classify(text string) CategorySet {
	var found []Category
	for _, m := range matchers {
		if m.pattern.MatchString(text) {
			found = append(found, m.category)
		}
	}
	return NewCategorySet(found...)
}

// CategorySet é um conjunto de categorias, sempre em ordem canônica e sem repetições
type CategorySet struct {
	items []Category
}

// NewCategorySet cria um conjunto normalizado. Categorias desconhecidas são
// ignoradas e um conjunto vazio vira {general}. "general" só permanece quando
// é a única categoria.
func NewCategorySet(categories ...Category) CategorySet {
	present := make(map[Category]bool, len(categories))
	for _, c := range categories {
		if c.IsValid() {
			present[c] = true
		}
	}

	var items []Category
	for _, c := range All {
		if c != General && present[c] {
			items = append(items, c)
		}
	}
	if len(items) == 0 {
		items = []Category{General}
	}
	return CategorySet{items: items}
}

// Has verifica se a categoria está no conjunto
func (s CategorySet) Has(c Category) bool {
	for _, item := range s.Categories() {
		if item == c {
			return true
		}
	}
	return false
}

// Categories retorna uma cópia das categorias do conjunto
func (s CategorySet) Categories() []Category {
	if len(s.items) == 0 {
		return []Category{General}
	}
	out := make([]Category, len(s.items))
	copy(out, s.items)
	return out
}

// Strings retorna os nomes das categorias
func (s CategorySet) Strings() []string {
	categories := s.Categories()
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// Len retorna o tamanho do conjunto, nunca zero
func (s CategorySet) Len() int {
	return len(s.Categories())
}

// Equal compara dois conjuntos
func (s CategorySet) Equal(other CategorySet) bool {
	a, b := s.Categories(), other.Categories()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String implementa fmt.Stringer
func (s CategorySet) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}

// MarshalJSON serializa o conjunto como lista de nomes
func (s CategorySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

package recipe

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrRecipeNotFound = errors.New("receita não encontrada")
)

// MealType define o tipo de refeição de uma receita
type MealType string

const (
	MealBreakfast MealType = "desayuno"
	MealLunch     MealType = "comida"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "cena"
)

// MealTypes lista os tipos de refeição na ordem do dia
var MealTypes = []MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}

// IsValid verifica se o tipo de refeição é conhecido
func (m MealType) IsValid() bool {
	for _, t := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

// Recipe representa uma receita do catálogo
type Recipe struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	MealType     MealType          `json:"meal_type"`
	Calories     string            `json:"calories"`  // Texto livre, ex: "450 kcal"
	PrepTime     string            `json:"prep_time"` // Texto livre, ex: "30 min"
	Servings     int               `json:"servings"`
	ImageURL     string            `json:"image_url"`
	Instructions map[string]string `json:"instructions"` // Passo -> descrição
	CreatedAt    time.Time         `json:"created_at"`
}

// CaloriesValue retorna o número inicial do texto de calorias (0 se ausente)
func (r *Recipe) CaloriesValue() int {
	return LeadingNumber(r.Calories)
}

// PrepMinutes retorna o número inicial do texto de tempo de preparo (0 se ausente)
func (r *Recipe) PrepMinutes() int {
	return LeadingNumber(r.PrepTime)
}

// LeadingNumber lê o inteiro no início do texto, ignorando espaços à esquerda.
// "450 kcal" -> 450, "kcal" -> 0.
func LeadingNumber(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// DigitsNumber concatena todos os dígitos do texto e lê o inteiro resultante.
// "1.200 kcal" -> 1200, "" -> 0.
func DigitsNumber(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

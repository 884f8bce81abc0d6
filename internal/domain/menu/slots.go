package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/hugohenrick/liora/internal/domain/recipe"
)

var (
	ErrInvalidDay  = errors.New("dia inválido")
	ErrInvalidMeal = errors.New("tipo de refeição inválido")
)

// Days lista os dias do menu na ordem de exibição
var Days = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

var dayKeys = map[string]string{
	"Lunes":     "monday",
	"Martes":    "tuesday",
	"Miércoles": "wednesday",
	"Jueves":    "thursday",
	"Viernes":   "friday",
	"Sábado":    "saturday",
	"Domingo":   "sunday",
}

var mealKeys = map[recipe.MealType]string{
	recipe.MealBreakfast: "breakfast",
	recipe.MealLunch:     "lunch",
	recipe.MealSnack:     "snack",
	recipe.MealDinner:    "dinner",
}

// DayKey converte o nome do dia ("Lunes" ou "monday") na chave usada nas colunas
func DayKey(day string) (string, error) {
	if key, ok := dayKeys[day]; ok {
		return key, nil
	}
	lower := strings.ToLower(day)
	for _, key := range dayKeys {
		if key == lower {
			return key, nil
		}
	}
	return "", ErrInvalidDay
}

// DayName converte uma chave ("monday") ou nome em nome de exibição ("Lunes")
func DayName(day string) (string, error) {
	key, err := DayKey(day)
	if err != nil {
		return "", err
	}
	for name, k := range dayKeys {
		if k == key {
			return name, nil
		}
	}
	return "", ErrInvalidDay
}

// MealKey converte o tipo de refeição na chave usada nas colunas
func MealKey(meal recipe.MealType) (string, error) {
	key, ok := mealKeys[meal]
	if !ok {
		return "", ErrInvalidMeal
	}
	return key, nil
}

// SlotColumn retorna a coluna de weekly_menus para o dia e refeição, ex: monday_lunch_id
func SlotColumn(day string, meal recipe.MealType) (string, error) {
	dayKey, err := DayKey(day)
	if err != nil {
		return "", err
	}
	mealKey, err := MealKey(meal)
	if err != nil {
		return "", err
	}
	return dayKey + "_" + mealKey + "_id", nil
}

// Slot identifica uma posição do menu
type Slot struct {
	Day    string
	Meal   recipe.MealType
	Column string
}

// Slots lista todas as posições do menu, dia a dia, na ordem das refeições
func Slots() []Slot {
	slots := make([]Slot, 0, len(Days)*len(recipe.MealTypes))
	for _, day := range Days {
		for _, meal := range recipe.MealTypes {
			column, _ := SlotColumn(day, meal)
			slots = append(slots, Slot{Day: day, Meal: meal, Column: column})
		}
	}
	return slots
}

// SlotColumns retorna apenas os nomes das colunas, na ordem de Slots
func SlotColumns() []string {
	slots := Slots()
	columns := make([]string, len(slots))
	for i, s := range slots {
		columns[i] = s.Column
	}
	return columns
}

// DayForWeekday retorna o nome do dia do menu para um dia da semana
func DayForWeekday(w time.Weekday) string {
	// Days começa na segunda-feira
	return Days[(int(w)+6)%7]
}

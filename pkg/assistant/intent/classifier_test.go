package intent

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected []Category
	}{
		{name: "empty text", text: "", expected: []Category{General}},
		{name: "no vocabulary", text: "hello", expected: []Category{General}},
		{name: "greeting in spanish", text: "hola, ¿cómo estás?", expected: []Category{General}},
		{name: "recipe vocabulary", text: "quiero cocinar una receta", expected: []Category{Recipes}},
		{name: "single recipe word", text: "¿Qué hay de cena?", expected: []Category{Recipes}},
		{name: "case insensitive", text: "PREPARAR UN PLATO", expected: []Category{Recipes}},
		{name: "accented menu", text: "cambia el menú", expected: []Category{Recipes}},
		{name: "shopping", text: "lista del supermercado", expected: []Category{Shopping}},
		{name: "nutrition", text: "¿Cuántas calorías tiene?", expected: []Category{Nutrition}},
		{name: "nutrition upper accent", text: "NUTRICIÓN", expected: []Category{Nutrition}},
		{name: "planning", text: "organizar mi horario", expected: []Category{Planning}},
		{
			name:     "shopping and planning",
			text:     "planificar la compra de la semana",
			expected: []Category{Shopping, Planning},
		},
		{
			name:     "all categories",
			text:     "planificar una cena saludable y la lista de compra",
			expected: []Category{Recipes, Shopping, Nutrition, Planning},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tc.text)
			if !got.Equal(NewCategorySet(tc.expected...)) {
				t.Errorf("Classify(%q) = %s, expected %v", tc.text, got, tc.expected)
			}
		})
	}
}

func TestClassifyRecipeVocabularyOnly(t *testing.T) {
	t.Parallel()

	words := []string{"receta", "cocinar", "preparar", "plato", "comida", "cena", "menu"}
	for _, w := range words {
		got := Classify(w)
		if got.Len() != 1 || !got.Has(Recipes) {
			t.Errorf("Classify(%q) = %s, expected {recipes}", w, got)
		}
	}
}

func TestCategorySetNeverEmpty(t *testing.T) {
	t.Parallel()

	sets := []CategorySet{
		{},
		NewCategorySet(),
		NewCategorySet("unknown"),
		NewCategorySet(General),
		NewCategorySet(General, Recipes),
	}
	for _, s := range sets {
		if s.Len() == 0 {
			t.Errorf("expected non-empty set, got %s", s)
		}
	}
	if !NewCategorySet(General, Recipes).Equal(NewCategorySet(Recipes)) {
		t.Errorf("general must be dropped when another category is present")
	}
}

func TestCategorySetJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewCategorySet(Planning, Recipes, Planning))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `["recipes","planning"]` {
		t.Errorf("unexpected json: %s", data)
	}
}

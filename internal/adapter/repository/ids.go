package repository

import "github.com/google/uuid"

// validID indica se o identificador é um UUID aceito pelas colunas do banco
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validIDs filtra os identificadores que não são UUIDs
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			out = append(out, id)
		}
	}
	return out
}

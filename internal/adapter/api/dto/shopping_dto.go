package dto

// ShoppingItemRequest representa os dados para adicionar um item à lista de compras
type ShoppingItemRequest struct {
	Name     string   `json:"name" binding:"required"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Category string   `json:"category"`
	Days     []string `json:"days"`
}

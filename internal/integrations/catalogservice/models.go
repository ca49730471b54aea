package catalogservice

// Product модель продукта из CatalogService
type Product struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	OwnerID        int64   `json:"owner_id"`
	ManagerIDs     []int64 `json:"manager_ids"`
	BookingEnabled bool    `json:"booking_enabled"`
}

// IsManagedBy проверяет, является ли пользователь владельцем или менеджером продукта
func (p *Product) IsManagedBy(userID int64) bool {
	if p.OwnerID == userID {
		return true
	}
	for _, id := range p.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

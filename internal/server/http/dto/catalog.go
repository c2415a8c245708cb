package dto

// StockStatusRequest flips product availability.
type StockStatusRequest struct {
	StockStatus string `json:"stockStatus" binding:"required"`
}

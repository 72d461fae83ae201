package catalog

type CreateVehicleRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
}

type UpdateVehicleRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	PricePerDay *float64 `json:"price_per_day"`
}

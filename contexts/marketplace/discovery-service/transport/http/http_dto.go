package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ArtworkData struct {
	TokenID     string  `json:"token_id"`
	Title       string  `json:"title"`
	Creator     string  `json:"creator"`
	Price       string  `json:"price"`
	PriceAmount float64 `json:"price_amount"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListArtworksResponse struct {
	Status string        `json:"status"`
	Data   []ArtworkData `json:"data"`
}

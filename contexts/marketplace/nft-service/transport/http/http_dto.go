package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NFTData struct {
	TokenID     string `json:"token_id"`
	Title       string `json:"title"`
	Creator     string `json:"creator"`
	Price       string `json:"price"`
	PriceAmount string `json:"price_amount"`
	Currency    string `json:"currency"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Listed      bool   `json:"listed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type NFTResponse struct {
	Status string  `json:"status"`
	Data   NFTData `json:"data"`
}

type NFTListResponse struct {
	Status string    `json:"status"`
	Data   []NFTData `json:"data"`
}

type MintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
}

type ListForSaleRequest struct {
	Price string `json:"price"`
}

type PurchaseRequest struct {
	ExpectedPrice string `json:"expected_price,omitempty"`
}

type PurchaseResponse struct {
	Status string `json:"status"`
	Data   struct {
		Receipt string `json:"receipt"`
		TokenID string `json:"token_id"`
		Owner   string `json:"owner"`
	} `json:"data"`
}

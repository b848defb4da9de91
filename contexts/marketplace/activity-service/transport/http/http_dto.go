package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ActivityData struct {
	EntryID    string `json:"entry_id"`
	Kind       string `json:"kind"`
	TokenID    string `json:"token_id"`
	Title      string `json:"title"`
	Actor      string `json:"actor"`
	Price      string `json:"price,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type ListActivityResponse struct {
	Status string         `json:"status"`
	Data   []ActivityData `json:"data"`
}

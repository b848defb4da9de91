package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterUploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

type AssetResponse struct {
	Status string `json:"status"`
	Data   struct {
		AssetID     string `json:"asset_id"`
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
		SizeBytes   int64  `json:"size_bytes"`
		URL         string `json:"url"`
		UploadedAt  string `json:"uploaded_at"`
	} `json:"data"`
}

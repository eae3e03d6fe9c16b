package http

// ErrorResponse mirrors the error envelope for swagger
type ErrorResponse struct {
	StatusCode int    `json:"status_code" example:"502"`
	Status     string `json:"status"      example:"Bad Gateway"`
	Code       int    `json:"code"        example:"9"`
	Error      string `json:"error"       example:"open-meteo: Latitude must be in range of -90 to 90°. Given: 123.0."`
	RequestID  string `json:"request_id"  example:"meteopage/abc-000001"`
}

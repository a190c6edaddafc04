// File: internal/api/response.go
package api

// Response 通用回應模型，錯誤時 msg 為使用者可讀訊息
// swagger:model api.Response
type Response struct {
	Msg     string `json:"msg,omitempty" example:"Logout successful"`
	Success bool   `json:"success,omitempty" example:"true"`
	Error   string `json:"error,omitempty"`
}

// RateLimitResponse 超過請求頻率時的回應
// swagger:model api.RateLimitResponse
type RateLimitResponse struct {
	Status  int    `json:"status" example:"429"`
	Message string `json:"message" example:"Too many requests, please try again later"`
}

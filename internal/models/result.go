package models

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type UploadResponse struct {
	Message   string    `json:"message"`
	ATSReport ATSReport `json:"ats_report"`
}

type ChatRequest struct {
	Question string `form:"question" json:"question" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// NoHistoryResponse is what the plain report mode answers with an empty transcript.
type NoHistoryResponse struct {
	Error string `json:"error"`
}

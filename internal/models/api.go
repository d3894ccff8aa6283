package models

type FeedbackRequest struct {
	To       []string `json:"to" binding:"required"`
	HTMLBody string   `json:"html_body" binding:"required"`
}

type FeedbackResponse struct {
	EmailID string `json:"email_id,omitempty"`
	Subject string `json:"subject"`
}

type ExplainRequest struct {
	Question      string `json:"question" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
}

type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

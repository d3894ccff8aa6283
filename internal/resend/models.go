package resend

// Request models
type SendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Response models
type SendEmailResponse struct {
	ID string `json:"id"`
}

package requests

type EmailPayload struct {
	ReceiverEmail string `json:"receiver_email"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	IsHTML        bool   `json:"is_html"`
}

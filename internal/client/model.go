package client

// Message is what a PushProvider delivers to a single device token.
// Data values are already strings.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

type RelayRequest struct {
	To        string            `json:"to"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	SecretKey string            `json:"secret_key,omitempty"`
}

type RelayResponse struct {
	MessageID string `json:"message_id"`
}

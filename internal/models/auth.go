package models

// LoginRequest is the request structure for login. Credentials are not
// validated here: any pair outside the allow-list answers 401, never 400, so
// callers cannot tell an empty username from a wrong one.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token string `json:"token"`
}

// SendMessageRequest is the request structure for sending a message. There is
// deliberately no sender or timestamp field: both are set server-side.
type SendMessageRequest struct {
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

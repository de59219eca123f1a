package domain

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatTurn is one message of a user's append-only transcript.
type ChatTurn struct {
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Reply is what the dialogue engine produces for one message.
// Prediction is nil when no property details were supplied.
type Reply struct {
	Text       string
	Prediction *int64
	Intent     Intent
}

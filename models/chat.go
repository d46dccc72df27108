package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID  string `json:"sessionId"`
	ActivityID string `json:"activityId" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// ReplyStatus classifies the outcome of a captain chat call.
type ReplyStatus string

const (
	ReplyOK       ReplyStatus = "ok"
	ReplyFailed   ReplyStatus = "failed"
	ReplyTimedOut ReplyStatus = "timeout"
)

// ChatReply is the captain's answer. Text always holds something the UI
// can render: the model's reply on success, the fixed fallback otherwise.
type ChatReply struct {
	SessionID string      `json:"sessionId"`
	Status    ReplyStatus `json:"status"`
	Text      string      `json:"text"`
}

// ChatMessage is one entry of a conversation transcript.
type ChatMessage struct {
	ID     string `json:"id"`
	Sender string `json:"sender"` // "user" or "captain"
	Text   string `json:"text"`
	Time   string `json:"time"` // "15:04"
}

// ChatContext is the cached per-session conversation state.
type ChatContext struct {
	ActivityID string        `json:"activityId"`
	Messages   []ChatMessage `json:"messages"`
}

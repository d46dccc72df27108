package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitapp/catalog"
	"fitapp/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// FallbackBusy is the only user-facing text for any provider failure.
	FallbackBusy = "系統忙碌中，請稍後再試。"
	// FallbackEmpty covers a successful call that produced no text.
	FallbackEmpty = "抱歉，目前無法回應。"
	// Greeting seeds every new conversation.
	Greeting = "你好！我是隊長 Kevin，有什麼問題都可以問我喔！"

	personaPrompt = "You are a helpful sports activity captain named Kevin. " +
		"Answer the user's question politely and concisely in Traditional Chinese (zh-TW). " +
		"Keep it friendly and encouraging."
)

// ChatService answers activity questions in the captain's voice.
type ChatService interface {
	Ask(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
	History(ctx context.Context, sessionID string) (*models.ChatContext, error)
}

// DefaultChatService templates the activity context into a prompt, runs the
// generator under a deadline and maps every failure mode to a fixed
// fallback string. No retries, no streaming.
type DefaultChatService struct {
	Gen        Generator
	Activities catalog.ActivityRepository
	Contexts   ContextStore
	Timeout    time.Duration
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *DefaultChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Ask resolves the activity, asks the generator and returns a reply whose
// Text is always renderable: the model's answer on success, a fallback on
// failure or timeout. The only error returned is an unknown activity id.
func (s *DefaultChatService) Ask(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	activity, err := s.Activities.GetByID(req.ActivityID)
	if err != nil {
		return models.ChatReply{}, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	chatCtx, err := s.Contexts.Get(ctx, sessionID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("Failed to load chat context", zap.Error(err))
		}
		chatCtx = &models.ChatContext{}
	}
	if len(chatCtx.Messages) == 0 {
		chatCtx.Messages = append(chatCtx.Messages, models.ChatMessage{
			ID:     uuid.New().String(),
			Sender: "captain",
			Text:   Greeting,
			Time:   s.now().Format("15:04"),
		})
	}
	chatCtx.ActivityID = activity.ID
	chatCtx.Messages = append(chatCtx.Messages, models.ChatMessage{
		ID:     uuid.New().String(),
		Sender: "user",
		Text:   req.Text,
		Time:   s.now().Format("15:04"),
	})

	status, text := s.generate(ctx, buildPrompt(activity, req.Text))

	chatCtx.Messages = append(chatCtx.Messages, models.ChatMessage{
		ID:     uuid.New().String(),
		Sender: "captain",
		Text:   text,
		Time:   s.now().Format("15:04"),
	})
	if err := s.Contexts.Set(ctx, sessionID, chatCtx); err != nil && s.Logger != nil {
		s.Logger.Warn("Failed to save chat context", zap.Error(err))
	}

	return models.ChatReply{SessionID: sessionID, Status: status, Text: text}, nil
}

func (s *DefaultChatService) History(ctx context.Context, sessionID string) (*models.ChatContext, error) {
	return s.Contexts.Get(ctx, sessionID)
}

func (s *DefaultChatService) generate(ctx context.Context, prompt string) (models.ReplyStatus, string) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := s.Gen.Generate(callCtx, prompt)
	switch {
	case err == nil && strings.TrimSpace(text) == "":
		return models.ReplyOK, FallbackEmpty
	case err == nil:
		return models.ReplyOK, text
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded):
		if s.Logger != nil {
			s.Logger.Warn("Captain chat timed out", zap.Error(err))
		}
		return models.ReplyTimedOut, FallbackBusy
	default:
		if s.Logger != nil {
			s.Logger.Error("Captain chat provider error", zap.Error(err))
		}
		return models.ReplyFailed, FallbackBusy
	}
}

// buildPrompt joins the persona, the activity context summary and the
// user's question into a single prompt string.
func buildPrompt(a models.Activity, userText string) string {
	contextSummary := fmt.Sprintf("%s at %s on %s %s. Level: %s. Price: %.0f. Highlights: %s.",
		a.Title, a.Venue, a.Date, a.Time, a.Level, a.Price, strings.Join(a.Highlights, ", "))
	return fmt.Sprintf("%s\nContext of the activity: %s\nUser question: %s", personaPrompt, contextSummary, userText)
}

package intelligence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fitapp/catalog"
	"fitapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) Generate(context.Context, string) (string, error) {
	return g.text, g.err
}

// blockingGenerator waits until the call context is cancelled.
type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func newTestChatService(gen Generator) *DefaultChatService {
	return &DefaultChatService{
		Gen:        gen,
		Activities: catalog.NewMemoryActivityRepo(),
		Contexts:   NewMemoryContextStore(),
		Timeout:    time.Second,
		Now:        func() time.Time { return time.Date(2026, 8, 29, 14, 5, 0, 0, time.Local) },
	}
}

func TestAsk_Success(t *testing.T) {
	svc := newTestChatService(stubGenerator{text: "歡迎來打球！"})

	reply, err := svc.Ask(context.Background(), models.ChatRequest{
		SessionID:  "s1",
		ActivityID: "1",
		Text:       "需要自備球嗎？",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", reply.SessionID)
	assert.Equal(t, models.ReplyOK, reply.Status)
	assert.Equal(t, "歡迎來打球！", reply.Text)

	history, err := svc.History(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, history.Messages, 3)
	assert.Equal(t, "captain", history.Messages[0].Sender)
	assert.Equal(t, Greeting, history.Messages[0].Text)
	assert.Equal(t, "user", history.Messages[1].Sender)
	assert.Equal(t, "需要自備球嗎？", history.Messages[1].Text)
	assert.Equal(t, "captain", history.Messages[2].Sender)
	assert.Equal(t, "歡迎來打球！", history.Messages[2].Text)
	assert.Equal(t, "1", history.ActivityID)
}

func TestAsk_ProviderFailureFallsBack(t *testing.T) {
	svc := newTestChatService(stubGenerator{err: errors.New("quota exceeded")})

	reply, err := svc.Ask(context.Background(), models.ChatRequest{
		ActivityID: "2",
		Text:       "場地在哪？",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReplyFailed, reply.Status)
	assert.Equal(t, FallbackBusy, reply.Text)
	assert.NotEmpty(t, reply.SessionID)
}

func TestAsk_TimeoutFallsBack(t *testing.T) {
	svc := newTestChatService(blockingGenerator{})
	svc.Timeout = 10 * time.Millisecond

	reply, err := svc.Ask(context.Background(), models.ChatRequest{
		SessionID:  "s2",
		ActivityID: "1",
		Text:       "還有名額嗎？",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReplyTimedOut, reply.Status)
	assert.Equal(t, FallbackBusy, reply.Text)
}

func TestAsk_EmptyAnswerFallsBack(t *testing.T) {
	svc := newTestChatService(stubGenerator{text: "  \n "})

	reply, err := svc.Ask(context.Background(), models.ChatRequest{
		SessionID:  "s3",
		ActivityID: "1",
		Text:       "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReplyOK, reply.Status)
	assert.Equal(t, FallbackEmpty, reply.Text)
}

func TestAsk_UnknownActivity(t *testing.T) {
	svc := newTestChatService(stubGenerator{text: "never called"})

	_, err := svc.Ask(context.Background(), models.ChatRequest{
		ActivityID: "999",
		Text:       "hi",
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestAsk_GreetingSeededOnce(t *testing.T) {
	svc := newTestChatService(stubGenerator{text: "好的"})
	ctx := context.Background()
	req := models.ChatRequest{SessionID: "s4", ActivityID: "1", Text: "第一題"}

	_, err := svc.Ask(ctx, req)
	require.NoError(t, err)
	req.Text = "第二題"
	_, err = svc.Ask(ctx, req)
	require.NoError(t, err)

	history, err := svc.History(ctx, "s4")
	require.NoError(t, err)
	greetings := 0
	for _, m := range history.Messages {
		if m.Text == Greeting {
			greetings++
		}
	}
	assert.Equal(t, 1, greetings)
	assert.Len(t, history.Messages, 5)
}

func TestBuildPrompt(t *testing.T) {
	a := models.Activity{
		Title: "週末籃球友誼賽", Venue: "大安運動中心",
		Date: "明天", Time: "14:00-16:00",
		Level: models.LevelBeginner, Price: 150,
		Highlights: []string{"提供飲水", "有更衣室"},
	}
	prompt := buildPrompt(a, "需要自備球嗎？")

	assert.True(t, strings.Contains(prompt, "週末籃球友誼賽 at 大安運動中心 on 明天 14:00-16:00."))
	assert.True(t, strings.Contains(prompt, "Price: 150."))
	assert.True(t, strings.Contains(prompt, "提供飲水, 有更衣室"))
	assert.True(t, strings.Contains(prompt, "User question: 需要自備球嗎？"))
}

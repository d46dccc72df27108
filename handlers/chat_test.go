package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"fitapp/catalog"
	"fitapp/services/intelligence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("provider down")
}

func newChatRouter(gen intelligence.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &intelligence.DefaultChatService{
		Gen:        gen,
		Activities: catalog.NewMemoryActivityRepo(),
		Contexts:   intelligence.NewMemoryContextStore(),
		Timeout:    time.Second,
	}
	h := NewChatHandler(svc)

	router := gin.New()
	router.POST("/api/chat", h.Ask)
	router.GET("/api/chat/:sessionID", h.History)
	return router
}

func TestChatAsk_ProviderFailureStaysRenderable(t *testing.T) {
	router := newChatRouter(failingGenerator{})

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{
		"sessionId":  "s1",
		"activityId": "1",
		"text":       "需要自備球嗎？",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reply struct {
		SessionID string `json:"sessionId"`
		Status    string `json:"status"`
		Text      string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "s1", reply.SessionID)
	assert.Equal(t, "failed", reply.Status)
	assert.Equal(t, intelligence.FallbackBusy, reply.Text)
}

func TestChatAsk_UnknownActivity(t *testing.T) {
	router := newChatRouter(failingGenerator{})

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{
		"activityId": "999",
		"text":       "hi",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatAsk_MissingFields(t *testing.T) {
	router := newChatRouter(failingGenerator{})

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"text": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHistory(t *testing.T) {
	router := newChatRouter(failingGenerator{})

	w := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{
		"sessionId":  "s2",
		"activityId": "1",
		"text":       "場地在哪？",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/chat/s2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		ActivityID string `json:"activityId"`
		Messages   []struct {
			Sender string `json:"sender"`
			Text   string `json:"text"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Equal(t, "1", history.ActivityID)
	require.Len(t, history.Messages, 3)
	assert.Equal(t, intelligence.Greeting, history.Messages[0].Text)
	assert.Equal(t, "場地在哪？", history.Messages[1].Text)
	assert.Equal(t, intelligence.FallbackBusy, history.Messages[2].Text)
}

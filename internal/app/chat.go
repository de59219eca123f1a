package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"realestate_chatbot/internal/domain"
)

// ChatService composes the dialogue engine with transcript persistence.
type ChatService struct {
	engine   *Engine
	history  domain.ChatHistoryRepository
	cache    domain.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewChatService wires the service; cache may be nil.
func NewChatService(e *Engine, h domain.ChatHistoryRepository, c domain.Cache, ttl time.Duration) *ChatService {
	return &ChatService{engine: e, history: h, cache: c, cacheTTL: ttl, now: time.Now}
}

func historyKey(userID string) string { return fmt.Sprintf("chat:history:%s", userID) }

// Chat answers msg. For an authenticated caller both turns are appended to
// the caller's transcript; a failed append is logged and the reply is still
// returned.
func (s *ChatService) Chat(ctx context.Context, caller *domain.Principal, msg string, details *domain.PropertyDetails) (domain.Reply, error) {
	reply, err := s.engine.Handle(msg, details)
	if err != nil {
		return domain.Reply{}, err
	}
	if caller == nil || caller.UserID == "" {
		return reply, nil
	}

	ts := s.now().UTC()
	turns := []domain.ChatTurn{
		{Text: msg, Sender: domain.SenderUser, Timestamp: ts},
		{Text: reply.Text, Sender: domain.SenderBot, Timestamp: ts},
	}
	if err := s.history.AppendUserChat(ctx, caller.UserID, turns); err != nil {
		log.Warn().Err(err).Str("user_id", caller.UserID).Msg("chat history save failed")
		return reply, nil
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, historyKey(caller.UserID)); err != nil {
			log.Warn().Err(err).Str("user_id", caller.UserID).Msg("chat history cache invalidation failed")
		}
	}
	return reply, nil
}

// History returns the transcript of target (the caller when empty). Only
// admins may read other users' transcripts.
func (s *ChatService) History(ctx context.Context, caller domain.Principal, target string) ([]domain.ChatTurn, error) {
	if caller.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if target == "" {
		target = caller.UserID
	}
	if !caller.IsAdmin() && caller.UserID != target {
		return nil, fmt.Errorf("%w: cannot read another user's history", domain.ErrForbidden)
	}

	key := historyKey(target)
	if s.cache != nil {
		var cached []domain.ChatTurn
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	turns, err := s.history.LoadUserChat(ctx, target)
	if err != nil {
		return nil, err
	}
	if turns == nil {
		turns = []domain.ChatTurn{}
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, turns, int(s.cacheTTL.Seconds()))
	}
	return turns, nil
}

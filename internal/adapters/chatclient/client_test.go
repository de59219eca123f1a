package chatclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"realestate_chatbot/internal/adapters/chatclient"
	"realestate_chatbot/internal/domain"
)

func TestClient_Chat_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(503)
		default:
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["message"] != "hi" {
				t.Errorf("body: %v", body)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"reply": "hello", "prediction": nil})
		}
	}))
	defer ts.Close()

	cl, err := chatclient.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	got, err := cl.Chat(ctx, "hi", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Reply != "hello" || got.Prediction != nil {
		t.Fatalf("unexpected reply: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Chat_BadRequestCarriesDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"title":"Invalid property details","detail":"squareFootage must be a positive number"}`))
	}))
	defer ts.Close()

	cl, _ := chatclient.New(ts.URL, 100)
	sq := 0.0
	_, err := cl.Chat(context.Background(), "price", &domain.PropertyDetails{Location: "Pune", SquareFootage: &sq})
	if !errors.Is(err, chatclient.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestClient_LoginKeepsToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "tok-1"})
			_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]any{"id": "u1", "role": "user"}})
		case "/chat/history/u1":
			if r.Header.Get("x-access-token") != "tok-1" {
				w.WriteHeader(401)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"messages": []map[string]any{{"text": "hi", "sender": "user"}}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cl, _ := chatclient.New(ts.URL, 100)
	ctx := context.Background()
	u, err := cl.Login(ctx, "a@b.c", "secret1")
	if err != nil || u.ID != "u1" {
		t.Fatalf("login: %v %+v", err, u)
	}
	turns, err := cl.History(ctx, "u1")
	if err != nil || len(turns) != 1 || turns[0].Sender != domain.SenderUser {
		t.Fatalf("history: %v %+v", err, turns)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(401) }))
	defer ts.Close()

	cl, _ := chatclient.New(ts.URL, 100)
	if _, err := cl.History(context.Background(), ""); !errors.Is(err, chatclient.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestNew_RejectsBadURL(t *testing.T) {
	if _, err := chatclient.New("not a url", 1); err == nil {
		t.Fatalf("expected error")
	}
}

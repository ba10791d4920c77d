package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("path = %q, want /v1/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Radiohead" {
			t.Errorf("q = %q, want Radiohead", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "secret", 5*time.Second)
	resp, err := client.Do(context.Background(), &Request{
		Path:  "search",
		Query: map[string]string{"q": "Radiohead"},
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !resp.OK() {
		t.Errorf("OK() = false, status %d", resp.StatusCode)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestClient_Do_ErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	resp, err := client.Do(context.Background(), &Request{Path: "artists/x/top-tracks"})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", resp.StatusCode)
	}
	wait, ok := resp.RetryAfter()
	if !ok || wait != 3*time.Second {
		t.Errorf("RetryAfter() = %v, %v; want 3s, true", wait, ok)
	}
}

func TestClient_Do_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, "", time.Second)
	if _, err := client.Do(context.Background(), &Request{Path: "search"}); err == nil {
		t.Error("expected error for closed server")
	}
}

func TestResponse_RetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   time.Duration
		wantOK bool
	}{
		{"absent", "", 0, false},
		{"seconds", "2", 2 * time.Second, true},
		{"negative", "-4", 0, true},
		{"garbage", "soon", 0, false},
		{"past date", "Wed, 21 Oct 2015 07:28:00 GMT", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{Header: http.Header{}}
			if tt.header != "" {
				resp.Header.Set("Retry-After", tt.header)
			}
			got, ok := resp.RetryAfter()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("RetryAfter() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequest_String(t *testing.T) {
	if got := (&Request{Path: "search"}).String(); got != "GET search" {
		t.Errorf("String() = %q", got)
	}
}

func TestFetchToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			t.Errorf("BasicAuth() = %q, %q, %v", user, pass, ok)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	token, err := FetchToken(context.Background(), srv.URL, "id", "secret")
	if err != nil {
		t.Fatalf("FetchToken() error = %v", err)
	}
	if token != "tok" {
		t.Errorf("token = %q, want tok", token)
	}
}

func TestFetchToken_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid_client"}`, nil},
		{"missing token", http.StatusOK, `{"token_type":"Bearer"}`, ErrNoAccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := FetchToken(context.Background(), srv.URL, "id", "secret")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestGoogleProviderExchange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "codigo" {
			http.Error(w, "bad code", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"g-123","email":"ana@exemplo.com","email_verified":true,"name":"Ana"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewGoogleProvider("client", "secret", "http://localhost/callback").WithEndpoints(oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, srv.URL+"/userinfo")

	profile, err := p.Exchange(context.Background(), "codigo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Subject != "g-123" || profile.Email != "ana@exemplo.com" || profile.Name != "Ana" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	if _, err := p.Exchange(context.Background(), "outro"); err == nil {
		t.Fatalf("expected error for rejected code")
	}
}

func TestGoogleProviderAuthCodeURL(t *testing.T) {
	p := NewGoogleProvider("client", "secret", "http://localhost/callback")
	raw := p.AuthCodeURL("estado")
	if !strings.HasPrefix(raw, "https://accounts.google.com/") {
		t.Fatalf("unexpected auth url %s", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Query().Get("state") != "estado" || u.Query().Get("client_id") != "client" {
		t.Fatalf("unexpected query %s", u.RawQuery)
	}
}

func TestNewState(t *testing.T) {
	a, err := NewState()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := NewState()
	if a == "" || a == b {
		t.Fatalf("expected distinct random states, got %q and %q", a, b)
	}
}

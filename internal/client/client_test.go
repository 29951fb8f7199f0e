package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agrimitra/agrimitra/internal/log"
)

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["message"] != "hello" || req["context"] != "general" || req["language"] != "en" {
			t.Errorf("request = %v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"response":  "hi there",
			"timestamp": "2026-08-28T10:00:00Z",
			"aiSource":  "gemini",
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", log.NewNop())
	reply, err := c.Chat(context.Background(), "hello", "general", "en")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply.Response != "hi there" || reply.AISource != "gemini" {
		t.Errorf("reply = %+v", reply)
	}
	if reply.Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}
}

func TestChat_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Message is required"})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", log.NewNop())
	_, err := c.Chat(context.Background(), "", "general", "en")
	if err == nil {
		t.Fatal("Chat() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "Message is required") {
		t.Errorf("error = %v, want server message included", err)
	}
}

func TestLocationWeatherSoil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/location":
			_, _ = w.Write([]byte(`{"lat":28.6139,"lon":77.209,"city":"New Delhi","region":"Delhi","country":"India"}`))
		case "/api/weather":
			_, _ = w.Write([]byte(`{"temperature":32,"humidity":65,"condition":"Partly cloudy","wind_kph":12}`))
		case "/api/soil":
			_, _ = w.Write([]byte(`{"ph":6.5,"moisture":20,"nitrogen":45,"phosphorus":25,"potassium":180}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", log.NewNop())
	ctx := context.Background()

	loc, err := c.Location(ctx)
	if err != nil || loc.City != "New Delhi" {
		t.Errorf("Location() = %+v, %v", loc, err)
	}
	snap, err := c.Weather(ctx)
	if err != nil || snap.Temperature != 32 {
		t.Errorf("Weather() = %+v, %v", snap, err)
	}
	soil, err := c.Soil(ctx)
	if err != nil || soil.PH != 6.5 {
		t.Errorf("Soil() = %+v, %v", soil, err)
	}
}

func TestDetectDisease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "leaf.jpg" {
			t.Errorf("filename = %q", header.Filename)
		}
		if r.FormValue("plantType") != "tomato" {
			t.Errorf("plantType = %q", r.FormValue("plantType"))
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"detection": "Leaf spot"})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", log.NewNop())
	got, err := c.DetectDisease(context.Background(), "leaf.jpg", []byte{1, 2, 3}, "tomato")
	if err != nil {
		t.Fatalf("DetectDisease() error = %v", err)
	}
	if got != "Leaf spot" {
		t.Errorf("detection = %q", got)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/", log.NewNop())
	if err := c.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

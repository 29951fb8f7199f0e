package i18n

import (
	"strings"
	"testing"
)

func TestT_English(t *testing.T) {
	got := T(LangEN, "cropBot.title")
	if got != "Crop Recommendation Assistant" {
		t.Errorf("T(en, cropBot.title) = %q", got)
	}
}

func TestT_Malayalam(t *testing.T) {
	got := T(LangML, "cropBot.title")
	if got != "വിള ശുപാർശ സഹായി" {
		t.Errorf("T(ml, cropBot.title) = %q", got)
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	// recommendationError has no Malayalam translation
	got := T(LangML, "cropBot.recommendationError")
	want := T(LangEN, "cropBot.recommendationError")
	if got != want {
		t.Errorf("T(ml, cropBot.recommendationError) = %q, want English fallback %q", got, want)
	}
}

func TestT_UnknownLanguage(t *testing.T) {
	got := T("fr", "marketBot.title")
	if got != "Market Analysis Assistant" {
		t.Errorf("T(fr, marketBot.title) = %q, want English fallback", got)
	}
}

func TestT_UnknownKey(t *testing.T) {
	got := T(LangEN, "no.such.key")
	if got != "no.such.key" {
		t.Errorf("T(en, no.such.key) = %q, want the key itself", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", LangEN},
		{"EN", LangEN},
		{"ml", LangML},
		{" Malayalam ", LangML},
		{"", LangEN},
		{"de", LangEN},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEveryEnglishBotKeyHasContent(t *testing.T) {
	for key, msg := range englishMessages {
		if strings.TrimSpace(msg) == "" {
			t.Errorf("empty English message for key %q", key)
		}
	}
}

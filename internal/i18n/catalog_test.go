package i18n

import "testing"

func TestResolve(t *testing.T) {
	if got := Resolve("error.authentication.failed", LocaleEN); got != "Invalid username or password" {
		t.Fatalf("unexpected en message: %q", got)
	}
	if got := Resolve("error.authentication.failed", LocaleJA); got != "ユーザー名またはパスワードが正しくありません" {
		t.Fatalf("unexpected ja message: %q", got)
	}
}

func TestResolve_FallbackToEnglish(t *testing.T) {
	// unknown locale falls back to the English catalog
	if got := Resolve("menu.reports", Locale("fr")); got != "Reports" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestResolve_UnknownKeyReturnsKey(t *testing.T) {
	if got := Resolve("no.such.key", LocaleEN); got != "no.such.key" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   Locale
	}{
		{"", LocaleEN},
		{"ja", LocaleJA},
		{"ja-JP,ja;q=0.9,en;q=0.8", LocaleJA},
		{"zh-CN,zh;q=0.9", LocaleZH},
		{"en-US,en;q=0.5", LocaleEN},
		{"fr-FR,fr;q=0.9", LocaleEN},
		{"garbage;;;", LocaleEN},
	}
	for _, tc := range cases {
		if got := ParseAcceptLanguage(tc.header); got != tc.want {
			t.Fatalf("ParseAcceptLanguage(%q) = %s, want %s", tc.header, got, tc.want)
		}
	}
}

func TestParseLocale(t *testing.T) {
	if loc, ok := ParseLocale("zh"); !ok || loc != LocaleZH {
		t.Fatalf("expected zh to be recognized, got %s/%v", loc, ok)
	}
	if loc, ok := ParseLocale("de"); ok || loc != DefaultLocale {
		t.Fatalf("expected fallback for unsupported locale, got %s/%v", loc, ok)
	}
}

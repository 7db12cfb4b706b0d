package config

import "testing"

func TestBuildVoiceTable(t *testing.T) {
	table := BuildVoiceTable(SupportedLanguages)

	t.Run("covers every supported language", func(t *testing.T) {
		for lang := range SupportedLanguages {
			voice := table[lang]
			if voice == "" {
				t.Fatalf("language %q has no voice", lang)
			}
			found := false
			for _, v := range TTSVoices {
				if v == voice {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("language %q mapped to unknown voice %q", lang, voice)
			}
		}
	})

	t.Run("pinned groups", func(t *testing.T) {
		pinned := map[string]string{"en": "alloy", "fr": "echo", "hi": "fable", "es": "nova", "ru": "onyx", "zh": "shimmer"}
		for lang, want := range pinned {
			if got := table[lang]; got != want {
				t.Fatalf("voice for %q = %q; want %q", lang, got, want)
			}
		}
	})

	t.Run("deterministic across builds", func(t *testing.T) {
		again := BuildVoiceTable(SupportedLanguages)
		for lang, voice := range table {
			if again[lang] != voice {
				t.Fatalf("voice for %q changed between builds: %q vs %q", lang, voice, again[lang])
			}
		}
	})

	t.Run("unknown language falls back to default voice", func(t *testing.T) {
		if got := table.Voice("xx"); got != table[DefaultLanguage] {
			t.Fatalf("Voice(xx) = %q; want default %q", got, table[DefaultLanguage])
		}
	})
}

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"es", "es"},
		{"en", "en"},
		{"xx", "en"},
		{"", "en"},
	}
	for _, c := range cases {
		if got := NormalizeLanguage(c.in); got != c.want {
			t.Fatalf("NormalizeLanguage(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("es"); got != "Spanish" {
		t.Fatalf("LanguageName(es) = %q", got)
	}
	if got := LanguageName("zz"); got != "zz" {
		t.Fatalf("LanguageName(zz) = %q", got)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SMART_SUMMARIZER_TEST_KEY", "set")
	if got := GetEnvOrDefault("SMART_SUMMARIZER_TEST_KEY", "def"); got != "set" {
		t.Fatalf("got %q", got)
	}
	if got := GetEnvOrDefault("SMART_SUMMARIZER_MISSING_KEY", "def"); got != "def" {
		t.Fatalf("got %q", got)
	}
}

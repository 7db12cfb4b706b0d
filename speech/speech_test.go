package speech

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Dhanvanth23/Smart-Summarizer/config"
)

func writeAudioFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	mod := time.Now().Add(-age)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCleanupAudioFilesKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeAudioFile(t, dir, fmt.Sprintf("summary_%d.mp3", i), time.Duration(i)*time.Minute)
	}
	// Staging temp files are not the sweep's to reap.
	tempPath := writeAudioFile(t, dir, "temp_abc.mp3", time.Hour)

	CleanupAudioFiles(dir, 2, time.Hour)

	remaining, _ := filepath.Glob(filepath.Join(dir, "summary_*.mp3"))
	if len(remaining) != 2 {
		t.Fatalf("kept %d files; want 2: %v", len(remaining), remaining)
	}
	if _, err := os.Stat(tempPath); err != nil {
		t.Fatalf("sweep removed a staging file: %v", err)
	}
}

func TestCleanupAudioFilesDropsAged(t *testing.T) {
	dir := t.TempDir()
	fresh := writeAudioFile(t, dir, "summary_fresh.mp3", time.Minute)
	stale := writeAudioFile(t, dir, "summary_stale.mp3", 2*time.Hour)

	CleanupAudioFiles(dir, 30, time.Hour)

	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh file removed: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("stale file survived the sweep")
	}
}

func TestCleanupAudioFilesMissingDirIsNoOp(t *testing.T) {
	CleanupAudioFiles(filepath.Join(t.TempDir(), "nope"), 10, time.Hour)
}

func TestSynthesizeFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "es" {
			t.Errorf("tl = %q; want es", got)
		}
		w.Write([]byte("fake-mp3-bytes"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	s := NewSynthesizer("", config.BuildVoiceTable(config.SupportedLanguages), dir)
	s.SetFallbackEndpoint(ts.URL, ts.Client())

	name, err := s.Synthesize(context.Background(), "hola", "es")
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if !strings.HasPrefix(name, "summary_") || !strings.HasSuffix(name, ".mp3") {
		t.Fatalf("artifact name = %q", name)
	}
	if strings.ContainsRune(name, filepath.Separator) {
		t.Fatalf("Synthesize must return a bare filename, got %q", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil || string(data) != "fake-mp3-bytes" {
		t.Fatalf("artifact contents: %q err=%v", data, err)
	}
}

func TestSynthesizeFallbackLocaleRemap(t *testing.T) {
	var gotLang string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("tl")
		w.Write([]byte("audio"))
	}))
	defer ts.Close()

	s := NewSynthesizer("", config.BuildVoiceTable(config.SupportedLanguages), t.TempDir())
	s.SetFallbackEndpoint(ts.URL, ts.Client())

	if _, err := s.Synthesize(context.Background(), "你好", "zh"); err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if gotLang != "zh-CN" {
		t.Fatalf("fallback locale = %q; want zh-CN", gotLang)
	}
}

func TestSynthesizeFallbackRetriesWithEnglish(t *testing.T) {
	var langs []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("tl")
		langs = append(langs, lang)
		if lang != "en" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("audio"))
	}))
	defer ts.Close()

	s := NewSynthesizer("", config.BuildVoiceTable(config.SupportedLanguages), t.TempDir())
	s.SetFallbackEndpoint(ts.URL, ts.Client())

	if _, err := s.Synthesize(context.Background(), "text", "yi"); err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if len(langs) != 2 || langs[0] != "yi" || langs[1] != "en" {
		t.Fatalf("fallback language attempts = %v; want [yi en]", langs)
	}
}

func TestSynthesizeBothStagesFail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	s := NewSynthesizer("", config.BuildVoiceTable(config.SupportedLanguages), t.TempDir())
	s.SetFallbackEndpoint(ts.URL, ts.Client())

	_, err := s.Synthesize(context.Background(), "text", "en")
	if !errors.Is(err, ErrSynthesisFailed) {
		t.Fatalf("err = %v; want ErrSynthesisFailed", err)
	}
}

func TestSynthesizeRunsSweepFirst(t *testing.T) {
	dir := t.TempDir()
	stale := writeAudioFile(t, dir, "summary_doomed.mp3", 3*time.Hour)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("audio"))
	}))
	defer ts.Close()

	s := NewSynthesizer("", config.BuildVoiceTable(config.SupportedLanguages), dir)
	s.SetFallbackEndpoint(ts.URL, ts.Client())

	if _, err := s.Synthesize(context.Background(), "text", "en"); err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatal("retention sweep did not run before synthesis")
	}
}

func TestStageUploadKeepsMP3Name(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("not really audio, so the re-encode cannot succeed")

	path, cleanup, err := StageUpload(strings.NewReader(string(payload)), dir)
	if err != nil {
		t.Fatalf("StageUpload: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "temp_") || !strings.HasSuffix(base, ".mp3") {
		t.Errorf("staged file name = %q, want temp_*.mp3", base)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading staged file: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("staged contents differ from upload")
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("cleanup left %s behind", path)
	}
}

func TestTranscribeWithoutKey(t *testing.T) {
	w := NewWhisperTranscriber("")
	_, err := w.Transcribe(context.Background(), "nope.mp3")
	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Fatalf("err = %v; want ErrTranscriptionFailed", err)
	}
}

package textproc

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeInput(t *testing.T) {
	long := strings.Repeat("word ", 20)

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty", "", "", true},
		{"whitespace only", "   \n\t  ", "", true},
		{"too short", "short text", "", true},
		{"collapses whitespace", "  " + strings.ReplaceAll(long, " ", "  \n"), strings.TrimSpace(long), false},
		{"accepted as-is", strings.TrimSpace(long), strings.TrimSpace(long), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := NormalizeInput(c.in)
			if c.wantErr {
				if !errors.Is(err, ErrTextTooShort) {
					t.Fatalf("NormalizeInput(%q) err = %v; want ErrTextTooShort", c.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeInput(%q) unexpected error: %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("NormalizeInput(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestTruncateForDisplay(t *testing.T) {
	if got := TruncateForDisplay("abc", 10); got != "abc" {
		t.Fatalf("short text modified: %q", got)
	}
	long := strings.Repeat("x", 1500)
	got := TruncateForDisplay(long, 1000)
	if len(got) != 1003 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated length = %d, suffix %q", len(got), got[len(got)-3:])
	}
}

func TestExtractiveSummary(t *testing.T) {
	t.Run("first three sentences", func(t *testing.T) {
		text := "One fact here. Two facts here. Three facts here. Four facts here."
		want := "One fact here. Two facts here. Three facts here."
		if got := ExtractiveSummary(text, 150); got != want {
			t.Fatalf("ExtractiveSummary = %q; want %q", got, want)
		}
	})

	t.Run("exactly three sentences are kept whole", func(t *testing.T) {
		text := "The committee approved the rezoning plan after a lengthy debate. " +
			"Residents raised concerns about traffic along the corridor. " +
			"A revised proposal goes back to the planning office next month."
		want := "The committee approved the rezoning plan after a lengthy debate. " +
			"Residents raised concerns about traffic along the corridor. " +
			"A revised proposal goes back to the planning office next month."
		if got := ExtractiveSummary(text, 150); got != want {
			t.Fatalf("ExtractiveSummary = %q; want the three sentences intact", got)
		}
	})

	t.Run("few sentences truncates to max length", func(t *testing.T) {
		text := strings.Repeat("a", 200)
		got := ExtractiveSummary(text, 150)
		if len(got) != 153 || !strings.HasSuffix(got, "...") {
			t.Fatalf("got length %d: %q", len(got), got)
		}
	})

	t.Run("short text passes through", func(t *testing.T) {
		if got := ExtractiveSummary("tiny", 150); got != "tiny" {
			t.Fatalf("got %q", got)
		}
	})
}

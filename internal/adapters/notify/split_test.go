package notify

import (
	"strings"
	"testing"
)

func TestSplitMessageShortText(t *testing.T) {
	parts := SplitMessage("-Absentees-\nNo one is absent")
	if len(parts) != 1 {
		t.Fatalf("want 1 part, got %d", len(parts))
	}
}

func TestSplitMessageEmpty(t *testing.T) {
	if parts := SplitMessage("  \n "); parts != nil {
		t.Fatalf("want nil for blank text, got %v", parts)
	}
}

func TestSplitMessagePrefersNewlines(t *testing.T) {
	line := strings.Repeat("あ", 100)
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString(line)
		b.WriteString("\n")
	}
	parts := SplitMessage(b.String())
	if len(parts) < 2 {
		t.Fatalf("expected the text to be split, got %d part(s)", len(parts))
	}
	for i, part := range parts {
		if len([]rune(part)) > messageLimit {
			t.Fatalf("part %d exceeds the limit", i)
		}
		if strings.HasPrefix(part, "\n") || strings.HasSuffix(part, "\n") {
			t.Fatalf("part %d has dangling newlines", i)
		}
	}
}

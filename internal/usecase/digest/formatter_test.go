package digest

import (
	"errors"
	"strings"
	"testing"
	"time"

	"absence-digest-bot/internal/domain"
)

func TestFormatLineAllDay(t *testing.T) {
	event := domain.RawEvent{
		Title:    "有給休暇",
		IsAllDay: true,
		Start:    time.Date(2021, 10, 4, 0, 0, 0, 0, tokyo),
		End:      time.Date(2021, 10, 8, 0, 0, 0, 0, tokyo),
		Creator:  "yukiko.orui@example.com",
	}
	line, err := FormatLine(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "【ALL-DAY】 orui yukiko 10/4〜10/8 all day"
	if line != want {
		t.Fatalf("want %q, got %q", want, line)
	}
}

func TestFormatLineHalfDay(t *testing.T) {
	event := domain.RawEvent{
		Title:   "午前休暇",
		Start:   time.Date(2021, 10, 21, 10, 0, 0, 0, tokyo),
		End:     time.Date(2021, 10, 21, 10, 30, 0, 0, tokyo),
		Creator: "yukiko.orui@example.com",
	}
	line, err := FormatLine(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "【HALF-DAY】 orui yukiko 10/21 10:00〜10:30"
	if line != want {
		t.Fatalf("want %q, got %q", want, line)
	}
}

func TestFormatLineIsDeterministic(t *testing.T) {
	event := domain.RawEvent{
		Title:   "休暇",
		Start:   time.Date(2021, 10, 21, 13, 0, 0, 0, tokyo),
		End:     time.Date(2021, 10, 21, 17, 0, 0, 0, tokyo),
		Creator: "taro.yamada@example.com",
	}
	first, err := FormatLine(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := FormatLine(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("formatting is not deterministic: %q vs %q", first, second)
	}
}

func TestDisplayName(t *testing.T) {
	name, err := DisplayName("yukiko.orui@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "orui yukiko" {
		t.Fatalf("want %q, got %q", "orui yukiko", name)
	}
}

func TestDisplayNameMalformed(t *testing.T) {
	for _, id := range []domain.Identity{
		"orui@example.com",
		"yukiko.orui",
		".orui@example.com",
		"yukiko.@example.com",
		"",
	} {
		if _, err := DisplayName(id); !errors.Is(err, ErrMalformedIdentity) {
			t.Fatalf("%q: want ErrMalformedIdentity, got %v", id, err)
		}
	}
}

func TestComposeDigestPrimaryEmpty(t *testing.T) {
	text, deliver := ComposeDigest(nil, true)
	if !deliver {
		t.Fatalf("the primary announcement is always delivered")
	}
	want := "-Absentees-\nNo one is absent"
	if text != want {
		t.Fatalf("want %q, got %q", want, text)
	}
}

func TestComposeDigestPrimaryWithLines(t *testing.T) {
	lines := []string{"line one", "line two"}
	text, deliver := ComposeDigest(lines, true)
	if !deliver {
		t.Fatalf("expected delivery")
	}
	if !strings.HasPrefix(text, "-Absentees-\n") {
		t.Fatalf("missing primary header: %q", text)
	}
	if text != "-Absentees-\nline one\nline two" {
		t.Fatalf("unexpected digest: %q", text)
	}
}

func TestComposeDigestCatchUpWithLines(t *testing.T) {
	text, deliver := ComposeDigest([]string{"late line"}, false)
	if !deliver {
		t.Fatalf("expected delivery")
	}
	if text != "-Absentees added yesterday-\nlate line" {
		t.Fatalf("unexpected digest: %q", text)
	}
}

func TestComposeDigestCatchUpEmptySuppressesOutput(t *testing.T) {
	text, deliver := ComposeDigest(nil, false)
	if deliver {
		t.Fatalf("an empty catch-up run must not be delivered")
	}
	if text != "" {
		t.Fatalf("want empty text, got %q", text)
	}
}

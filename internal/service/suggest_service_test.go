package service

import (
	"context"
	"testing"
	"time"
)

func TestSuggestCaption(t *testing.T) {
	s := NewSuggestService(time.Millisecond)

	result, err := s.Suggest(context.Background(), "product launch announcement", SuggestModeCaption)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if result.Caption == "" {
		t.Error("expected a suggested caption")
	}
	if result.ImageURL != "" {
		t.Error("caption mode should not return an image")
	}
	if len(result.Hashtags) == 0 {
		t.Error("expected hashtags derived from the prompt")
	}
}

func TestSuggestImage(t *testing.T) {
	s := NewSuggestService(time.Millisecond)

	result, err := s.Suggest(context.Background(), "office", SuggestModeImage)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if result.ImageURL == "" {
		t.Error("expected a suggested image URL")
	}
}

func TestSuggestUnknownMode(t *testing.T) {
	s := NewSuggestService(time.Millisecond)

	if _, err := s.Suggest(context.Background(), "x", "video"); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func TestHashtagsFromPrompt(t *testing.T) {
	tags := hashtagsFromPrompt("new product LAUNCH for our shop!")

	want := []string{"#Product", "#Launch", "#Shop"}
	if len(tags) != len(want) {
		t.Fatalf("got %d hashtags %v, want %d", len(tags), tags, len(want))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %s, want %s", i, tags[i], want[i])
		}
	}
}

func TestSuggestCancelled(t *testing.T) {
	s := NewSuggestService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Suggest(ctx, "x", SuggestModeCaption); err == nil {
		t.Fatal("expected a context error when cancelled")
	}
}

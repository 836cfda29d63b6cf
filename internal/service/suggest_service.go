package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/postcal/postcal/internal/transfer"
)

// SuggestService is the content-suggestion collaborator behind the
// "Generate with AI" buttons. This implementation returns canned
// content after a simulated model delay; suggested content goes through
// the same validation as manual input when it is saved, and posts built
// from it carry the ai-generated origin so the approval gate applies.
type SuggestService interface {
	Suggest(ctx context.Context, prompt, mode string) (*transfer.SuggestResult, error)
}

const (
	SuggestModeCaption = "captions"
	SuggestModeImage   = "images"
)

var suggestedCaptions = []string{
	"✨ Embracing new beginnings and endless possibilities! What inspires you today? 💫 #Motivation #Inspiration",
	"🌟 Creating moments that matter. Join us on this journey! 🚀 #Community #Growth",
	"💡 Innovation meets creativity. Ready to make an impact? 🎯 #Business #Success",
	"🎨 Where vision becomes reality. Let's build something amazing together! 🌈 #Creative #Vision",
}

var suggestedImages = []string{
	"https://images.unsplash.com/photo-1557804506-669a67965ba0?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1551434678-e076c223a692?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600&h=400&fit=crop",
}

type suggestService struct {
	delay time.Duration
}

func NewSuggestService(delay time.Duration) SuggestService {
	return &suggestService{delay: delay}
}

func (s *suggestService) Suggest(ctx context.Context, prompt, mode string) (*transfer.SuggestResult, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	switch mode {
	case SuggestModeCaption, "":
		return &transfer.SuggestResult{
			Caption:  suggestedCaptions[rand.Intn(len(suggestedCaptions))],
			Hashtags: hashtagsFromPrompt(prompt),
		}, nil
	case SuggestModeImage:
		return &transfer.SuggestResult{
			ImageURL: suggestedImages[rand.Intn(len(suggestedImages))],
		}, nil
	default:
		err := errors.New("unknown suggestion mode: " + mode)
		slog.Info(err.Error())
		return nil, err
	}
}

func hashtagsFromPrompt(prompt string) []string {
	var tags []string
	for _, word := range strings.Fields(prompt) {
		word = strings.ToLower(strings.Trim(word, ".,!?"))
		if len(word) > 3 {
			tags = append(tags, "#"+strings.ToUpper(word[:1])+word[1:])
		}
		if len(tags) == 3 {
			break
		}
	}
	return tags
}

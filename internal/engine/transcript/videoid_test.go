package transcript

import (
	"errors"
	"testing"
)

func TestResolveVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"

	tests := []struct {
		name  string
		input string
	}{
		{"raw id", id},
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch with params before v", "https://www.youtube.com/watch?app=desktop&v=dQw4w9WgXcQ"},
		{"watch with params after v", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s"},
		{"short domain", "https://youtu.be/dQw4w9WgXcQ"},
		{"short domain with query", "https://youtu.be/dQw4w9WgXcQ?si=abc"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ"},
		{"e path", "https://www.youtube.com/e/dQw4w9WgXcQ"},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ"},
		{"uppercase host", "https://WWW.YOUTUBE.COM/WATCH?V=dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveVideoID(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != id {
				t.Errorf("got %q, want %q", got, id)
			}
		})
	}
}

func TestResolveVideoIDVerbatim(t *testing.T) {
	// Exactly 11 characters is taken as-is, no charset validation.
	got, err := ResolveVideoID("not a URL!!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "not a URL!!" {
		t.Errorf("got %q", got)
	}
}

func TestResolveVideoIDInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "dQw4w9WgXc"},
		{"unrelated URL", "https://example.com/watch?v=dQw4w9WgXcQ"},
		{"id too long in URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQQ"},
		{"plain text", "hello world, this is not a video"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveVideoID(tt.input)
			var invalid *InvalidVideoIDError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidVideoIDError, got %v", err)
			}
		})
	}
}

func TestResolveVideoIDSameAcrossShapes(t *testing.T) {
	shapes := []string{
		"dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
	}
	for _, s := range shapes {
		got, err := ResolveVideoID(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
		if got != "dQw4w9WgXcQ" {
			t.Errorf("%q: got %q", s, got)
		}
	}
}

package data

import (
	"testing"

	"github.com/Automattic/elasticsearch-langdetect/profile"
)

func TestSourceLoadsProfileVariant(t *testing.T) {
	t.Parallel()

	profiles, err := profile.Load(Source(), "profile", Languages)
	if err != nil {
		t.Fatalf("profile.Load: %v", err)
	}
	if len(profiles) != len(Languages) {
		t.Fatalf("got %d profiles, want %d", len(profiles), len(Languages))
	}
	for i, lang := range Languages {
		if profiles[i].Name != lang {
			t.Errorf("profiles[%d].Name = %q, want %q", i, profiles[i].Name, lang)
		}
	}
}

func TestSourceLoadsShortTextVariant(t *testing.T) {
	t.Parallel()

	profiles, err := profile.Load(Source(), "short-text", Languages)
	if err != nil {
		t.Fatalf("profile.Load: %v", err)
	}
	if len(profiles) != len(Languages) {
		t.Fatalf("got %d profiles, want %d", len(profiles), len(Languages))
	}
}

func TestSourceBuildsStore(t *testing.T) {
	t.Parallel()

	profiles, err := profile.Load(Source(), "profile", Languages)
	if err != nil {
		t.Fatalf("profile.Load: %v", err)
	}
	store, err := profile.Build(profiles)
	if err != nil {
		t.Fatalf("profile.Build: %v", err)
	}
	if store.Len() != len(Languages) {
		t.Errorf("store.Len() = %d, want %d", store.Len(), len(Languages))
	}
}

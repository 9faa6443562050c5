package profile

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p, err := Decode([]byte(`{"name":"en","n_words":[10,20,30],"freq":{"e":5,"th":4,"the":3}}`))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if p.Name != "en" || p.NWords != [MaxNGramLength]int64{10, 20, 30} || p.Freq["the"] != 3 {
			t.Errorf("Decode produced unexpected profile: %+v", p)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte(`{"n_words":[1,1,1],"freq":{"a":1}}`))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Decode with missing name: got %v, want ErrInvalid", err)
		}
	})

	t.Run("ngram too long", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte(`{"name":"en","n_words":[1,1,1],"freq":{"abcd":1}}`))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Decode with overlong n-gram: got %v, want ErrInvalid", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := Decode([]byte(`not json`))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Decode with malformed JSON: got %v, want ErrInvalid", err)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(`{"name":"en","n_words":[1,1,1],"freq":{"a":1}}`)},
		"ja.json": &fstest.MapFile{Data: []byte(`{"name":"ja","n_words":[1,1,1],"freq":{"あ":1}}`)},
	}

	t.Run("loads requested languages in order", func(t *testing.T) {
		t.Parallel()
		profiles, err := Load(fsys, "", []string{"ja", "en"})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(profiles) != 2 || profiles[0].Name != "ja" || profiles[1].Name != "en" {
			t.Errorf("Load returned %+v, want [ja, en] in order", profiles)
		}
	})

	t.Run("skips empty codes", func(t *testing.T) {
		t.Parallel()
		profiles, err := Load(fsys, "", []string{"en", ""})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(profiles) != 1 {
			t.Errorf("Load with empty code present: got %d profiles, want 1", len(profiles))
		}
	})

	t.Run("missing language is a ConfigurationError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(fsys, "", []string{"en", "xx"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Load with missing language: got %v, want ErrNotFound", err)
		}
	})

	t.Run("missing variant path is a ConfigurationError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(fsys, "short-text", []string{"en"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Load with missing variant: got %v, want ErrNotFound", err)
		}
	})
}

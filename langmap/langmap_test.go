package langmap

import "testing"

func TestMapApply(t *testing.T) {
	t.Parallel()

	m := Map{"zh-cn": "zh-Hans", "zh-tw": "zh-Hant"}

	tests := []struct {
		code string
		want string
	}{
		{"zh-cn", "zh-Hans"},
		{"zh-tw", "zh-Hant"},
		{"en", "en"}, // absent key passes through unchanged
	}
	for _, tt := range tests {
		if got := m.Apply(tt.code); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestMapApplyNil(t *testing.T) {
	t.Parallel()
	var m Map
	if got := m.Apply("en"); got != "en" {
		t.Errorf("nil Map.Apply(%q) = %q, want unchanged", "en", got)
	}
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{"en", "en"},
		{"zh-cn", "zh-CN"},
		{"", ""},
		{"not a tag!!", "not a tag!!"},
	}
	for _, tt := range tests {
		if got := Canonicalize(tt.code); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

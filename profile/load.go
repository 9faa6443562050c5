package profile

import (
	"fmt"
	"io/fs"
	"path"
)

// Source resolves a language code (and optional profile variant) to its raw
// JSON profile bytes. data.Source() (a sub-tree of an embed.FS) and
// os.DirFS both satisfy it, matching fs.FS exactly.
type Source = fs.FS

// Load reads one LangProfile per requested language code from src, under
// the given variant ("" selects the default/unvariant path). It mirrors
// spec.md §6's "profile: profile variant selector" option and §7's
// construction-time ConfigurationError contract: any missing or invalid
// profile aborts the whole load, the store is never partially usable.
func Load(src Source, variant string, languages []string) ([]LangProfile, error) {
	profiles := make([]LangProfile, 0, len(languages))
	for _, lang := range languages {
		if lang == "" {
			continue
		}
		p, err := loadOne(src, variant, lang)
		if err != nil {
			return nil, fmt.Errorf("profile: loading %q (variant %q): %w", lang, variant, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func loadOne(src Source, variant, lang string) (LangProfile, error) {
	resourcePath := path.Join(variant, lang+".json")
	data, err := fs.ReadFile(src, resourcePath)
	if err != nil {
		return LangProfile{}, fmt.Errorf("%w: %s", ErrNotFound, resourcePath)
	}
	return Decode(data)
}

// Package data embeds the bundled demo language profiles.
//
// These are small, hand-built frequency tables for a handful of
// languages — enough to exercise the CLI and the detector end to end,
// not a production-accuracy trained corpus. Training profiles from raw
// text is out of scope; see profile.Build for the aggregation step a
// real deployment would point at its own trained profiles instead.
package data

import (
	"embed"
	"io/fs"
)

//go:embed profiles
var profilesFS embed.FS

// Languages lists the demo profiles bundled under both variants.
var Languages = []string{"en", "fr", "de", "es"}

// Source returns an fs.FS rooted at the embedded profiles directory, ready
// to pass to profile.Load alongside a variant ("profile" or "short-text").
func Source() fs.FS {
	sub, err := fs.Sub(profilesFS, "profiles")
	if err != nil {
		// profilesFS is compiled in with the "profiles" subtree guaranteed
		// present; a failure here means the embed directive itself is broken.
		panic(err)
	}
	return sub
}

// Package theme resolves the effective color theme from an ordered list of
// optional sources: cookie, then the legacy local-storage flag, then the
// system preference. First present wins.
package theme

const (
	Dark  = "dark"
	Light = "light"
)

// Valid reports whether v is an accepted theme value.
func Valid(v string) bool {
	return v == Dark || v == Light
}

// Source is one place a theme preference may live. Ok is false when the
// source holds no preference.
type Source interface {
	Theme() (value string, ok bool)
}

// Resolve consults sources in priority order and returns the first valid
// preference, or fallback when none is present.
func Resolve(fallback string, sources ...Source) string {
	for _, src := range sources {
		if v, ok := src.Theme(); ok && Valid(v) {
			return v
		}
	}
	return fallback
}

// CookieSource reads the `theme` cookie value ("dark"/"light").
type CookieSource struct {
	Value string
}

func (s CookieSource) Theme() (string, bool) {
	if s.Value == "" {
		return "", false
	}
	return s.Value, true
}

// LegacySource reads the pre-cookie local-storage flag, which stored
// "true"/"false" under `darkMode`. Kept for backward compatibility with
// transcripts of clients that never re-saved their preference.
type LegacySource struct {
	DarkMode string
}

func (s LegacySource) Theme() (string, bool) {
	switch s.DarkMode {
	case "true":
		return Dark, true
	case "false":
		return Light, true
	}
	return "", false
}

// SystemSource carries the client's prefers-color-scheme media query result.
type SystemSource struct {
	PrefersDark *bool
}

func (s SystemSource) Theme() (string, bool) {
	if s.PrefersDark == nil {
		return "", false
	}
	if *s.PrefersDark {
		return Dark, true
	}
	return Light, true
}

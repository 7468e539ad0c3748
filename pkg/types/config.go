package types

import "time"

// HTTPConfig holds settings for fetching data documents over HTTP.
type HTTPConfig struct {
	// Timeout is the HTTP client timeout. Zero leaves the transport's own
	// behavior in place; the loader sets no deadline of its own.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "labinfos/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DataConfig locates the data documents. Each entry is a local path or an
// http(s) URL.
type DataConfig struct {
	Publications string `json:"publications" yaml:"publications"`
	Team         string `json:"team" yaml:"team"`
	NEC          string `json:"nec" yaml:"nec"`
	Site         string `json:"site" yaml:"site"`
}

// ListingConfig holds settings shared by every listing surface.
type ListingConfig struct {
	HTTPConfig `yaml:",inline"`

	Data DataConfig `json:"data" yaml:"data"`

	// Locale is the BCP 47 tag used for collation (default "pt-BR").
	Locale string `json:"locale" yaml:"locale"`

	// Origin is the scheme and host the rendered page is served from.
	// Links to any other origin open in a new tab.
	Origin string `json:"origin" yaml:"origin"`
}

// PageConfig holds settings for rendering an HTML page.
type PageConfig struct {
	ListingConfig `yaml:",inline"`

	// Input is the HTML page to fill in.
	Input string `json:"input" yaml:"input"`

	// Output is where the rendered page is written ("-" for stdout).
	Output string `json:"output" yaml:"output"`
}

// Defaults used when the configuration leaves a field empty.
const (
	DefaultLocale    = "pt-BR"
	DefaultOrigin    = "http://localhost"
	DefaultUserAgent = "labinfos/0.1"
)

// DefaultData returns the document locations the site uses out of the box.
func DefaultData() DataConfig {
	return DataConfig{
		Publications: "data/publications.json",
		Team:         "data/team.json",
		NEC:          "data/nec.json",
		Site:         "data/site.json",
	}
}

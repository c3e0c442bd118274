package mdhtml

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8         bool
	escapeURLs   bool
	frontMatter  bool
	standalone   bool
	title        string
	defaultTitle string
}

func newRenderConfig(opts []RenderOption) renderConfig {
	var cfg renderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithOSC8 enables or disables OSC 8 hyperlinks in terminal output.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithEscapedURLs HTML-escapes link targets before they are placed in the
// href attribute. Targets are written verbatim by default.
func WithEscapedURLs(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.escapeURLs = enabled
	}
}

// WithFrontMatter strips a leading YAML, TOML or JSON metadata block before
// the input is lexed.
func WithFrontMatter(strip bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = strip
	}
}

// WithStandalone wraps HTML output in a minimal document with the given title.
// An empty title falls back to the title declared in stripped front matter
// and then to the WithDefaultTitle value.
func WithStandalone(title string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.standalone = true
		cfg.title = title
	}
}

// WithDefaultTitle sets the standalone document title used when neither
// WithStandalone nor the front matter provides one.
func WithDefaultTitle(title string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.defaultTitle = title
	}
}

func (cfg renderConfig) documentTitle(fm frontMatter) string {
	if cfg.title != "" {
		return cfg.title
	}
	if t := fm.title(); t != "" {
		return t
	}
	return cfg.defaultTitle
}

package mdhtml

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// frontMatterFields holds the metadata keys the renderer understands. Unknown
// keys are ignored.
type frontMatterFields struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// decode parses the metadata block according to its delimiter: YAML for
// "---", TOML for "+++" and JSON for ";;;".
func (fm frontMatter) decode() (frontMatterFields, error) {
	var fields frontMatterFields
	switch fm.delim {
	case "---":
		if err := yaml.Unmarshal(fm.meta, &fields); err != nil {
			return frontMatterFields{}, fmt.Errorf("front matter: yaml: %w", err)
		}
	case "+++":
		if _, err := toml.Decode(string(fm.meta), &fields); err != nil {
			return frontMatterFields{}, fmt.Errorf("front matter: toml: %w", err)
		}
	case ";;;":
		if err := json.Unmarshal(fm.meta, &fields); err != nil {
			return frontMatterFields{}, fmt.Errorf("front matter: json: %w", err)
		}
	default:
		return frontMatterFields{}, fmt.Errorf("front matter: unknown delimiter %q", fm.delim)
	}
	fields.Title = strings.TrimSpace(fields.Title)
	return fields, nil
}

// title returns the declared document title, or "" when the block has none
// or cannot be decoded. Malformed metadata never fails a conversion.
func (fm frontMatter) title() string {
	fields, err := fm.decode()
	if err != nil {
		return ""
	}
	return fields.Title
}

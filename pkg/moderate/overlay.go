package moderate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay extends the built-in term lists with deployment-specific terms.
// Overlays only ever add terms; the built-in defaults cannot be removed.
type Overlay struct {
	// Profanity adds words to the profanity set.
	Profanity []string `yaml:"profanity"`

	// SpamPatterns adds case-insensitive substring patterns to the spam list.
	SpamPatterns []string `yaml:"spam_patterns"`

	// ForbiddenNameTerms adds substrings to the forbidden-name list.
	ForbiddenNameTerms []string `yaml:"forbidden_name_terms"`
}

// LoadOverlay reads a term overlay from a YAML file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay file %q: %w", path, err)
	}

	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse overlay file %q: %w", path, err)
	}

	return &o, nil
}

// ApplyOverlay rebuilds the moderator's term sets from the defaults plus the
// overlay. Passing nil resets to the built-in defaults. Reapplying an
// overlay replaces the previous one rather than accumulating terms, so a
// reload after a file edit converges on the file's contents.
func (m *Moderator) ApplyOverlay(o *Overlay) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rebuild(o)
}

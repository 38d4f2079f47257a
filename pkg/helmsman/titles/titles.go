// Package titles localizes route segments into navigation titles and
// breadcrumbs, e.g. for a navigation bar or a back button label.
//
// Titles are looked up by message ID "route.<path>". A segment's parameters
// are passed as template data, so a message can read them:
//
//	# en.toml
//	"route.game" = "{{.game_name}}"
//	"route.settings" = "Settings"
//
// A path without a message falls back to the path itself.
package titles

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/internal"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/route"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultPrefix is prepended to segment paths to form message IDs.
const DefaultPrefix = "route."

// Catalog holds the title messages for every supported language.
type Catalog struct {
	bundle *i18n.Bundle
	prefix string
}

// NewCatalog creates an empty catalog whose messages in fallback are used
// when a requested language has none.
func NewCatalog(fallback language.Tag) *Catalog {
	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	return &Catalog{
		bundle: bundle,
		prefix: DefaultPrefix,
	}
}

// MessageID returns the message ID used for a segment path.
func (c *Catalog) MessageID(path string) string {
	return c.prefix + path
}

// LoadMessageFile loads a TOML, YAML or JSON message file. The language is
// taken from the file name, e.g. "titles.fr.toml" or "fr.yaml".
func (c *Catalog) LoadMessageFile(path string) error {
	if _, err := c.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("titles: load %s: %w", path, err)
	}
	return nil
}

// ParseMessageFile parses message file content; path only provides the
// format and language, as for LoadMessageFile.
func (c *Catalog) ParseMessageFile(data []byte, path string) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, path); err != nil {
		return fmt.Errorf("titles: parse %s: %w", path, err)
	}
	return nil
}

// AddTitles adds titles for tag keyed by segment path.
func (c *Catalog) AddTitles(tag language.Tag, titles map[string]string) error {
	messages := make([]*i18n.Message, 0, len(titles))
	for path, title := range titles {
		messages = append(messages, &i18n.Message{
			ID:    c.MessageID(path),
			Other: title,
		})
	}

	if err := c.bundle.AddMessages(tag, messages...); err != nil {
		return fmt.Errorf("titles: add %s: %w", tag, err)
	}
	return nil
}

// Languages returns the languages the catalog has messages for.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Localizer returns a Localizer preferring langs in order. Each entry may be
// a language tag or an Accept-Language style list.
func (c *Catalog) Localizer(langs ...string) *Localizer {
	return &Localizer{
		catalog:   c,
		localizer: i18n.NewLocalizer(c.bundle, langs...),
	}
}

// Localizer resolves titles for a fixed language preference.
type Localizer struct {
	catalog   *Catalog
	localizer *i18n.Localizer
}

// Title returns the localized title of a segment, or its path when no
// message exists in any language.
func (l *Localizer) Title(segment route.Segment) string {
	title, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    l.catalog.MessageID(segment.Path),
		TemplateData: segment.Parameters.Values(),
	})

	// A translation found only in the fallback language comes back together
	// with a not-found error for the requested language.
	if title != "" {
		return title
	}

	var notFound *i18n.MessageNotFoundErr
	if err != nil && !errors.As(err, &notFound) {
		internal.GetInternalLogger().Warn("Failed to localize route title", "path", segment.Path, "error", err)
	}
	return segment.Path
}

// Breadcrumbs returns the titles of every segment, root first.
func (l *Localizer) Breadcrumbs(segments route.Segments) []string {
	crumbs := make([]string, len(segments))
	for i, segment := range segments {
		crumbs[i] = l.Title(segment)
	}
	return crumbs
}

// Current returns the title of the segment owned by r's level.
// Returns false when r owns no segment.
func (l *Localizer) Current(r route.ActivatedRoute) (string, bool) {
	segment, ok := r.Segment()
	if !ok {
		return "", false
	}
	return l.Title(segment), true
}

// Package i18n localizes the runner's on-screen text.
//
// Messages live in embedded YAML catalogs under locales/ and are served
// through golang.org/x/text/message printers, so numbers are formatted for
// the selected language as well.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// BaseLocale is the locale every catalog key must exist in.
const BaseLocale = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is a parsed set of locale catalogs.
type Bundle struct {
	builder *catalog.Builder
	tags    []language.Tag
	keys    map[string]map[string]string // locale -> key -> message
	matcher language.Matcher
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
	defaultErr    error
)

// Default returns the bundle built from the embedded catalogs.
func Default() (*Bundle, error) {
	defaultOnce.Do(func() {
		defaultBundle, defaultErr = LoadFS(localeFS)
	})
	return defaultBundle, defaultErr
}

// LoadFS parses every locales/*.yaml file in fsys.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("i18n: no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		builder: catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
		keys:    map[string]map[string]string{},
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.keys[BaseLocale]; !ok {
		return nil, fmt.Errorf("i18n: base locale %s is not defined", BaseLocale)
	}

	// The base locale goes first so the matcher falls back to it.
	sort.SliceStable(b.tags, func(i, j int) bool {
		return b.tags[i].String() == BaseLocale && b.tags[j].String() != BaseLocale
	})
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
		return fmt.Errorf("i18n: catalog %s: locale %q must match file name %q", p, locale, want)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("i18n: catalog %s: no messages", p)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("i18n: catalog %s: %w", p, err)
	}

	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("i18n: catalog %s: blank message key", p)
		}
		if err := b.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("i18n: catalog %s: key %q: %w", p, key, err)
		}
		msgs[key] = value
	}

	b.tags = append(b.tags, tag)
	b.keys[locale] = msgs
	return nil
}

// Locales returns the available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.keys))
	for locale := range b.keys {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// MissingKeys lists base-locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	var missing []string
	msgs := b.keys[locale]
	for key := range b.keys[BaseLocale] {
		if _, ok := msgs[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// Translator formats messages for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// Translator returns a translator for the best available match of lang.
// Unknown or empty languages get the base locale.
func (b *Bundle) Translator(lang string) *Translator {
	requested, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		requested = language.MustParse(BaseLocale)
	}
	_, idx, _ := b.matcher.Match(requested)
	tag := b.tags[idx]

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
}

// New returns a translator backed by the embedded catalogs.
func New(lang string) (*Translator, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.Translator(lang), nil
}

// Lang returns the language this translator serves.
func (t *Translator) Lang() string {
	return t.tag.String()
}

// T formats the message stored under key.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// DifficultyLabel returns the display label for a difficulty, e.g. "Level 3".
func (t *Translator) DifficultyLabel(d config.Difficulty) string {
	return t.T("difficulty.label", int(d))
}

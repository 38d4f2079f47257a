package helmsman

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/route"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inline struct{}

func (inline) Dispatch(fn func()) { fn() }

func (inline) After(_ time.Duration, fn func()) func() bool {
	fn()
	return func() bool { return false }
}

func TestNewRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRouter(inline{}, Options{StageDelay: time.Millisecond, Registerer: reg})

	r.Activate(route.Path("a", "b", "c"))
	assert.Equal(t, []string{"a", "b", "c"}, r.Segments().Paths())

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewBackButtonWithoutDevice(t *testing.T) {
	b, err := NewBackButton(NewRouter(inline{}, Options{}), Options{})
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestNewTitleCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`"route.settings" = "Réglages"`), 0o644))

	catalog, err := NewTitleCatalog(Options{Titles: TitleOptions{Fallback: "fr", Files: []string{path}}})
	require.NoError(t, err)

	assert.Equal(t, "Réglages", catalog.Localizer("de").Title(route.NewSegment("settings")))
}

func TestNewTitleCatalogErrors(t *testing.T) {
	_, err := NewTitleCatalog(Options{Titles: TitleOptions{Fallback: "not a language!"}})
	assert.True(t, IsConfigError(err))

	_, err = NewTitleCatalog(Options{Titles: TitleOptions{Files: []string{"/nonexistent/en.toml"}}})
	assert.True(t, IsConfigError(err))
}

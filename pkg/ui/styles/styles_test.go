package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/ui/styles"
)

func TestEmbeddedStylesDefineEveryName(t *testing.T) {
	for _, name := range styles.Names {
		t.Run(name, func(t *testing.T) {
			_, ok := styles.StyleRegistry[name]
			assert.True(t, ok, "style %s should be defined in styles.yaml", name)
		})
	}
}

func TestEmbeddedStyleAttributes(t *testing.T) {
	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.True(t, styles.GetStyle("Header").GetBold())
	assert.False(t, styles.GetStyle("Muted").GetBold())
}

func TestGetStyleUnknownName(t *testing.T) {
	style := styles.GetStyle("DoesNotExist")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	saved := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = saved })

	err := styles.LoadStylesFromData([]byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#EE0000"
styles:
  Alert:
    bold: true
    foreground: red
  Loose:
    foreground: undefined-color
`))
	require.NoError(t, err)

	assert.True(t, styles.GetStyle("Alert").GetBold())
	_, ok := styles.StyleRegistry["Loose"]
	assert.True(t, ok, "unknown colors are ignored, not fatal")
	_, ok = styles.StyleRegistry["Header"]
	assert.False(t, ok, "loading replaces the registry")
}

func TestLoadStylesFromDataRejectsBadInput(t *testing.T) {
	saved := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = saved })

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [unclosed")))
	assert.Error(t, styles.LoadStylesFromData([]byte("colors: {}\n")))
	assert.Equal(t, saved, styles.StyleRegistry)
}

func TestLoadStylesMissingFile(t *testing.T) {
	assert.Error(t, styles.LoadStyles("/nonexistent/styles.yaml"))
}

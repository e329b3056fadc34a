package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zk-langdef/internal/types"
)

func TestRegistryIndexes(t *testing.T) {
	loader := newTestLoader(t)
	require.NoError(t, parseLang(t, loader, zulLanguage()))
	require.NoError(t, parseLang(t, loader, zkbindAddon()))
	registry := loader.Registry()

	lang, ok := registry.LanguageByExtension(".ZUL")
	require.True(t, ok)
	assert.Equal(t, "xul/html", lang.Name)

	_, ok = registry.LanguageByExtension("zhtml")
	assert.False(t, ok)

	devices := registry.LanguagesByDevice("ajax")
	require.Len(t, devices, 1)
	assert.Equal(t, "xul/html", devices[0].Name)
	assert.Empty(t, registry.LanguagesByDevice("mil"))

	widgets := registry.ComponentsByWidgetClass("zul.inp.Textbox")
	require.Len(t, widgets, 1)
	assert.Equal(t, "textbox", widgets[0].Name)

	info, ok := registry.Addon("zkbind")
	require.True(t, ok)
	assert.Equal(t, "xul/html", info.Language)
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	loader := newTestLoader(t)
	require.NoError(t, parseLang(t, loader, zulLanguage()))
	require.NoError(t, parseLang(t, loader, zkbindAddon()))

	clone := loader.Registry().Clone()
	lang, _ := clone.Language("xul/html")
	textbox, err := lang.Component("textbox")
	require.NoError(t, err)
	textbox.Annotations.Add("value", types.Annotation{Name: "EXTRA"})
	textbox.ImplementationClass = "changed"

	original, err := zul(t, loader).Component("textbox")
	require.NoError(t, err)
	assert.Equal(t, "org.zkoss.zul.Textbox", original.ImplementationClass)
	_, found := original.AnnotationMap().Annotation("value", "EXTRA")
	assert.False(t, found)
}

func TestRegistryReset(t *testing.T) {
	registry := NewRegistry()
	loader, err := NewDefinitionLoader(registry, LoaderOptions{})
	require.NoError(t, err)
	require.NoError(t, parseLang(t, loader, zulLanguage()))

	registry.Reset()
	assert.Empty(t, registry.Languages())
	assert.Empty(t, registry.Addons())
	_, ok := registry.LanguageByExtension("zul")
	assert.False(t, ok)
}

func TestRegistryReport(t *testing.T) {
	loader := newTestLoader(t)
	require.NoError(t, parseLang(t, loader, zulLanguage()))
	require.NoError(t, parseLang(t, loader, zkbindAddon()))
	require.NoError(t, parseLang(t, loader, extendsCorrectlyAddon()))

	report := loader.Registry().Report()
	require.Len(t, report.Languages, 1)
	require.Len(t, report.Addons, 2)
	assert.Equal(t, "zkbind", report.Addons[0].Name)

	var found *types.ComponentReport
	for i := range report.Languages[0].Components {
		if report.Languages[0].Components[i].Name == "extendsCorrectly" {
			found = &report.Languages[0].Components[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "textbox", found.Extends)
	assert.Equal(t, []string{"extends-correctly", "zkbind"}, found.Contributors)
	assert.Equal(t, []string{"value: " + textboxZKBind}, found.Annotations)
}

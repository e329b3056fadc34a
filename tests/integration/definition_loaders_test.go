package integration

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zk-langdef/internal/adapters"
	"zk-langdef/internal/core"
	"zk-langdef/internal/shared"
	"zk-langdef/internal/types"
	"zk-langdef/tests/testutil"
)

const textboxZKBind = "@ZKBIND(ACCESS=[both], SAVE_EVENT=[onChange], LOAD_REPLACEMENT=[rawValue], LOAD_TYPE=[java.lang.String])"

func classpathDocs(t *testing.T, roots []string, name string) []types.LangDocument {
	t.Helper()
	parser := adapters.NewLangDocumentAdapter()
	resources, err := adapters.NewResourceLocatorAdapter().Resources(roots, name)
	require.NoError(t, err)
	docs := make([]types.LangDocument, 0, len(resources))
	for _, resource := range resources {
		reader, err := resource.Open()
		require.NoError(t, err)
		doc, err := parser.Parse(reader, resource.URL)
		reader.Close()
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	return docs
}

func parseFiles(t *testing.T, paths ...string) []types.LangDocument {
	t.Helper()
	parser := adapters.NewLangDocumentAdapter()
	docs := make([]types.LangDocument, 0, len(paths))
	for _, path := range paths {
		doc, err := parser.ParseFile(path)
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	return docs
}

func fixtureRoots(root string) []string {
	return []string{
		filepath.Join(root, "fixtures", "classpath", "zul"),
		filepath.Join(root, "fixtures", "classpath", "zkbind"),
	}
}

func loadFixtures(t *testing.T, root string, addons ...string) *core.DefinitionLoader {
	t.Helper()
	roots := fixtureRoots(root)
	plan := types.LoadPlan{
		Languages: classpathDocs(t, roots, types.LangResource),
		Addons:    append(classpathDocs(t, roots, types.LangAddonResource), parseFiles(t, addons...)...),
	}
	loader, err := core.NewDefinitionLoader(core.NewRegistry(), core.LoaderOptions{VersionCheck: true})
	require.NoError(t, err)
	_, err = loader.Load(t.Context(), plan)
	require.NoError(t, err)
	return loader
}

func fixtureFile(root string, name string) string {
	return filepath.Join(root, "fixtures", "DefinitionLoadersTest", name)
}

func component(t *testing.T, loader *core.DefinitionLoader, name string) *types.ComponentDefinition {
	t.Helper()
	lang, ok := loader.Registry().Language("xul/html")
	require.True(t, ok)
	def, err := lang.Component(name)
	require.NoError(t, err)
	return def
}

func requireTextboxZKBind(t *testing.T, def *types.ComponentDefinition) {
	t.Helper()
	require.NotNil(t, def.AnnotationMap())
	annotation, ok := def.AnnotationMap().Annotation("value", "ZKBIND")
	require.True(t, ok)
	if diff := cmp.Diff(textboxZKBind, annotation.String()); diff != "" {
		t.Fatalf("unexpected annotation (-want +got):\n%s", diff)
	}
}

func TestSimpleWidgetFromFixture(t *testing.T) {
	root := testutil.RepoRoot(t)
	loader := loadFixtures(t, root, fixtureFile(root, "simple-widgets.xml"))

	def := component(t, loader, "simpleWidget")
	assert.Equal(t, "org.zkoss.test.definitionloaders.SimpleWidget", def.ImplementationClass)
	assert.Nil(t, def.AnnotationMap())
}

func TestTextboxAnnotationsFromFixture(t *testing.T) {
	root := testutil.RepoRoot(t)
	loader := loadFixtures(t, root)
	requireTextboxZKBind(t, component(t, loader, "textbox"))
}

func TestExtendsCorrectlyFromFixture(t *testing.T) {
	root := testutil.RepoRoot(t)
	loader := loadFixtures(t, root, fixtureFile(root, "extends-correctly.xml"))

	def := component(t, loader, "extendsCorrectly")
	assert.Equal(t, "org.zkoss.test.definitionloaders.ExtendsCorrectly", def.ImplementationClass)
	requireTextboxZKBind(t, def)
}

func TestMissingDependsFromFixtureInEitherOrder(t *testing.T) {
	root := testutil.RepoRoot(t)
	roots := fixtureRoots(root)
	missingPath := fixtureFile(root, "missing-depends.xml")
	zkbind := classpathDocs(t, roots[1:], types.LangAddonResource)
	missing := parseFiles(t, missingPath)

	orders := map[string][]types.LangDocument{
		"zkbind first":          append(append([]types.LangDocument(nil), zkbind...), missing...),
		"missing-depends first": append(append([]types.LangDocument(nil), missing...), zkbind...),
	}
	for name, addons := range orders {
		t.Run(name, func(t *testing.T) {
			loader, err := core.NewDefinitionLoader(core.NewRegistry(), core.LoaderOptions{VersionCheck: true})
			require.NoError(t, err)
			_, err = loader.Load(t.Context(), types.LoadPlan{
				Languages: classpathDocs(t, roots[:1], types.LangResource),
				Addons:    addons,
			})
			var missingDepends *types.MissingDependsError
			require.ErrorAs(t, err, &missingDepends)
			assert.Equal(t, shared.FileURL(missingPath), missingDepends.URL)
			assert.Equal(t, "missingDepends", missingDepends.ComponentName)
			assert.Equal(t, "textbox", missingDepends.ExtendedComponentName)
			assert.False(t, loader.Loaded())
		})
	}
}

func TestJarClasspathRoot(t *testing.T) {
	root := testutil.RepoRoot(t)
	jarPath := filepath.Join(t.TempDir(), "zkbind.jar")
	content, err := os.ReadFile(filepath.Join(root, "fixtures", "classpath", "zkbind", "metainfo", "zk", "lang-addon.xml"))
	require.NoError(t, err)

	file, err := os.Create(jarPath)
	require.NoError(t, err)
	archive := zip.NewWriter(file)
	entry, err := archive.Create(types.LangAddonResource)
	require.NoError(t, err)
	_, err = entry.Write(content)
	require.NoError(t, err)
	require.NoError(t, archive.Close())
	require.NoError(t, file.Close())

	roots := []string{filepath.Join(root, "fixtures", "classpath", "zul"), jarPath}
	addons := classpathDocs(t, roots, types.LangAddonResource)
	require.Len(t, addons, 1)
	assert.Equal(t, shared.JarURL(jarPath, types.LangAddonResource), addons[0].URL)

	loader, err := core.NewDefinitionLoader(core.NewRegistry(), core.LoaderOptions{})
	require.NoError(t, err)
	_, err = loader.Load(t.Context(), types.LoadPlan{
		Languages: classpathDocs(t, roots, types.LangResource),
		Addons:    addons,
	})
	require.NoError(t, err)
	requireTextboxZKBind(t, component(t, loader, "textbox"))
}

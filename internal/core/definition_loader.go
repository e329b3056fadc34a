package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"zk-langdef/internal/types"
)

type LoaderOptions struct {
	ZKVersion    string
	VersionCheck bool
}

// LoadSummary describes a completed load.
type LoadSummary struct {
	Languages  []string
	Addons     []string
	Skipped    []string
	Components int
}

// DefinitionLoader merges language documents into a Registry. Its
// loading/loaded state belongs to the instance; a second Load after a
// successful one is a no-op, and Load while another is running fails.
type DefinitionLoader struct {
	registry *Registry
	versions *VersionChecker

	stateMu sync.Mutex
	loading bool
	loaded  bool

	mergeMu sync.Mutex
	pending *pendingClaims
}

func NewDefinitionLoader(registry *Registry, opts LoaderOptions) (*DefinitionLoader, error) {
	if registry == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("definition loader requires a registry")
	}
	zkVersion := strings.TrimSpace(opts.ZKVersion)
	if zkVersion == "" {
		zkVersion = types.DefaultZKVersion
	}
	versions, err := NewVersionChecker(zkVersion, opts.VersionCheck)
	if err != nil {
		return nil, err
	}
	return &DefinitionLoader{registry: registry, versions: versions}, nil
}

func (l *DefinitionLoader) Registry() *Registry {
	return l.registry
}

func (l *DefinitionLoader) Loaded() bool {
	l.stateMu.Lock()
	defer l.stateMu.Unlock()
	return l.loaded
}

// Reset clears the registry and the loading state.
func (l *DefinitionLoader) Reset() {
	l.stateMu.Lock()
	defer l.stateMu.Unlock()
	l.mergeMu.Lock()
	defer l.mergeMu.Unlock()
	l.loading = false
	l.loaded = false
	l.pending = nil
	l.registry.Reset()
}

// Load merges every language document of the plan, then its addons in
// depends-aware order.
func (l *DefinitionLoader) Load(ctx context.Context, plan types.LoadPlan) (LoadSummary, error) {
	l.stateMu.Lock()
	if l.loaded {
		l.stateMu.Unlock()
		log.Ctx(ctx).Debug().Msg("definitions already loaded")
		return l.summary(nil), nil
	}
	if l.loading {
		l.stateMu.Unlock()
		return LoadSummary{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("definition loading already in progress")
	}
	l.loading = true
	l.stateMu.Unlock()

	skipped, err := l.load(ctx, plan)

	l.stateMu.Lock()
	l.loading = false
	l.loaded = err == nil
	l.stateMu.Unlock()
	if err != nil {
		return LoadSummary{}, err
	}
	return l.summary(skipped), nil
}

func (l *DefinitionLoader) load(ctx context.Context, plan types.LoadPlan) ([]string, error) {
	for _, doc := range plan.Languages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if doc.IsAddon() {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("addon listed as language definition: " + doc.URL)
		}
		if err := l.ParseLang(ctx, doc, doc.URL, false); err != nil {
			return nil, err
		}
	}

	var compatible []types.LangDocument
	var skipped []string
	for _, doc := range plan.Addons {
		if !doc.IsAddon() {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("language definition listed as addon: " + doc.URL)
		}
		ok, err := l.versions.Compatible(doc)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Ctx(ctx).Warn().
				Str("addon", doc.AddonName).
				Str("requires", doc.Version.ZKVersion).
				Str("url", doc.URL).
				Msg("addon ignored, it requires a newer zk version")
			skipped = append(skipped, doc.AddonName)
			continue
		}
		compatible = append(compatible, doc)
	}

	ordered, err := OrderAddons(ctx, compatible)
	if err != nil {
		return nil, err
	}

	l.mergeMu.Lock()
	l.pending = newPendingClaims(ordered)
	l.mergeMu.Unlock()
	defer func() {
		l.mergeMu.Lock()
		l.pending = nil
		l.mergeMu.Unlock()
	}()

	for _, doc := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.ParseLang(ctx, doc, doc.URL, true); err != nil {
			return nil, err
		}
	}
	return skipped, nil
}

// ParseLang merges one parsed document into the registry. The merge is
// atomic: on error the registry is left as it was.
func (l *DefinitionLoader) ParseLang(ctx context.Context, doc types.LangDocument, url string, addon bool) error {
	if strings.TrimSpace(url) != "" {
		doc.URL = url
	}
	if strings.TrimSpace(doc.URL) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("language definition url is required")
	}
	if addon != doc.IsAddon() {
		expected := types.DocumentKindLanguage
		if addon {
			expected = types.DocumentKindAddon
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("expected <%s> root in %s", expected, doc.URL))
	}
	if strings.TrimSpace(doc.LanguageName) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("language-name is required: " + doc.URL)
	}
	assert.NotEmpty(ctx, doc.LanguageName, "language-name must be set")

	l.mergeMu.Lock()
	defer l.mergeMu.Unlock()

	staged := l.registry.Clone()
	if err := mergeDocument(ctx, staged, newDependencyGuard(staged, l.pending), doc); err != nil {
		return err
	}
	l.registry.adopt(staged)
	if l.pending != nil && doc.IsAddon() {
		l.pending.resolve(doc.AddonName)
	}
	log.Ctx(ctx).Info().
		Str("url", doc.URL).
		Bool("addon", doc.IsAddon()).
		Int("components", len(doc.Components)).
		Msg("language definition loaded")
	return nil
}

func (l *DefinitionLoader) summary(skipped []string) LoadSummary {
	l.mergeMu.Lock()
	defer l.mergeMu.Unlock()
	summary := LoadSummary{Skipped: skipped}
	for _, lang := range l.registry.Languages() {
		summary.Languages = append(summary.Languages, lang.Name)
		summary.Components += len(lang.Components())
	}
	for _, info := range l.registry.Addons() {
		summary.Addons = append(summary.Addons, info.Name)
	}
	return summary
}

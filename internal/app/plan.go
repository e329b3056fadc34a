package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"zk-langdef/internal/core"
	"zk-langdef/internal/ports"
	"zk-langdef/internal/shared"
	"zk-langdef/internal/types"
)

// resolveSources merges request values over the system config.
func (s Service) resolveSources(src Sources) (types.SystemConfig, error) {
	cfg, err := s.SystemConfig.LoadSystemConfig(strings.TrimSpace(src.ConfigPath))
	if err != nil {
		return types.SystemConfig{}, err
	}
	cfg.Classpath = shared.UniqueStrings(append(cfg.Classpath, src.Classpath...))
	cfg.Languages = shared.UniqueStrings(append(cfg.Languages, src.Languages...))
	cfg.Addons = shared.UniqueStrings(append(cfg.Addons, src.Addons...))
	if version := strings.TrimSpace(src.ZKVersion); version != "" {
		cfg.ZKVersion = version
	}
	if src.NoVersionCheck {
		disabled := false
		cfg.VersionCheck = &disabled
	}
	if len(cfg.Classpath) == 0 && len(cfg.Languages) == 0 && len(cfg.Addons) == 0 {
		return types.SystemConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no classpath roots or language definitions given")
	}
	return cfg, nil
}

// buildPlan parses every descriptor named by cfg. Classpath matches come
// first in root order, followed by explicitly listed files.
func (s Service) buildPlan(ctx context.Context, cfg types.SystemConfig) (types.LoadPlan, error) {
	plan := types.LoadPlan{}

	languages, err := s.classpathDocuments(ctx, cfg.Classpath, types.LangResource)
	if err != nil {
		return types.LoadPlan{}, err
	}
	addons, err := s.classpathDocuments(ctx, cfg.Classpath, types.LangAddonResource)
	if err != nil {
		return types.LoadPlan{}, err
	}
	plan.Languages = languages
	plan.Addons = addons

	for _, path := range cfg.Languages {
		doc, err := s.LangDocs.ParseFile(path)
		if err != nil {
			return types.LoadPlan{}, err
		}
		plan.Languages = append(plan.Languages, doc)
	}
	for _, path := range cfg.Addons {
		doc, err := s.LangDocs.ParseFile(path)
		if err != nil {
			return types.LoadPlan{}, err
		}
		plan.Addons = append(plan.Addons, doc)
	}
	log.Ctx(ctx).Debug().
		Int("languages", len(plan.Languages)).
		Int("addons", len(plan.Addons)).
		Msg("load plan built")
	return plan, nil
}

func (s Service) classpathDocuments(ctx context.Context, roots []string, name string) ([]types.LangDocument, error) {
	if len(roots) == 0 {
		return nil, nil
	}
	resources, err := s.Locator.Resources(roots, name)
	if err != nil {
		return nil, err
	}
	docs := make([]types.LangDocument, 0, len(resources))
	for _, resource := range resources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := s.parseResource(resource)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s Service) parseResource(resource ports.Resource) (types.LangDocument, error) {
	reader, err := resource.Open()
	if err != nil {
		return types.LangDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open " + resource.URL).
			WithCause(err)
	}
	defer reader.Close()
	return s.LangDocs.Parse(reader, resource.URL)
}

// newLoader builds a fresh registry and loader for one request.
func newLoader(cfg types.SystemConfig) (*core.DefinitionLoader, error) {
	return core.NewDefinitionLoader(core.NewRegistry(), core.LoaderOptions{
		ZKVersion:    cfg.ZKVersion,
		VersionCheck: cfg.VersionCheckEnabled(),
	})
}

func (s Service) load(ctx context.Context, src Sources) (*core.DefinitionLoader, core.LoadSummary, error) {
	cfg, err := s.resolveSources(src)
	if err != nil {
		return nil, core.LoadSummary{}, err
	}
	plan, err := s.buildPlan(ctx, cfg)
	if err != nil {
		return nil, core.LoadSummary{}, err
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, core.LoadSummary{}, err
	}
	summary, err := loader.Load(ctx, plan)
	if err != nil {
		return nil, core.LoadSummary{}, err
	}
	return loader, summary, nil
}

package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"zk-langdef/internal/core"
	"zk-langdef/internal/types"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	component := strings.TrimSpace(req.Component)
	if component == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("component name is required")
	}
	language := strings.TrimSpace(req.Language)

	if reportPath := strings.TrimSpace(req.ReportPath); reportPath != "" {
		report, err := s.ReportReader.ReadRegistryReport(reportPath)
		if err != nil {
			return InspectResult{}, err
		}
		return inspectReport(report, language, component)
	}

	loader, _, err := s.load(ctx, req.Sources)
	if err != nil {
		return InspectResult{}, err
	}
	return inspectRegistry(loader.Registry(), language, component)
}

func inspectRegistry(registry *core.Registry, language string, component string) (InspectResult, error) {
	for _, lang := range registry.Languages() {
		if language != "" && lang.Name != language {
			continue
		}
		def, err := lang.Component(component)
		if err != nil {
			continue
		}
		return InspectResult{Language: lang.Name, Component: core.ComponentReport(def)}, nil
	}
	return InspectResult{}, &types.DefinitionNotFoundError{Language: language, Component: component}
}

func inspectReport(report types.RegistryReport, language string, component string) (InspectResult, error) {
	for _, lang := range report.Languages {
		if language != "" && lang.Name != language {
			continue
		}
		for _, comp := range lang.Components {
			if comp.Name == component {
				return InspectResult{Language: lang.Name, Component: comp}, nil
			}
		}
	}
	return InspectResult{}, &types.DefinitionNotFoundError{Language: language, Component: component}
}

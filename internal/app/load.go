package app

import (
	"context"
	"path/filepath"
	"strings"

	"zk-langdef/internal/adapters"
)

func (s Service) Load(ctx context.Context, req LoadRequest) (LoadResult, error) {
	loader, summary, err := s.load(ctx, req.Sources)
	if err != nil {
		return LoadResult{}, err
	}
	result := LoadResult{
		Languages:  summary.Languages,
		Addons:     summary.Addons,
		Skipped:    summary.Skipped,
		Components: summary.Components,
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return result, nil
	}
	if err := s.ReportWriter(outputDir).WriteRegistryReport(loader.Registry().Report()); err != nil {
		return LoadResult{}, err
	}
	result.ReportPath = filepath.Join(outputDir, adapters.RegistryReportFile)
	return result, nil
}

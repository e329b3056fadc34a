package adapters

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"zk-langdef/internal/ports"
	"zk-langdef/internal/types"
)

const RegistryReportFile = "registry.yaml"

type ReportFileAdapter struct {
	Dir string
}

func NewReportFileAdapter(dir string) ReportFileAdapter {
	return ReportFileAdapter{Dir: dir}
}

func (a ReportFileAdapter) WriteRegistryReport(report types.RegistryReport) error {
	path, err := a.ensurePath(RegistryReportFile)
	if err != nil {
		return err
	}
	ordered := types.RegistryReport{
		Languages: append([]types.LanguageReport(nil), report.Languages...),
		Addons:    report.Addons,
	}
	sort.Slice(ordered.Languages, func(i, j int) bool {
		return ordered.Languages[i].Name < ordered.Languages[j].Name
	})
	for i := range ordered.Languages {
		comps := append([]types.ComponentReport(nil), ordered.Languages[i].Components...)
		sort.Slice(comps, func(x, y int) bool {
			return comps[x].Name < comps[y].Name
		})
		ordered.Languages[i].Components = comps
	}
	data, err := yaml.Marshal(ordered)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode registry report").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0644)
}

func (a ReportFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

type ReportReaderAdapter struct{}

func NewReportReaderAdapter() ReportReaderAdapter {
	return ReportReaderAdapter{}
}

func (a ReportReaderAdapter) ReadRegistryReport(path string) (types.RegistryReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RegistryReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("registry report not found").
			WithCause(err)
	}
	var report types.RegistryReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return types.RegistryReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse registry report").
			WithCause(err)
	}
	return report, nil
}

var (
	_ ports.RegistryReportPort       = ReportFileAdapter{}
	_ ports.RegistryReportReaderPort = ReportReaderAdapter{}
)

package app

import (
	"zk-langdef/internal/adapters"
	"zk-langdef/internal/ports"
)

type Service struct {
	Locator      ports.ResourceLocatorPort
	LangDocs     ports.LangDocumentPort
	SystemConfig ports.SystemConfigPort
	ReportReader ports.RegistryReportReaderPort
	ReportWriter func(dir string) ports.RegistryReportPort
}

func NewService() Service {
	return Service{
		Locator:      adapters.NewResourceLocatorAdapter(),
		LangDocs:     adapters.NewLangDocumentAdapter(),
		SystemConfig: adapters.NewSystemConfigAdapter(),
		ReportReader: adapters.NewReportReaderAdapter(),
		ReportWriter: func(dir string) ports.RegistryReportPort {
			return adapters.NewReportFileAdapter(dir)
		},
	}
}

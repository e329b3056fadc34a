package ports

import "zk-langdef/internal/types"

type RegistryReportPort interface {
	WriteRegistryReport(report types.RegistryReport) error
}

type RegistryReportReaderPort interface {
	ReadRegistryReport(path string) (types.RegistryReport, error)
}

package ports

import "zk-langdef/internal/types"

type SystemConfigPort interface {
	LoadSystemConfig(path string) (types.SystemConfig, error)
}

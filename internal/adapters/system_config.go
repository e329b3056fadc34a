package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"zk-langdef/internal/ports"
	"zk-langdef/internal/types"
)

type SystemConfigAdapter struct{}

func NewSystemConfigAdapter() SystemConfigAdapter {
	return SystemConfigAdapter{}
}

// LoadSystemConfig reads a YAML system config. An empty path yields the
// built-in defaults. Relative classpath and descriptor paths are resolved
// against the config file's directory.
func (a SystemConfigAdapter) LoadSystemConfig(path string) (types.SystemConfig, error) {
	if strings.TrimSpace(path) == "" {
		return applySystemDefaults(types.SystemConfig{}), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SystemConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("system config not found").
			WithCause(err)
	}
	var cfg types.SystemConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.SystemConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse system config yaml").
			WithCause(err)
	}
	base := filepath.Dir(path)
	cfg.Classpath = resolveRelative(base, cfg.Classpath)
	cfg.Languages = resolveRelative(base, cfg.Languages)
	cfg.Addons = resolveRelative(base, cfg.Addons)
	return applySystemDefaults(cfg), nil
}

func applySystemDefaults(cfg types.SystemConfig) types.SystemConfig {
	if strings.TrimSpace(cfg.ZKVersion) == "" {
		cfg.ZKVersion = types.DefaultZKVersion
	}
	return cfg
}

func resolveRelative(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			resolved = append(resolved, p)
			continue
		}
		resolved = append(resolved, filepath.Join(base, p))
	}
	return resolved
}

var _ ports.SystemConfigPort = SystemConfigAdapter{}

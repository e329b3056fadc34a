package app

import "zk-langdef/internal/types"

// Sources selects the descriptors to load. Values given here are added to
// those of the system config.
type Sources struct {
	ConfigPath     string
	Classpath      []string
	Languages      []string
	Addons         []string
	ZKVersion      string
	NoVersionCheck bool
}

type LoadRequest struct {
	Sources
	OutputDir string
}

type LoadResult struct {
	Languages  []string
	Addons     []string
	Skipped    []string
	Components int
	ReportPath string
}

type ValidateRequest struct {
	Sources
}

type ValidateResult struct {
	Languages  []string
	AddonOrder []string
	Skipped    []string
}

// InspectRequest looks up one component. When ReportPath is set the
// component is read from a registry report instead of loading Sources.
type InspectRequest struct {
	Sources
	ReportPath string
	Language   string
	Component  string
}

type InspectResult struct {
	Language  string
	Component types.ComponentReport
}

type OrderRequest struct {
	Sources
}

type OrderedAddon struct {
	Name    string
	URL     string
	Depends []string
}

type OrderResult struct {
	Addons  []OrderedAddon
	Skipped []string
}

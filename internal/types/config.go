package types

const DefaultZKVersion = "10.0.0"

// SystemConfig carries the system defaults consulted before any language
// document is loaded.
type SystemConfig struct {
	ZKVersion string `yaml:"zk_version"`

	// Classpath lists directories or jar archives searched, in order, for
	// metainfo/zk/lang.xml and metainfo/zk/lang-addon.xml.
	Classpath []string `yaml:"classpath"`

	// Languages and Addons list extra descriptor files appended after the
	// classpath matches, in order.
	Languages []string `yaml:"languages,omitempty"`
	Addons    []string `yaml:"addons,omitempty"`

	VersionCheck *bool `yaml:"version_check,omitempty"`
}

func (c SystemConfig) VersionCheckEnabled() bool {
	return c.VersionCheck == nil || *c.VersionCheck
}

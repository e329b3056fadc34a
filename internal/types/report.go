package types

// RegistryReport is the serialized view of a loaded registry.
type RegistryReport struct {
	Languages []LanguageReport `yaml:"languages"`
	Addons    []AddonReport    `yaml:"addons,omitempty"`
}

type LanguageReport struct {
	Name       string            `yaml:"name"`
	DeviceType string            `yaml:"device_type,omitempty"`
	Namespace  string            `yaml:"namespace,omitempty"`
	Extensions []string          `yaml:"extensions,omitempty"`
	Components []ComponentReport `yaml:"components"`
}

type ComponentReport struct {
	Name         string   `yaml:"name"`
	Class        string   `yaml:"class,omitempty"`
	WidgetClass  string   `yaml:"widget_class,omitempty"`
	Extends      string   `yaml:"extends,omitempty"`
	Origin       string   `yaml:"origin"`
	Contributors []string `yaml:"contributors,omitempty"`
	Annotations  []string `yaml:"annotations,omitempty"`
}

type AddonReport struct {
	Name     string   `yaml:"name"`
	URL      string   `yaml:"url"`
	Language string   `yaml:"language"`
	Depends  []string `yaml:"depends,omitempty"`
	Version  string   `yaml:"version,omitempty"`
}

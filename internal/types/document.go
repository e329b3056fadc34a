package types

// LangDocument is the parsed form of one lang.xml or lang-addon.xml
// descriptor. Addon-only fields are empty for language documents.
type LangDocument struct {
	URL          string
	Kind         DocumentKind
	LanguageName string
	DeviceType   string
	Namespace    string
	Extensions   []string

	AddonName string
	Depends   []string
	Version   AddonVersion

	Components []ComponentSpec
}

// IsAddon reports whether the document is a language addon.
func (d LangDocument) IsAddon() bool {
	return d.Kind == DocumentKindAddon
}

// Ref returns the provenance reference recorded on definitions merged
// from this document.
func (d LangDocument) Ref() DocumentRef {
	return DocumentRef{
		URL:       d.URL,
		Addon:     d.IsAddon(),
		AddonName: d.AddonName,
	}
}

type AddonVersion struct {
	Class     string `yaml:"class,omitempty"`
	UID       string `yaml:"uid,omitempty"`
	ZKVersion string `yaml:"zk_version,omitempty"`
}

// ComponentSpec is a <component> element as written in a descriptor,
// before it is merged into a ComponentDefinition.
type ComponentSpec struct {
	Name           string
	ComponentClass string
	WidgetClass    string
	Extends        string
	Molds          []MoldSpec
	Properties     []PropertySpec
	Annotations    []AnnotationSpec
}

// ExtendsOther reports whether the component inherits from a different
// component. Extending its own name modifies the existing definition.
func (c ComponentSpec) ExtendsOther() bool {
	return c.Extends != "" && c.Extends != c.Name
}

type MoldSpec struct {
	Name string
	URI  string
}

type PropertySpec struct {
	Name  string
	Value string
}

type AnnotationSpec struct {
	Property   string
	Annotation Annotation
}

// LoadPlan is the caller-supplied, ordered set of documents for one load.
type LoadPlan struct {
	Languages []LangDocument
	Addons    []LangDocument
}

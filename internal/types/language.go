package types

import "sort"

// DocumentRef records which descriptor defined or touched a definition.
type DocumentRef struct {
	URL       string `yaml:"url"`
	Addon     bool   `yaml:"addon"`
	AddonName string `yaml:"addon_name,omitempty"`
}

type AddonInfo struct {
	Name     string
	URL      string
	Language string
	Depends  []string
	Version  AddonVersion
}

// LanguageDefinition is a named collection of component definitions.
type LanguageDefinition struct {
	Name       string
	DeviceType string
	Namespace  string
	Extensions []string

	components map[string]*ComponentDefinition
	order      []string
}

func NewLanguageDefinition(name string, deviceType string, namespace string) *LanguageDefinition {
	return &LanguageDefinition{
		Name:       name,
		DeviceType: deviceType,
		Namespace:  namespace,
		components: map[string]*ComponentDefinition{},
	}
}

// Component returns the named definition or a DefinitionNotFoundError.
func (l *LanguageDefinition) Component(name string) (*ComponentDefinition, error) {
	if def, ok := l.components[name]; ok {
		return def, nil
	}
	return nil, &DefinitionNotFoundError{Language: l.Name, Component: name}
}

func (l *LanguageDefinition) HasComponent(name string) bool {
	_, ok := l.components[name]
	return ok
}

// PutComponent adds or replaces a definition, keeping first-seen order.
func (l *LanguageDefinition) PutComponent(def *ComponentDefinition) {
	if _, ok := l.components[def.Name]; !ok {
		l.order = append(l.order, def.Name)
	}
	def.Language = l.Name
	l.components[def.Name] = def
}

// Components returns definitions in the order they were first defined.
func (l *LanguageDefinition) Components() []*ComponentDefinition {
	result := make([]*ComponentDefinition, 0, len(l.order))
	for _, name := range l.order {
		result = append(result, l.components[name])
	}
	return result
}

func (l *LanguageDefinition) ComponentNames() []string {
	names := append([]string(nil), l.order...)
	sort.Strings(names)
	return names
}

// AddExtension registers a file extension once.
func (l *LanguageDefinition) AddExtension(ext string) {
	for _, existing := range l.Extensions {
		if existing == ext {
			return
		}
	}
	l.Extensions = append(l.Extensions, ext)
}

// Clone deep copies the language and all of its component definitions.
func (l *LanguageDefinition) Clone() *LanguageDefinition {
	clone := &LanguageDefinition{
		Name:       l.Name,
		DeviceType: l.DeviceType,
		Namespace:  l.Namespace,
		Extensions: append([]string(nil), l.Extensions...),
		components: make(map[string]*ComponentDefinition, len(l.components)),
		order:      append([]string(nil), l.order...),
	}
	for name, def := range l.components {
		clone.components[name] = def.Clone(name)
	}
	return clone
}

// ComponentDefinition is a named widget type within a language.
type ComponentDefinition struct {
	Name                string
	Language            string
	ImplementationClass string
	WidgetClass         string
	Extends             string
	Molds               map[string]string
	Properties          map[string]string

	// Annotations is nil until the definition or one of its ancestors
	// declares an annotation.
	Annotations *AnnotationMap

	Origin       DocumentRef
	Contributors []DocumentRef
}

func NewComponentDefinition(name string) *ComponentDefinition {
	return &ComponentDefinition{
		Name:       name,
		Molds:      map[string]string{},
		Properties: map[string]string{},
	}
}

// AnnotationMap returns the annotations of the definition, or nil.
func (c *ComponentDefinition) AnnotationMap() *AnnotationMap {
	return c.Annotations
}

// Clone returns a deep copy of the definition under a new name.
func (c *ComponentDefinition) Clone(name string) *ComponentDefinition {
	clone := &ComponentDefinition{
		Name:                name,
		Language:            c.Language,
		ImplementationClass: c.ImplementationClass,
		WidgetClass:         c.WidgetClass,
		Extends:             c.Extends,
		Molds:               make(map[string]string, len(c.Molds)),
		Properties:          make(map[string]string, len(c.Properties)),
		Annotations:         c.Annotations.Clone(),
		Origin:              c.Origin,
		Contributors:        append([]DocumentRef(nil), c.Contributors...),
	}
	for key, value := range c.Molds {
		clone.Molds[key] = value
	}
	for key, value := range c.Properties {
		clone.Properties[key] = value
	}
	return clone
}

// AddContributor records an addon document that touched the definition.
func (c *ComponentDefinition) AddContributor(ref DocumentRef) {
	if !ref.Addon {
		return
	}
	for _, existing := range c.Contributors {
		if existing.URL == ref.URL {
			return
		}
	}
	c.Contributors = append(c.Contributors, ref)
}

// ContributingAddons returns the distinct addon names that contributed.
func (c *ComponentDefinition) ContributingAddons() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, ref := range c.Contributors {
		if _, ok := seen[ref.AddonName]; ok {
			continue
		}
		seen[ref.AddonName] = struct{}{}
		names = append(names, ref.AddonName)
	}
	return names
}

// ExtensionRecord remembers that a component in an addon document
// inherited from another component, so later contributions to the
// parent can be checked against the extending document's depends.
type ExtensionRecord struct {
	Language  string
	Component string
	Parent    string
	Document  DocumentRef
}

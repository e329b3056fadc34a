package types

import (
	"sort"
	"strings"
)

type AnnotationAttribute struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Annotation is data-binding metadata attached to a component property.
type Annotation struct {
	Name       string                `yaml:"name"`
	Attributes []AnnotationAttribute `yaml:"attributes,omitempty"`
}

// Attribute returns the values of the named attribute.
func (a Annotation) Attribute(name string) ([]string, bool) {
	for _, attr := range a.Attributes {
		if attr.Name == name {
			return attr.Values, true
		}
	}
	return nil, false
}

// String renders the annotation as @NAME(KEY=[v1, v2], ...), keeping
// attribute declaration order.
func (a Annotation) String() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(a.Name)
	b.WriteString("(")
	for i, attr := range a.Attributes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(attr.Name)
		b.WriteString("=[")
		b.WriteString(strings.Join(attr.Values, ", "))
		b.WriteString("]")
	}
	b.WriteString(")")
	return b.String()
}

func (a Annotation) clone() Annotation {
	clone := Annotation{Name: a.Name}
	if len(a.Attributes) > 0 {
		clone.Attributes = make([]AnnotationAttribute, len(a.Attributes))
		for i, attr := range a.Attributes {
			clone.Attributes[i] = AnnotationAttribute{
				Name:   attr.Name,
				Values: append([]string(nil), attr.Values...),
			}
		}
	}
	return clone
}

// AnnotationMap maps property name to annotation name to the annotations
// declared for that pair, in declaration order. The empty property name
// holds component-level annotations.
type AnnotationMap struct {
	Entries map[string]map[string][]Annotation
}

func NewAnnotationMap() *AnnotationMap {
	return &AnnotationMap{Entries: map[string]map[string][]Annotation{}}
}

// Add appends an annotation for the property.
func (m *AnnotationMap) Add(property string, annotation Annotation) {
	byName, ok := m.Entries[property]
	if !ok {
		byName = map[string][]Annotation{}
		m.Entries[property] = byName
	}
	byName[annotation.Name] = append(byName[annotation.Name], annotation.clone())
}

// Annotation returns the last annotation declared for the pair.
func (m *AnnotationMap) Annotation(property string, name string) (Annotation, bool) {
	if m == nil {
		return Annotation{}, false
	}
	list := m.Entries[property][name]
	if len(list) == 0 {
		return Annotation{}, false
	}
	return list[len(list)-1], true
}

// Annotations returns every annotation declared for the pair.
func (m *AnnotationMap) Annotations(property string, name string) []Annotation {
	if m == nil {
		return nil
	}
	return append([]Annotation(nil), m.Entries[property][name]...)
}

// Properties returns the annotated property names, sorted.
func (m *AnnotationMap) Properties() []string {
	if m == nil {
		return nil
	}
	props := make([]string, 0, len(m.Entries))
	for prop := range m.Entries {
		props = append(props, prop)
	}
	sort.Strings(props)
	return props
}

// Names returns the annotation names declared on a property, sorted.
func (m *AnnotationMap) Names(property string) []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Entries[property]))
	for name := range m.Entries[property] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *AnnotationMap) IsEmpty() bool {
	return m == nil || len(m.Entries) == 0
}

// Clone deep copies the map. A nil map clones to nil.
func (m *AnnotationMap) Clone() *AnnotationMap {
	if m == nil {
		return nil
	}
	clone := NewAnnotationMap()
	for prop, byName := range m.Entries {
		for _, list := range byName {
			for _, annotation := range list {
				clone.Add(prop, annotation)
			}
		}
	}
	return clone
}

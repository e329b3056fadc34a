package adapters

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"zk-langdef/internal/ports"
	"zk-langdef/internal/shared"
	"zk-langdef/internal/types"
)

type LangDocumentAdapter struct {
	mu    sync.Mutex
	cache map[string]langDocumentCacheEntry
}

func NewLangDocumentAdapter() *LangDocumentAdapter {
	return &LangDocumentAdapter{cache: map[string]langDocumentCacheEntry{}}
}

// langXML covers both <language> and <language-addon> roots; the root
// element name decides which fields are meaningful.
type langXML struct {
	XMLName      xml.Name
	LanguageName string         `xml:"language-name"`
	DeviceType   string         `xml:"device-type"`
	Namespace    string         `xml:"namespace"`
	Extensions   []string       `xml:"extension"`
	AddonName    string         `xml:"addon-name"`
	Depends      []string       `xml:"depends"`
	Version      versionXML     `xml:"version"`
	Components   []componentXML `xml:"component"`
}

type versionXML struct {
	Class     string `xml:"version-class"`
	UID       string `xml:"version-uid"`
	ZKVersion string `xml:"zk-version"`
}

type componentXML struct {
	Name           string          `xml:"component-name"`
	ComponentClass string          `xml:"component-class"`
	WidgetClass    string          `xml:"widget-class"`
	Extends        string          `xml:"extends"`
	Molds          []moldXML       `xml:"mold"`
	Properties     []propertyXML   `xml:"property"`
	Annotations    []annotationXML `xml:"annotation"`
}

type moldXML struct {
	Name string `xml:"mold-name"`
	URI  string `xml:"mold-uri"`
}

type propertyXML struct {
	Name  string `xml:"property-name"`
	Value string `xml:"property-value"`
}

type annotationXML struct {
	Name       string         `xml:"annotation-name"`
	Property   string         `xml:"property-name"`
	Attributes []attributeXML `xml:"attribute"`
}

type attributeXML struct {
	Name   string   `xml:"attribute-name"`
	Values []string `xml:"attribute-value"`
}

type langDocumentCacheEntry struct {
	modTime time.Time
	doc     types.LangDocument
}

func (a *LangDocumentAdapter) ParseFile(path string) (types.LangDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.LangDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read language definition: " + path).
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.doc, nil
	}
	a.mu.Unlock()

	file, err := os.Open(path)
	if err != nil {
		return types.LangDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read language definition: " + path).
			WithCause(err)
	}
	defer file.Close()

	doc, err := a.Parse(file, shared.FileURL(path))
	if err != nil {
		return types.LangDocument{}, err
	}

	a.mu.Lock()
	a.cache[path] = langDocumentCacheEntry{modTime: info.ModTime(), doc: doc}
	a.mu.Unlock()
	return doc, nil
}

func (a *LangDocumentAdapter) Parse(r io.Reader, url string) (types.LangDocument, error) {
	var raw langXML
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return types.LangDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse language definition: " + url).
			WithCause(err)
	}

	doc := types.LangDocument{
		URL:          url,
		LanguageName: strings.TrimSpace(raw.LanguageName),
		DeviceType:   strings.TrimSpace(raw.DeviceType),
		Namespace:    strings.TrimSpace(raw.Namespace),
	}
	switch raw.XMLName.Local {
	case "language":
		doc.Kind = types.DocumentKindLanguage
	case "language-addon":
		doc.Kind = types.DocumentKindAddon
	default:
		return types.LangDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported root element <%s> in %s", raw.XMLName.Local, url))
	}
	if doc.LanguageName == "" {
		return types.LangDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("language-name is required: " + url)
	}

	for _, ext := range raw.Extensions {
		if value := strings.TrimSpace(ext); value != "" {
			doc.Extensions = append(doc.Extensions, value)
		}
	}

	if doc.IsAddon() {
		doc.AddonName = strings.TrimSpace(raw.AddonName)
		if doc.AddonName == "" {
			return types.LangDocument{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("addon-name is required: " + url)
		}
		var depends []string
		for _, value := range raw.Depends {
			depends = append(depends, shared.SplitNames(value)...)
		}
		doc.Depends = shared.UniqueStrings(depends)
		doc.Version = types.AddonVersion{
			Class:     strings.TrimSpace(raw.Version.Class),
			UID:       strings.TrimSpace(raw.Version.UID),
			ZKVersion: strings.TrimSpace(raw.Version.ZKVersion),
		}
	}

	for _, comp := range raw.Components {
		spec, err := convertComponent(comp, url)
		if err != nil {
			return types.LangDocument{}, err
		}
		doc.Components = append(doc.Components, spec)
	}

	log.Debug().
		Str("url", url).
		Str("kind", string(doc.Kind)).
		Int("components", len(doc.Components)).
		Msg("language definition parsed")
	return doc, nil
}

func convertComponent(comp componentXML, url string) (types.ComponentSpec, error) {
	spec := types.ComponentSpec{
		Name:           strings.TrimSpace(comp.Name),
		ComponentClass: strings.TrimSpace(comp.ComponentClass),
		WidgetClass:    strings.TrimSpace(comp.WidgetClass),
		Extends:        strings.TrimSpace(comp.Extends),
	}
	if spec.Name == "" {
		return types.ComponentSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("component-name is required: " + url)
	}
	for _, mold := range comp.Molds {
		name := strings.TrimSpace(mold.Name)
		if name == "" {
			name = "default"
		}
		spec.Molds = append(spec.Molds, types.MoldSpec{Name: name, URI: strings.TrimSpace(mold.URI)})
	}
	for _, prop := range comp.Properties {
		name := strings.TrimSpace(prop.Name)
		if name == "" {
			return types.ComponentSpec{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("property-name is required in component %s: %s", spec.Name, url))
		}
		spec.Properties = append(spec.Properties, types.PropertySpec{Name: name, Value: strings.TrimSpace(prop.Value)})
	}
	for _, ann := range comp.Annotations {
		name := strings.TrimSpace(ann.Name)
		if name == "" {
			return types.ComponentSpec{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("annotation-name is required in component %s: %s", spec.Name, url))
		}
		annotation := types.Annotation{Name: name}
		for _, attr := range ann.Attributes {
			attrName := strings.TrimSpace(attr.Name)
			if attrName == "" {
				attrName = "value"
			}
			values := make([]string, 0, len(attr.Values))
			for _, value := range attr.Values {
				values = append(values, strings.TrimSpace(value))
			}
			annotation.Attributes = append(annotation.Attributes, types.AnnotationAttribute{Name: attrName, Values: values})
		}
		spec.Annotations = append(spec.Annotations, types.AnnotationSpec{
			Property:   strings.TrimSpace(ann.Property),
			Annotation: annotation,
		})
	}
	return spec, nil
}

var _ ports.LangDocumentPort = (*LangDocumentAdapter)(nil)

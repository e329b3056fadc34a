package core

import (
	"sort"
	"strings"

	"zk-langdef/internal/types"
)

// Registry holds every language, component, and addon known to one
// application. It is created by the application and passed to the loader;
// nothing in this package keeps registry state in globals.
type Registry struct {
	languages  map[string]*types.LanguageDefinition
	langOrder  []string
	byExt      map[string]string
	addons     map[string]types.AddonInfo
	addonOrder []string
	extensions []types.ExtensionRecord
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset drops every definition, returning the registry to its initial
// state.
func (r *Registry) Reset() {
	r.languages = map[string]*types.LanguageDefinition{}
	r.langOrder = nil
	r.byExt = map[string]string{}
	r.addons = map[string]types.AddonInfo{}
	r.addonOrder = nil
	r.extensions = nil
}

// Clone deep copies the registry. Documents are merged into a clone and
// adopted only when the whole document succeeds.
func (r *Registry) Clone() *Registry {
	clone := &Registry{
		languages:  make(map[string]*types.LanguageDefinition, len(r.languages)),
		langOrder:  append([]string(nil), r.langOrder...),
		byExt:      make(map[string]string, len(r.byExt)),
		addons:     make(map[string]types.AddonInfo, len(r.addons)),
		addonOrder: append([]string(nil), r.addonOrder...),
		extensions: append([]types.ExtensionRecord(nil), r.extensions...),
	}
	for name, lang := range r.languages {
		clone.languages[name] = lang.Clone()
	}
	for ext, name := range r.byExt {
		clone.byExt[ext] = name
	}
	for name, info := range r.addons {
		info.Depends = append([]string(nil), info.Depends...)
		clone.addons[name] = info
	}
	return clone
}

func (r *Registry) adopt(staged *Registry) {
	*r = *staged
}

func (r *Registry) Language(name string) (*types.LanguageDefinition, bool) {
	lang, ok := r.languages[name]
	return lang, ok
}

// LanguageByExtension returns the language that first claimed the file
// extension.
func (r *Registry) LanguageByExtension(ext string) (*types.LanguageDefinition, bool) {
	name, ok := r.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return nil, false
	}
	return r.Language(name)
}

// LanguagesByDevice returns the languages serving a client device type.
func (r *Registry) LanguagesByDevice(device string) []*types.LanguageDefinition {
	var result []*types.LanguageDefinition
	for _, name := range r.langOrder {
		if lang := r.languages[name]; lang.DeviceType == device {
			result = append(result, lang)
		}
	}
	return result
}

func (r *Registry) Languages() []*types.LanguageDefinition {
	result := make([]*types.LanguageDefinition, 0, len(r.langOrder))
	for _, name := range r.langOrder {
		result = append(result, r.languages[name])
	}
	return result
}

// ComponentsByWidgetClass returns every definition rendered by a client
// widget class.
func (r *Registry) ComponentsByWidgetClass(widgetClass string) []*types.ComponentDefinition {
	var result []*types.ComponentDefinition
	for _, lang := range r.Languages() {
		for _, def := range lang.Components() {
			if def.WidgetClass == widgetClass {
				result = append(result, def)
			}
		}
	}
	return result
}

func (r *Registry) Addon(name string) (types.AddonInfo, bool) {
	info, ok := r.addons[name]
	return info, ok
}

// Addons returns loaded addons in load order.
func (r *Registry) Addons() []types.AddonInfo {
	result := make([]types.AddonInfo, 0, len(r.addonOrder))
	for _, name := range r.addonOrder {
		result = append(result, r.addons[name])
	}
	return result
}

func (r *Registry) ensureLanguage(doc types.LangDocument) (*types.LanguageDefinition, bool) {
	lang, ok := r.languages[doc.LanguageName]
	if !ok {
		lang = types.NewLanguageDefinition(doc.LanguageName, doc.DeviceType, doc.Namespace)
		r.languages[doc.LanguageName] = lang
		r.langOrder = append(r.langOrder, doc.LanguageName)
	}
	if lang.DeviceType == "" {
		lang.DeviceType = doc.DeviceType
	}
	if lang.Namespace == "" {
		lang.Namespace = doc.Namespace
	}
	for _, ext := range doc.Extensions {
		normalized := strings.ToLower(strings.TrimPrefix(ext, "."))
		lang.AddExtension(normalized)
		if _, taken := r.byExt[normalized]; !taken {
			r.byExt[normalized] = lang.Name
		}
	}
	return lang, !ok
}

func (r *Registry) registerAddon(info types.AddonInfo) {
	if _, ok := r.addons[info.Name]; !ok {
		r.addonOrder = append(r.addonOrder, info.Name)
	}
	r.addons[info.Name] = info
}

func (r *Registry) recordExtension(record types.ExtensionRecord) {
	r.extensions = append(r.extensions, record)
}

// extensionsOf returns the recorded addon extensions of a parent.
func (r *Registry) extensionsOf(language string, parent string) []types.ExtensionRecord {
	var result []types.ExtensionRecord
	for _, record := range r.extensions {
		if record.Language == language && record.Parent == parent {
			result = append(result, record)
		}
	}
	return result
}

// Report flattens the registry for serialization.
func (r *Registry) Report() types.RegistryReport {
	report := types.RegistryReport{}
	for _, lang := range r.Languages() {
		langReport := types.LanguageReport{
			Name:       lang.Name,
			DeviceType: lang.DeviceType,
			Namespace:  lang.Namespace,
			Extensions: append([]string(nil), lang.Extensions...),
		}
		for _, def := range lang.Components() {
			langReport.Components = append(langReport.Components, ComponentReport(def))
		}
		report.Languages = append(report.Languages, langReport)
	}
	for _, info := range r.Addons() {
		report.Addons = append(report.Addons, types.AddonReport{
			Name:     info.Name,
			URL:      info.URL,
			Language: info.Language,
			Depends:  append([]string(nil), info.Depends...),
			Version:  info.Version.UID,
		})
	}
	return report
}

// ComponentReport flattens one definition, rendering annotations as
// "property: @NAME(...)" lines sorted by property and name.
func ComponentReport(def *types.ComponentDefinition) types.ComponentReport {
	report := types.ComponentReport{
		Name:        def.Name,
		Class:       def.ImplementationClass,
		WidgetClass: def.WidgetClass,
		Extends:     def.Extends,
		Origin:      def.Origin.URL,
	}
	for _, ref := range def.Contributors {
		report.Contributors = append(report.Contributors, ref.AddonName)
	}
	annotations := def.AnnotationMap()
	for _, prop := range annotations.Properties() {
		for _, name := range annotations.Names(prop) {
			annotation, _ := annotations.Annotation(prop, name)
			label := prop
			if label == "" {
				label = "<component>"
			}
			report.Annotations = append(report.Annotations, label+": "+annotation.String())
		}
	}
	sort.Strings(report.Contributors)
	return report
}

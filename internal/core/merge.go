package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"zk-langdef/internal/types"
)

func mergeDocument(ctx context.Context, staged *Registry, guard DependencyGuard, doc types.LangDocument) error {
	var lang *types.LanguageDefinition
	if doc.IsAddon() {
		if _, exists := staged.Addon(doc.AddonName); exists {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("addon %s already loaded: %s", doc.AddonName, doc.URL))
		}
		existing, ok := staged.Language(doc.LanguageName)
		if !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("language %s not defined for addon %s: %s", doc.LanguageName, doc.AddonName, doc.URL))
		}
		lang = existing
		for _, ext := range doc.Extensions {
			lang.AddExtension(ext)
		}
		staged.registerAddon(types.AddonInfo{
			Name:     doc.AddonName,
			URL:      doc.URL,
			Language: doc.LanguageName,
			Depends:  append([]string(nil), doc.Depends...),
			Version:  doc.Version,
		})
	} else {
		var created bool
		lang, created = staged.ensureLanguage(doc)
		if created {
			log.Ctx(ctx).Debug().Str("language", lang.Name).Str("device", lang.DeviceType).Msg("language defined")
		}
	}

	for _, spec := range doc.Components {
		if err := mergeComponent(staged, guard, lang, doc, spec); err != nil {
			return err
		}
	}
	return nil
}

func mergeComponent(staged *Registry, guard DependencyGuard, lang *types.LanguageDefinition, doc types.LangDocument, spec types.ComponentSpec) error {
	ref := doc.Ref()
	existed := lang.HasComponent(spec.Name)

	switch {
	case spec.Extends == "":
		if spec.ComponentClass == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("component-class is required for component %s: %s", spec.Name, doc.URL))
		}
		def := types.NewComponentDefinition(spec.Name)
		def.Origin = ref
		def.AddContributor(ref)
		applyComponentSpec(def, spec)
		if existed {
			if err := guard.CheckContribution(doc, spec.Name); err != nil {
				return err
			}
		}
		lang.PutComponent(def)

	case spec.Extends == spec.Name:
		def, err := lang.Component(spec.Name)
		if err != nil {
			return err
		}
		if err := guard.CheckContribution(doc, spec.Name); err != nil {
			return err
		}
		applyComponentSpec(def, spec)
		def.AddContributor(ref)

	default:
		parent, err := lang.Component(spec.Extends)
		if err != nil {
			parent = nil
		}
		if err := guard.CheckExtends(doc, spec, parent); err != nil {
			return err
		}
		if parent == nil {
			return &types.DefinitionNotFoundError{Language: lang.Name, Component: spec.Extends}
		}
		if existed {
			if err := guard.CheckContribution(doc, spec.Name); err != nil {
				return err
			}
		}
		def := parent.Clone(spec.Name)
		def.Extends = spec.Extends
		def.Origin = ref
		def.AddContributor(ref)
		applyComponentSpec(def, spec)
		lang.PutComponent(def)
		if doc.IsAddon() {
			staged.recordExtension(types.ExtensionRecord{
				Language:  lang.Name,
				Component: spec.Name,
				Parent:    spec.Extends,
				Document:  ref,
			})
		}
	}
	return nil
}

func applyComponentSpec(def *types.ComponentDefinition, spec types.ComponentSpec) {
	if spec.ComponentClass != "" {
		def.ImplementationClass = spec.ComponentClass
	}
	if spec.WidgetClass != "" {
		def.WidgetClass = spec.WidgetClass
	}
	for _, mold := range spec.Molds {
		def.Molds[mold.Name] = mold.URI
	}
	for _, prop := range spec.Properties {
		def.Properties[prop.Name] = prop.Value
	}
	if len(spec.Annotations) == 0 {
		return
	}
	if def.Annotations == nil {
		def.Annotations = types.NewAnnotationMap()
	}
	for _, ann := range spec.Annotations {
		def.Annotations.Add(ann.Property, ann.Annotation)
	}
}

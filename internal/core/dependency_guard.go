package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"zk-langdef/internal/types"
)

// DependencyGuard checks that an addon component extending another
// component declares <depends> on every addon that contributes to the
// parent. Without it the child's inherited annotations would depend on
// which addon the classpath happened to list first.
type DependencyGuard struct {
	registry *Registry
	pending  *pendingClaims
}

func newDependencyGuard(registry *Registry, pending *pendingClaims) DependencyGuard {
	return DependencyGuard{registry: registry, pending: pending}
}

// Closure returns the transitive <depends> set of an addon, seeded with
// the given direct dependencies. The addon itself is not included.
func (g DependencyGuard) Closure(addon string, direct []string) map[string]struct{} {
	closure := map[string]struct{}{}
	var visit func(name string)
	visit = func(name string) {
		if _, seen := closure[name]; seen || name == addon {
			return
		}
		closure[name] = struct{}{}
		for _, next := range g.dependsOf(name) {
			visit(next)
		}
	}
	for _, name := range direct {
		visit(name)
	}
	return closure
}

func (g DependencyGuard) dependsOf(addon string) []string {
	if info, ok := g.registry.Addon(addon); ok {
		return info.Depends
	}
	if g.pending != nil {
		return g.pending.dependsOf(addon)
	}
	return nil
}

// CheckExtends validates component spec in addon document doc extending
// parent. parent is nil when the extended name does not resolve yet.
func (g DependencyGuard) CheckExtends(doc types.LangDocument, spec types.ComponentSpec, parent *types.ComponentDefinition) error {
	if !doc.IsAddon() || !spec.ExtendsOther() {
		return nil
	}
	closure := g.Closure(doc.AddonName, doc.Depends)
	missing := &types.MissingDependsError{
		URL:                   doc.URL,
		ComponentName:         spec.Name,
		ExtendedComponentName: spec.Extends,
	}

	var claimants []string
	if g.pending != nil {
		claimants = g.pending.claimants(doc.LanguageName, spec.Extends, doc.AddonName)
	}
	for _, addon := range claimants {
		if _, ok := closure[addon]; !ok {
			return missing
		}
	}

	if parent == nil {
		if len(claimants) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("component %s extends %s from addon %s which is not loaded yet: %s",
					spec.Name, spec.Extends, claimants[0], doc.URL))
		}
		return nil
	}

	for _, addon := range parent.ContributingAddons() {
		if addon == doc.AddonName {
			continue
		}
		if _, ok := closure[addon]; !ok {
			return missing
		}
	}
	return nil
}

// CheckContribution validates that addon document doc may change the
// named definition. Any addon component already extending it inherited a
// copy without doc's changes: that is a MissingDependsError when the
// extender does not depend on doc's addon, and FailedPrecondition when it
// does but was merged first.
func (g DependencyGuard) CheckContribution(doc types.LangDocument, component string) error {
	if !doc.IsAddon() {
		return nil
	}
	for _, record := range g.registry.extensionsOf(doc.LanguageName, component) {
		if record.Document.AddonName == doc.AddonName {
			continue
		}
		info, _ := g.registry.Addon(record.Document.AddonName)
		closure := g.Closure(info.Name, info.Depends)
		if _, ok := closure[doc.AddonName]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("component %s in addon %s was merged before its dependency %s: %s",
					record.Component, info.Name, doc.AddonName, record.Document.URL))
		}
		return &types.MissingDependsError{
			URL:                   record.Document.URL,
			ComponentName:         record.Component,
			ExtendedComponentName: record.Parent,
		}
	}
	return nil
}

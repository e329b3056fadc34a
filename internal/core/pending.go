package core

import "zk-langdef/internal/types"

type claimKey struct {
	language  string
	component string
}

// pendingClaims indexes addons that are part of the current load plan but
// not merged yet, so the guard can see which addon will touch a component.
type pendingClaims struct {
	claims  map[claimKey][]string
	depends map[string][]string
}

func newPendingClaims(addons []types.LangDocument) *pendingClaims {
	p := &pendingClaims{
		claims:  map[claimKey][]string{},
		depends: map[string][]string{},
	}
	for _, doc := range addons {
		p.depends[doc.AddonName] = doc.Depends
		for _, spec := range doc.Components {
			key := claimKey{language: doc.LanguageName, component: spec.Name}
			p.claims[key] = appendUnique(p.claims[key], doc.AddonName)
		}
	}
	return p
}

func (p *pendingClaims) claimants(language string, component string, except string) []string {
	var result []string
	for _, addon := range p.claims[claimKey{language: language, component: component}] {
		if addon != except {
			result = append(result, addon)
		}
	}
	return result
}

func (p *pendingClaims) dependsOf(addon string) []string {
	return p.depends[addon]
}

// resolve removes a merged addon from the index.
func (p *pendingClaims) resolve(addon string) {
	delete(p.depends, addon)
	for key, addons := range p.claims {
		kept := addons[:0]
		for _, name := range addons {
			if name != addon {
				kept = append(kept, name)
			}
		}
		if len(kept) == 0 {
			delete(p.claims, key)
			continue
		}
		p.claims[key] = kept
	}
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}

package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"zk-langdef/internal/types"
)

// VersionChecker decides whether an addon's <zk-version> requirement is
// satisfied by the running framework version.
type VersionChecker struct {
	runtime pep440.Version
	enabled bool
	cache   map[string]pep440.Version
}

func NewVersionChecker(runtime string, enabled bool) (*VersionChecker, error) {
	checker := &VersionChecker{enabled: enabled, cache: map[string]pep440.Version{}}
	if !enabled {
		return checker, nil
	}
	parsed, err := pep440.Parse(strings.TrimSpace(runtime))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid zk version: %s", runtime)).
			WithCause(err)
	}
	checker.runtime = parsed
	return checker, nil
}

// Compatible reports whether the addon may be loaded. Addons without a
// requirement are always compatible.
func (c *VersionChecker) Compatible(doc types.LangDocument) (bool, error) {
	required := strings.TrimSpace(doc.Version.ZKVersion)
	if !c.enabled || !doc.IsAddon() || required == "" {
		return true, nil
	}
	parsed, err := c.version(required)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid zk-version %s in addon %s: %s", required, doc.AddonName, doc.URL)).
			WithCause(err)
	}
	return !c.runtime.LessThan(parsed), nil
}

func (c *VersionChecker) version(value string) (pep440.Version, error) {
	if parsed, ok := c.cache[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.cache[value] = parsed
	return parsed, nil
}

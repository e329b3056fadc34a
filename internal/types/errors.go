package types

import "fmt"

// MissingDependsError reports a component that extends a definition
// contributed by an addon its document does not declare <depends> on.
type MissingDependsError struct {
	URL                   string
	ComponentName         string
	ExtendedComponentName string
}

func (e *MissingDependsError) Error() string {
	return fmt.Sprintf("Using <extends> in a <component> without <depends> will eventually cause problems depending on the classpath order. component=%s, trying to extend=%s, url=%s",
		e.ComponentName, e.ExtendedComponentName, e.URL)
}

type DefinitionNotFoundError struct {
	Language  string
	Component string
}

func (e *DefinitionNotFoundError) Error() string {
	return fmt.Sprintf("component definition not found: %s (language %s)", e.Component, e.Language)
}

package ports

import "io"

// Resource is one match of a resource name on the classpath.
type Resource struct {
	URL  string
	Open func() (io.ReadCloser, error)
}

// ResourceLocatorPort finds named resources across classpath roots.
// Results follow root order; every match is returned.
type ResourceLocatorPort interface {
	Resources(roots []string, name string) ([]Resource, error)
}

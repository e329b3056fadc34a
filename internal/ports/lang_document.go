package ports

import (
	"io"

	"zk-langdef/internal/types"
)

// LangDocumentPort parses lang.xml and lang-addon.xml descriptors.
type LangDocumentPort interface {
	// ParseFile reads a descriptor from the local filesystem. The returned
	// document's URL is the file: URL of the path.
	ParseFile(path string) (types.LangDocument, error)

	// Parse reads a descriptor from r and stamps it with url.
	Parse(r io.Reader, url string) (types.LangDocument, error)
}

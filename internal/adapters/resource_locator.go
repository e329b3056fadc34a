package adapters

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"zk-langdef/internal/ports"
	"zk-langdef/internal/shared"
)

// ResourceLocatorAdapter looks resources up in classpath roots. A root is
// either a directory or a .jar/.zip archive.
type ResourceLocatorAdapter struct{}

func NewResourceLocatorAdapter() ResourceLocatorAdapter {
	return ResourceLocatorAdapter{}
}

func (a ResourceLocatorAdapter) Resources(roots []string, name string) ([]ports.Resource, error) {
	entry := path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "/"))
	if entry == "" || entry == "." {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resource name is empty")
	}
	var resources []ports.Resource
	for _, root := range roots {
		if strings.TrimSpace(root) == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("classpath root is empty")
		}
		info, err := os.Stat(root)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("classpath root not found: " + root).
				WithCause(err)
		}
		var found []ports.Resource
		if info.IsDir() {
			found = directoryResource(root, entry)
		} else if isArchive(root) {
			found, err = archiveResource(root, entry)
			if err != nil {
				return nil, err
			}
		} else {
			log.Debug().Str("root", root).Msg("classpath root is neither directory nor archive, skipped")
			continue
		}
		resources = append(resources, found...)
	}
	log.Debug().Str("name", entry).Int("matches", len(resources)).Msg("classpath resources located")
	return resources, nil
}

func directoryResource(root string, entry string) []ports.Resource {
	full := filepath.Join(root, filepath.FromSlash(entry))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil
	}
	return []ports.Resource{{
		URL: shared.FileURL(full),
		Open: func() (io.ReadCloser, error) {
			return os.Open(full)
		},
	}}
}

func archiveResource(archive string, entry string) ([]ports.Resource, error) {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to open classpath archive: " + archive).
			WithCause(err)
	}
	defer reader.Close()

	var resources []ports.Resource
	for _, file := range reader.File {
		if path.Clean(file.Name) != entry {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read archive entry: " + archive + "!/" + entry).
				WithCause(err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read archive entry: " + archive + "!/" + entry).
				WithCause(err)
		}
		resources = append(resources, ports.Resource{
			URL: shared.JarURL(archive, entry),
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(content)), nil
			},
		})
	}
	return resources, nil
}

func isArchive(root string) bool {
	switch strings.ToLower(filepath.Ext(root)) {
	case ".jar", ".zip":
		return true
	default:
		return false
	}
}

var _ ports.ResourceLocatorPort = ResourceLocatorAdapter{}

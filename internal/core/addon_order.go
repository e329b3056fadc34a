package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/dominikbraun/graph"
	"github.com/rs/zerolog/log"

	"zk-langdef/internal/types"
)

// OrderAddons returns the addons sorted so that every addon follows the
// addons it depends on. Addons without an ordering constraint keep the
// caller's order. Depending on an addon that is not in the list only
// produces a warning.
func OrderAddons(ctx context.Context, addons []types.LangDocument) ([]types.LangDocument, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	index := make(map[string]int, len(addons))
	for i, doc := range addons {
		if prev, dup := index[doc.AddonName]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate addon %s: %s and %s", doc.AddonName, addons[prev].URL, doc.URL))
		}
		index[doc.AddonName] = i
		if err := g.AddVertex(doc.AddonName); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to register addon " + doc.AddonName).
				WithCause(err)
		}
	}

	for _, doc := range addons {
		for _, dep := range doc.Depends {
			if dep == doc.AddonName {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("addon %s depends on itself: %s", doc.AddonName, doc.URL))
			}
			if _, ok := index[dep]; !ok {
				log.Ctx(ctx).Warn().
					Str("addon", doc.AddonName).
					Str("depends", dep).
					Str("url", doc.URL).
					Msg("addon depends on an addon that is not on the classpath")
				continue
			}
			err := g.AddEdge(dep, doc.AddonName)
			switch {
			case err == nil, errors.Is(err, graph.ErrEdgeAlreadyExists):
			case errors.Is(err, graph.ErrEdgeCreatesCycle):
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("addon depends cycle between %s and %s", dep, doc.AddonName)).
					WithCause(err)
			default:
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to record addon dependency").
					WithCause(err)
			}
		}
	}

	names, err := graph.StableTopologicalSort(g, func(a, b string) bool {
		return index[a] < index[b]
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("failed to order addons").
			WithCause(err)
	}

	ordered := make([]types.LangDocument, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, addons[index[name]])
	}
	log.Ctx(ctx).Debug().Strs("order", names).Msg("addons ordered")
	return ordered, nil
}

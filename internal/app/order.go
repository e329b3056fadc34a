package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"zk-langdef/internal/core"
	"zk-langdef/internal/types"
)

// Order computes the depends-aware addon order without merging anything.
// Addons that require a newer zk version are left out and reported, as
// Load would skip them.
func (s Service) Order(ctx context.Context, req OrderRequest) (OrderResult, error) {
	cfg, err := s.resolveSources(req.Sources)
	if err != nil {
		return OrderResult{}, err
	}
	plan, err := s.buildPlan(ctx, cfg)
	if err != nil {
		return OrderResult{}, err
	}
	versions, err := core.NewVersionChecker(cfg.ZKVersion, cfg.VersionCheckEnabled())
	if err != nil {
		return OrderResult{}, err
	}

	result := OrderResult{}
	compatible := make([]types.LangDocument, 0, len(plan.Addons))
	for _, doc := range plan.Addons {
		ok, err := versions.Compatible(doc)
		if err != nil {
			return OrderResult{}, err
		}
		if !ok {
			log.Ctx(ctx).Warn().
				Str("addon", doc.AddonName).
				Str("requires", doc.Version.ZKVersion).
				Msg("addon left out of the order, it requires a newer zk version")
			result.Skipped = append(result.Skipped, doc.AddonName)
			continue
		}
		compatible = append(compatible, doc)
	}

	ordered, err := core.OrderAddons(ctx, compatible)
	if err != nil {
		return OrderResult{}, err
	}
	result.Addons = make([]OrderedAddon, 0, len(ordered))
	for _, doc := range ordered {
		result.Addons = append(result.Addons, OrderedAddon{
			Name:    doc.AddonName,
			URL:     doc.URL,
			Depends: doc.Depends,
		})
	}
	return result, nil
}

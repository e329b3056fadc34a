package app

import "context"

// Validate loads every definition and reports the order addons were
// merged in. Any guard violation is returned unchanged.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	_, summary, err := s.load(ctx, req.Sources)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Languages:  summary.Languages,
		AddonOrder: summary.Addons,
		Skipped:    summary.Skipped,
	}, nil
}

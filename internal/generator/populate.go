package generator

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sitegen_server/internal/provider"
	"sitegen_server/internal/schema"
	"sitegen_server/internal/textscan"
	"sitegen_server/internal/types"
)

// populate fills every blueprint entry concurrently. One result slot per
// blueprint index keeps output order equal to blueprint order regardless of
// completion order; failed entries leave their slot nil and are dropped in
// the final compaction. The only error returned is cancellation, in which
// case partial results are discarded.
func (s *Service) populate(
	ctx context.Context,
	bp []string,
	strat *types.BrandStrategy,
	req types.GenerationRequest,
	prov provider.Provider,
	log *zap.Logger,
) ([]types.GeneratedSection, error) {
	slots := make([]*types.GeneratedSection, len(bp))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, sectionType := range bp {
		i, sectionType := i, sectionType
		g.Go(func() error {
			section, err := s.populateSection(gctx, sectionType, strat, req, prov, log)
			if err != nil {
				// Cancellation aborts the whole run; anything else was
				// already logged and isolates to this section.
				return err
			}
			slots[i] = section
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sections := make([]types.GeneratedSection, 0, len(bp))
	for _, slot := range slots {
		if slot != nil {
			sections = append(sections, *slot)
		}
	}
	return sections, nil
}

// populateSection resolves a variant and fills its props. A nil section with
// nil error means the section is skipped; an error is only returned for
// cancellation.
func (s *Service) populateSection(
	ctx context.Context,
	sectionType string,
	strat *types.BrandStrategy,
	req types.GenerationRequest,
	prov provider.Provider,
	log *zap.Logger,
) (*types.GeneratedSection, error) {
	variant := s.catalog.Resolve(sectionType, req.Description, req.Industry, "")
	if variant == nil {
		log.Warn("no variant in catalog, section skipped", zap.String("sectionType", sectionType))
		s.metrics.SectionsFailed.Inc()
		return nil, nil
	}

	creq := s.buildContentRequest(sectionType, variant.Name, variant.Description, variant.PropsSchema, strat, req)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	raw, err := prov.FillProps(callCtx, creq)
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("props generation failed, section skipped",
			zap.String("sectionType", sectionType),
			zap.String("variant", variant.Name),
			zap.Error(err))
		s.metrics.SectionsFailed.Inc()
		return nil, nil
	}

	props, err := schema.ParseAndValidate(raw, variant.Name, variant.PropsSchema)
	if err != nil {
		log.Warn("props failed validation, section skipped",
			zap.String("sectionType", sectionType),
			zap.String("variant", variant.Name),
			zap.Error(err))
		s.metrics.SectionsFailed.Inc()
		return nil, nil
	}

	s.metrics.SectionsGenerated.Inc()
	return &types.GeneratedSection{
		Type:    variant.Name,
		Variant: variant.Name,
		Props:   props,
	}, nil
}

func (s *Service) buildContentRequest(
	sectionType, variantName, variantDescription string,
	propsSchema map[string]string,
	strat *types.BrandStrategy,
	req types.GenerationRequest,
) provider.ContentRequest {
	tone := defaultToneOfVoice
	businessName := req.BusinessName
	if strat != nil {
		tone = strat.Identity.ToneOfVoice
		if businessName == "" {
			businessName = strat.Identity.Name
		}
	}
	if businessName == "" {
		businessName = textscan.ExtractName(req.Description, req.Industry)
	}

	return provider.ContentRequest{
		SectionType:        sectionType,
		VariantName:        variantName,
		VariantDescription: variantDescription,
		PropsSchema:        propsSchema,
		Industry:           req.Industry,
		Style:              req.Style,
		BusinessName:       businessName,
		Description:        req.Description,
		ToneOfVoice:        tone,
		TargetAudience:     req.TargetAudience,
	}
}

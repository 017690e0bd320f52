// Package generator runs the website generation pipeline: strategy
// synthesis, blueprint construction, concurrent section population, and
// final document assembly.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitegen_server/internal/blueprint"
	"sitegen_server/internal/catalog"
	"sitegen_server/internal/metrics"
	"sitegen_server/internal/provider"
	"sitegen_server/internal/strategy"
	"sitegen_server/internal/textscan"
	"sitegen_server/internal/types"
)

const defaultToneOfVoice = "friendly and professional"

// Service owns the read-only catalogs and provider set and runs requests
// against them. Safe for concurrent use.
type Service struct {
	catalog     *catalog.Catalog
	template    *provider.TemplateProvider
	providers   map[types.ProviderKind]provider.Provider
	timeout     time.Duration
	concurrency int
	log         *zap.Logger
	metrics     *metrics.Metrics
}

// Options tunes the pipeline; zero values pick sane defaults.
type Options struct {
	ProviderTimeout time.Duration // per provider call
	Concurrency     int           // parallel section fills
}

// NewService wires a pipeline. The template provider is mandatory: it is the
// default provider and the fallback target. Model-backed providers are
// optional and registered under their kind.
func NewService(
	cat *catalog.Catalog,
	template *provider.TemplateProvider,
	modelProviders map[types.ProviderKind]provider.Provider,
	m *metrics.Metrics,
	log *zap.Logger,
	opts Options,
) *Service {
	providers := map[types.ProviderKind]provider.Provider{
		types.ProviderTemplate: template,
	}
	for kind, p := range modelProviders {
		providers[kind] = p
	}
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = 60 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &Service{
		catalog:     cat,
		template:    template,
		providers:   providers,
		timeout:     opts.ProviderTimeout,
		concurrency: opts.Concurrency,
		log:         log,
		metrics:     m,
	}
}

// Result is one finished pipeline run.
type Result struct {
	GenerationID string
	Website      *types.GeneratedWebsite
	Degraded     bool
	Message      string
}

// Generate runs the full pipeline. The returned error is reserved for
// unrecoverable conditions before any section is produced (empty blueprint,
// cancellation); provider trouble degrades the result instead of failing it.
func (s *Service) Generate(ctx context.Context, req types.GenerationRequest) (*Result, error) {
	id := uuid.New().String()
	log := s.log.With(zap.String("generationId", id), zap.String("industry", req.Industry))

	prov := s.selectProvider(req.Provider, log)

	// Strategy first: population prompts embed its fields, so it must finish
	// (or be written off) before any section starts.
	strat := s.synthesizeStrategy(ctx, prov, req, log)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	bp := blueprint.Build(req.Industry, req.Style)
	if len(bp) == 0 {
		s.metrics.GenerationRequests.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("empty blueprint for industry %q", req.Industry)
	}

	sections, err := s.populate(ctx, bp, strat, req, prov, log)
	if err != nil {
		s.metrics.GenerationRequests.WithLabelValues("cancelled").Inc()
		return nil, err
	}

	degraded := prov.Degraded() || strat == nil
	if prov.Degraded() {
		s.metrics.ProviderFallbacks.Inc()
	}

	website := &types.GeneratedWebsite{
		Components: sections,
		Metadata:   s.buildMetadata(req, strat),
	}

	message := fmt.Sprintf("generated %d of %d sections", len(sections), len(bp))
	if degraded {
		message += " (degraded: template content used)"
	}
	log.Info("generation complete",
		zap.Int("sections", len(sections)),
		zap.Int("blueprint", len(bp)),
		zap.Bool("degraded", degraded))
	s.metrics.GenerationRequests.WithLabelValues("success").Inc()

	return &Result{
		GenerationID: id,
		Website:      website,
		Degraded:     degraded,
		Message:      message,
	}, nil
}

// selectProvider resolves the requested provider kind, wrapped in the
// per-request failover policy. Unknown kinds fall back to templates.
func (s *Service) selectProvider(kind types.ProviderKind, log *zap.Logger) *provider.Failover {
	if kind == "" {
		kind = types.ProviderTemplate
	}
	primary, ok := s.providers[kind]
	if !ok {
		log.Warn("unknown provider requested, using template", zap.String("provider", string(kind)))
		primary = s.template
	}
	return provider.NewFailover(primary, s.template, log)
}

func (s *Service) synthesizeStrategy(ctx context.Context, prov provider.Provider, req types.GenerationRequest, log *zap.Logger) *types.BrandStrategy {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	strat, err := strategy.Synthesize(callCtx, prov, req)
	if err != nil {
		var genErr *strategy.GenerationError
		if errors.As(err, &genErr) {
			log.Warn("strategy synthesis failed, proceeding without strategy", zap.Error(err))
			return nil
		}
		log.Warn("unexpected strategy error, proceeding without strategy", zap.Error(err))
		return nil
	}
	return strat
}

func (s *Service) buildMetadata(req types.GenerationRequest, strat *types.BrandStrategy) types.WebsiteMetadata {
	title := req.BusinessName
	if title == "" && strat != nil {
		title = strat.Identity.Name
	}
	if title == "" {
		title = textscan.ExtractName(req.Description, req.Industry)
	}

	description := req.Description
	if strat != nil && strat.Identity.Tagline != "" {
		description = strat.Identity.Tagline
	}

	return types.WebsiteMetadata{
		Title:       title,
		Description: description,
		Industry:    req.Industry,
		Style:       req.Style,
		GeneratedAt: time.Now().UTC(),
	}
}

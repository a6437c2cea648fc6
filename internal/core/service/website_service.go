package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

const defaultGenerationTimeout = 30 * time.Second

// WebsiteService implements website generation and CRUD.
type WebsiteService struct {
	sites      ports.WebsiteRepository
	generator  ports.ContentGenerator
	genTimeout time.Duration
	log        zerolog.Logger
}

func NewWebsiteService(sites ports.WebsiteRepository, generator ports.ContentGenerator, genTimeout time.Duration, log zerolog.Logger) *WebsiteService {
	if genTimeout <= 0 {
		genTimeout = defaultGenerationTimeout
	}
	return &WebsiteService{sites: sites, generator: generator, genTimeout: genTimeout, log: log}
}

// Generate asks the content generator for a structured site and persists it.
// Content that comes back without service items counts as a failed
// generation and nothing is stored.
func (s *WebsiteService) Generate(ctx context.Context, in ports.GenerateSiteInput) (*domain.Website, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	content, err := s.generator.Generate(genCtx, in.BusinessType, in.Industry)
	if err != nil {
		s.log.Error().Err(err).Str("business_type", in.BusinessType).Msg("content generation failed")
		return nil, domain.ErrGenerationFailed
	}
	if !content.HasServices() {
		s.log.Warn().Str("business_type", in.BusinessType).Msg("generator returned content without services")
		return nil, domain.ErrGenerationFailed
	}

	now := time.Now().UTC()
	site := &domain.Website{
		OwnerID:      in.OwnerID,
		BusinessType: in.BusinessType,
		Industry:     in.Industry,
		Content:      *content,
		CreatedAt:    now,
		LastUpdated:  now,
	}

	id, err := s.sites.Insert(ctx, site)
	if err != nil {
		return nil, err
	}
	site.ID = id

	s.log.Info().Str("website_id", id).Str("owner_id", in.OwnerID).Msg("website created")
	return site, nil
}

func (s *WebsiteService) List(ctx context.Context) ([]ports.WebsiteSummary, error) {
	sites, err := s.sites.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.WebsiteSummary, len(sites))
	for i, site := range sites {
		summaries[i] = ports.WebsiteSummary{
			ID:           site.ID,
			BusinessType: site.BusinessType,
			Industry:     site.Industry,
			OwnerID:      site.OwnerID,
		}
	}
	return summaries, nil
}

func (s *WebsiteService) Get(ctx context.Context, id string) (*domain.Website, error) {
	return s.sites.FindByID(ctx, id)
}

// Update applies a partial update. Editors may only touch their own sites.
func (s *WebsiteService) Update(ctx context.Context, actor domain.Claims, id string, in ports.UpdateSiteInput) error {
	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(actor, site); err != nil {
		return err
	}

	fields := make(map[string]any)
	if len(in.Content) > 0 {
		for key, value := range in.Content {
			fields["content."+key] = value
		}
	} else {
		for key, value := range in.Fields {
			if key == "id" || key == "_id" {
				continue
			}
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		return domain.ErrNoUpdateFields
	}
	fields["last_updated"] = time.Now().UTC()

	return s.sites.UpdateFields(ctx, id, fields)
}

// Delete removes a site, honouring the same ownership rule as Update.
func (s *WebsiteService) Delete(ctx context.Context, actor domain.Claims, id string) error {
	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(actor, site); err != nil {
		return err
	}

	return s.sites.Delete(ctx, id)
}

// Preview returns the rendered content for the public preview page.
func (s *WebsiteService) Preview(ctx context.Context, id string) (*domain.WebsiteContent, error) {
	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &site.Content, nil
}

// checkOwnership enforces the Editor ownership rule. Admins pass through.
func checkOwnership(actor domain.Claims, site *domain.Website) error {
	if actor.Role == domain.RoleEditor && site.OwnerID != actor.UserID {
		return domain.ErrOwnershipRequired
	}
	return nil
}

package handler

import (
	"time"

	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

type generateSiteRequest struct {
	BusinessType string `json:"business_type" validate:"required"`
	Industry     string `json:"industry"      validate:"required"`
}

type generateSiteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Preview string `json:"preview_url"`
}

// Response-only types owned by the transport layer. Kept separate from the
// domain types so the JSON contract is not coupled to internal changes.

type websiteResponse struct {
	ID           string                `json:"id"`
	OwnerID      string                `json:"owner_id"`
	BusinessType string                `json:"business_type"`
	Industry     string                `json:"industry"`
	Content      domain.WebsiteContent `json:"content"`
	CreatedAt    time.Time             `json:"created_at"`
	LastUpdated  time.Time             `json:"last_updated"`
}

func toWebsiteResponse(site *domain.Website) websiteResponse {
	return websiteResponse{
		ID:           site.ID,
		OwnerID:      site.OwnerID,
		BusinessType: site.BusinessType,
		Industry:     site.Industry,
		Content:      site.Content,
		CreatedAt:    site.CreatedAt.UTC(),
		LastUpdated:  site.LastUpdated.UTC(),
	}
}

type websiteSummaryResponse struct {
	ID           string `json:"id"`
	BusinessType string `json:"business_type"`
	Industry     string `json:"industry"`
	OwnerID      string `json:"owner_id"`
}

func toSummaryResponses(summaries []ports.WebsiteSummary) []websiteSummaryResponse {
	out := make([]websiteSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = websiteSummaryResponse{
			ID:           s.ID,
			BusinessType: s.BusinessType,
			Industry:     s.Industry,
			OwnerID:      s.OwnerID,
		}
	}
	return out
}

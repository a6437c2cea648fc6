package domain

import (
	"errors"
	"time"
)

var ErrWebsiteNotFound = errors.New("website not found")
var ErrGenerationFailed = errors.New("content generation failed")
var ErrNoUpdateFields = errors.New("no valid fields to update")

// ServiceItem is one entry in the generated services section.
type ServiceItem struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// HeroSection is the top banner of a generated site.
type HeroSection struct {
	Heading          string `json:"heading" bson:"heading"`
	Subheading       string `json:"subheading" bson:"subheading"`
	ImageDescription string `json:"image_description,omitempty" bson:"image_description,omitempty"`
}

// AboutSection describes the business.
type AboutSection struct {
	Heading string `json:"heading" bson:"heading"`
	Text    string `json:"text" bson:"text"`
}

// ServicesSection lists what the business offers. A generated site must carry
// at least one item; the generator contract requires three.
type ServicesSection struct {
	Heading string        `json:"heading" bson:"heading"`
	Items   []ServiceItem `json:"items" bson:"items"`
}

// ContactSection carries the business contact details.
type ContactSection struct {
	Heading string `json:"heading" bson:"heading"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// Theme holds the generated colour palette and typography.
type Theme struct {
	PrimaryColor     string `json:"primary_color" bson:"primary_color"`
	SecondaryColor   string `json:"secondary_color" bson:"secondary_color"`
	BackgroundColor  string `json:"background_color" bson:"background_color"`
	TextColor        string `json:"text_color" bson:"text_color"`
	HeadingColor     string `json:"heading_color" bson:"heading_color"`
	FontFamily       string `json:"font_family" bson:"font_family"`
	SectionBgColor   string `json:"section_bg_color" bson:"section_bg_color"`
	ServiceItemBg    string `json:"service_item_bg_color" bson:"service_item_bg_color"`
	BorderColor      string `json:"border_color" bson:"border_color"`
	ShadowColor      string `json:"shadow_color" bson:"shadow_color"`
}

// WebsiteContent is the structured document produced by the content generator.
type WebsiteContent struct {
	Title           string          `json:"title" bson:"title"`
	HeroSection     HeroSection     `json:"hero_section" bson:"hero_section"`
	AboutSection    AboutSection    `json:"about_section" bson:"about_section"`
	ServicesSection ServicesSection `json:"services_section" bson:"services_section"`
	ContactSection  ContactSection  `json:"contact_section" bson:"contact_section"`
	Theme           Theme           `json:"theme" bson:"theme"`
}

// HasServices reports whether the generated content carries at least one
// service item. Content without services is treated as a failed generation.
func (c *WebsiteContent) HasServices() bool {
	return c != nil && len(c.ServicesSection.Items) > 0
}

// Website is the core aggregate: a generated site owned by a user.
type Website struct {
	ID           string         `json:"id"`
	OwnerID      string         `json:"owner_id"`
	BusinessType string         `json:"business_type"`
	Industry     string         `json:"industry"`
	Content      WebsiteContent `json:"content"`
	CreatedAt    time.Time      `json:"created_at"`
	LastUpdated  time.Time      `json:"last_updated"`
}

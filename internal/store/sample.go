package store

import "github.com/hyperjump/docfinder/internal/models"

// SampleDocuments returns the built-in marketing corpus used when no seed file is configured.
func SampleDocuments() []models.Document {
	return []models.Document{
		{
			ID:      "1",
			Title:   "Q4 Brand Campaign Brief",
			Team:    "Brand",
			Project: "Q4 Brand Push",
			Type:    "Brief",
			Topic:   "Brand Awareness",
			Tags:    []string{"brand", "campaign", "q4"},
			Content: "This brief outlines the objectives, key messages, and target audience for the Q4 brand awareness campaign.",
		},
		{
			ID:      "2",
			Title:   "Performance Marketing Weekly Report",
			Team:    "Performance",
			Project: "Always-on Performance",
			Type:    "Report",
			Topic:   "Performance",
			Tags:    []string{"performance", "ads", "weekly"},
			Content: "Weekly performance summary covering CTR, CPC, and conversions across all paid channels.",
		},
		{
			ID:      "3",
			Title:   "Product Launch Social Media Plan",
			Team:    "Social",
			Project: "New Product Launch",
			Type:    "Plan",
			Topic:   "Social Media",
			Tags:    []string{"launch", "social", "calendar"},
			Content: "Content calendar, post formats, and platform strategy for the upcoming product launch.",
		},
		{
			ID:      "4",
			Title:   "Brand Voice & Messaging Guidelines",
			Team:    "Brand",
			Project: "Global Guidelines",
			Type:    "Guidelines",
			Topic:   "Brand",
			Tags:    []string{"brand", "tone", "style"},
			Content: "Defines voice, tone, and examples of do's and don'ts for brand messaging.",
		},
		{
			ID:      "5",
			Title:   "SEO Content Ideas for Q1",
			Team:    "Content",
			Project: "Q1 Growth",
			Type:    "Ideas",
			Topic:   "SEO",
			Tags:    []string{"seo", "blog", "ideas"},
			Content: "List of SEO-focused content ideas prioritized by search volume and difficulty.",
		},
	}
}

// NewSample returns a store over SampleDocuments.
func NewSample() *Store {
	s, _ := New(SampleDocuments())
	return s
}

package models

import (
	"encoding/json"
	"html/template"
)

const SchemaContext = "https://schema.org"

// SeoMetadata carries the head tags and linked-data record of a single page.
type SeoMetadata struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	OGImage        string `json:"og_image"`
	OGType         string `json:"og_type"`
	CanonicalURL   string `json:"canonical_url,omitempty"`
	StructuredData any    `json:"structured_data,omitempty"`
}

// WithCanonical returns a copy of m pointing at the given canonical URL.
func (m SeoMetadata) WithCanonical(url string) SeoMetadata {
	m.CanonicalURL = url
	return m
}

// HeadTitle is the text used for <title> and og:title.
func (m SeoMetadata) HeadTitle(siteName string) string {
	if m.Title == "" || m.Title == siteName {
		return siteName
	}
	return m.Title + " | " + siteName
}

// JSONLD encodes the structured data for an application/ld+json script.
// json.Marshal escapes <, > and & so the result is safe inside <script>.
func (m SeoMetadata) JSONLD() (template.JS, error) {
	if m.StructuredData == nil {
		return "", nil
	}
	b, err := json.Marshal(m.StructuredData)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

type PersonSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type OrganizationSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type AggregateRatingSchema struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
	RatingCount string `json:"ratingCount"`
}

type RatingSchema struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	BestRating  string `json:"bestRating"`
}

type ReviewSchema struct {
	Type         string             `json:"@type"`
	ReviewRating RatingSchema       `json:"reviewRating"`
	Author       OrganizationSchema `json:"author"`
}

// MovieSchema is a schema.org/Movie record.
type MovieSchema struct {
	Context         string                `json:"@context"`
	Type            string                `json:"@type"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	Image           string                `json:"image"`
	DatePublished   string                `json:"datePublished"`
	Genre           []string              `json:"genre"`
	Duration        string                `json:"duration"`
	Director        PersonSchema          `json:"director"`
	Actor           []PersonSchema        `json:"actor"`
	AggregateRating AggregateRatingSchema `json:"aggregateRating"`
	Review          ReviewSchema          `json:"review"`
}

type SearchActionSchema struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// WebSiteSchema is a schema.org/WebSite record with a sitelinks search box.
type WebSiteSchema struct {
	Context         string             `json:"@context"`
	Type            string             `json:"@type"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	URL             string             `json:"url"`
	PotentialAction SearchActionSchema `json:"potentialAction"`
}

// Package resources holds a curated catalog of digital wellness material.
package resources

// ResourceType classifies the medium of a resource.
type ResourceType string

const (
	TypeArticle      ResourceType = "article"
	TypeApp          ResourceType = "app"
	TypeBook         ResourceType = "book"
	TypeOrganization ResourceType = "organization"
)

// ResourceCategory groups resources by intent.
type ResourceCategory string

const (
	CategoryResearch ResourceCategory = "research"
	CategorySelfHelp ResourceCategory = "self-help"
	CategoryTools    ResourceCategory = "tools"
	CategorySupport  ResourceCategory = "support"
)

// AllTypes returns every resource type in display order.
func AllTypes() []ResourceType {
	return []ResourceType{TypeArticle, TypeOrganization, TypeApp, TypeBook}
}

// AllCategories returns every resource category in display order.
func AllCategories() []ResourceCategory {
	return []ResourceCategory{CategoryResearch, CategorySelfHelp, CategoryTools, CategorySupport}
}

// Resource is one catalog entry. Author, Publisher, Year and Rating are
// optional and zero-valued when not applicable.
type Resource struct {
	ID          string
	Title       string
	Description string
	Type        ResourceType
	Category    ResourceCategory
	URL         string
	Tags        []string
	Author      string
	Publisher   string
	Year        int
	Rating      float64
}

// Filter narrows the catalog. Zero values match everything.
type Filter struct {
	Category ResourceCategory
	Type     ResourceType
}

// All returns the full catalog in order.
func All() []Resource {
	out := make([]Resource, len(catalog))
	copy(out, catalog)
	return out
}

// Select returns catalog entries matching the filter, in catalog order.
func Select(f Filter) []Resource {
	var out []Resource
	for _, r := range catalog {
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		out = append(out, r)
	}
	return out
}

var catalog = []Resource{
	{
		ID:          "1",
		Title:       "The Impact of Social Media on Mental Health",
		Description: "A comprehensive study examining the relationship between social media use and mental health outcomes.",
		Type:        TypeArticle,
		Category:    CategoryResearch,
		URL:         "https://example.com/article1",
		Tags:        []string{"research", "mental health", "social media"},
		Author:      "Dr. Sarah Johnson",
		Publisher:   "Journal of Digital Psychology",
		Year:        2023,
	},
	{
		ID:          "2",
		Title:       "Digital Wellbeing App",
		Description: "An app that helps you track and manage your social media usage with personalized insights.",
		Type:        TypeApp,
		Category:    CategoryTools,
		URL:         "https://example.com/app1",
		Tags:        []string{"app", "digital wellbeing", "tracking"},
		Rating:      4.8,
	},
	{
		ID:          "3",
		Title:       "Mindful Social Media: A Guide to Digital Wellness",
		Description: "A practical guide to developing healthy social media habits and maintaining digital wellbeing.",
		Type:        TypeBook,
		Category:    CategorySelfHelp,
		URL:         "https://example.com/book1",
		Tags:        []string{"book", "self-help", "digital wellness"},
		Author:      "Michael Chen",
		Publisher:   "Digital Wellness Press",
		Year:        2023,
	},
	{
		ID:          "4",
		Title:       "Mental Health Foundation",
		Description: "A leading organization providing resources and support for mental health in the digital age.",
		Type:        TypeOrganization,
		Category:    CategorySupport,
		URL:         "https://example.com/org1",
		Tags:        []string{"organization", "mental health", "support"},
	},
	{
		ID:          "5",
		Title:       "Social Media Detox: A 30-Day Challenge",
		Description: "A step-by-step guide to reducing social media dependency and improving mental health.",
		Type:        TypeArticle,
		Category:    CategorySelfHelp,
		URL:         "https://example.com/article2",
		Tags:        []string{"article", "detox", "challenge"},
		Author:      "Emma Davis",
		Publisher:   "Wellness Today",
		Year:        2023,
	},
	{
		ID:          "6",
		Title:       "Screen Time Manager",
		Description: "An app that helps you set and maintain healthy screen time limits across all your devices.",
		Type:        TypeApp,
		Category:    CategoryTools,
		URL:         "https://example.com/app2",
		Tags:        []string{"app", "screen time", "management"},
		Rating:      4.5,
	},
	{
		ID:          "7",
		Title:       "Digital Wellness Institute",
		Description: "A research and education organization focused on promoting healthy technology use.",
		Type:        TypeOrganization,
		Category:    CategoryResearch,
		URL:         "https://example.com/org2",
		Tags:        []string{"organization", "research", "education"},
	},
	{
		ID:          "8",
		Title:       "The Digital Mind: Understanding Social Media Psychology",
		Description: "An academic exploration of how social media affects our psychology and behavior.",
		Type:        TypeBook,
		Category:    CategoryResearch,
		URL:         "https://example.com/book2",
		Tags:        []string{"book", "psychology", "research"},
		Author:      "Dr. Robert Wilson",
		Publisher:   "Academic Press",
		Year:        2023,
	},
}

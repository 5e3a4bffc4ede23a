// Package catalog provides the static template catalog.
package catalog

import "resume_backend/internal/feature/template/domain/entity"

// builtin is the full template catalog. Immutable lookup data; ratings and
// download counts are display metadata, not live counters.
var builtin = []entity.Template{
	{
		ID:               1,
		Name:             "Modern Professional",
		Category:         "Professional",
		Description:      "Clean and modern design perfect for corporate roles",
		Color:            "#00d4ff",
		Preview:          "modern-professional-preview.jpg",
		PopularityRating: 4.8,
		Downloads:        15420,
		ClassName:        "resume-modern",
	},
	{
		ID:               2,
		Name:             "Creative Designer",
		Category:         "Creative",
		Description:      "Bold and artistic template for creative professionals",
		Color:            "#7c3aed",
		Preview:          "creative-designer-preview.jpg",
		PopularityRating: 4.7,
		Downloads:        12330,
		ClassName:        "resume-creative",
	},
	{
		ID:               3,
		Name:             "Corporate Executive",
		Category:         "Executive",
		Description:      "Sophisticated template for senior-level positions",
		Color:            "#6b7280",
		Preview:          "corporate-executive-preview.jpg",
		PopularityRating: 4.9,
		Downloads:        18750,
		ClassName:        "resume-corporate",
	},
	{
		ID:               4,
		Name:             "Tech Specialist",
		Category:         "Technology",
		Description:      "Modern template optimized for tech professionals",
		Color:            "#06d6a0",
		Preview:          "tech-specialist-preview.jpg",
		PopularityRating: 4.6,
		Downloads:        9870,
		ClassName:        "resume-tech",
	},
	{
		ID:               5,
		Name:             "Minimalist",
		Category:         "Simple",
		Description:      "Clean and simple design that lets content shine",
		Color:            "#64748b",
		Preview:          "minimalist-preview.jpg",
		PopularityRating: 4.5,
		Downloads:        11200,
		ClassName:        "resume-minimal",
	},
	{
		ID:               6,
		Name:             "Academic Researcher",
		Category:         "Academic",
		Description:      "Formal layout perfect for academic and research positions",
		Color:            "#0891b2",
		Preview:          "academic-preview.jpg",
		PopularityRating: 4.4,
		Downloads:        6540,
		ClassName:        "resume-academic",
	},
	{
		ID:               7,
		Name:             "Startup Founder",
		Category:         "Entrepreneurial",
		Description:      "Dynamic template for entrepreneurs and startup founders",
		Color:            "#f59e0b",
		Preview:          "startup-founder-preview.jpg",
		PopularityRating: 4.7,
		Downloads:        8930,
		ClassName:        "resume-startup",
	},
	{
		ID:               8,
		Name:             "Healthcare Professional",
		Category:         "Healthcare",
		Description:      "Professional template for medical and healthcare careers",
		Color:            "#3b82f6",
		Preview:          "healthcare-preview.jpg",
		PopularityRating: 4.6,
		Downloads:        7650,
		ClassName:        "resume-healthcare",
	},
	{
		ID:               9,
		Name:             "Sales Executive",
		Category:         "Sales",
		Description:      "Results-driven template for sales professionals",
		Color:            "#ef4444",
		Preview:          "sales-executive-preview.jpg",
		PopularityRating: 4.5,
		Downloads:        5430,
		ClassName:        "resume-sales",
	},
	{
		ID:               10,
		Name:             "Marketing Specialist",
		Category:         "Marketing",
		Description:      "Creative template for marketing and brand professionals",
		Color:            "#ec4899",
		Preview:          "marketing-specialist-preview.jpg",
		PopularityRating: 4.6,
		Downloads:        7890,
		ClassName:        "resume-marketing",
	},
}

// Catalog serves template lookups. It satisfies the consumer-defined
// interfaces of the resume usecase (Exists) and handlers (StyleClass, List).
type Catalog struct {
	templates []entity.Template
	byID      map[int]*entity.Template
}

// New creates a Catalog over the built-in templates.
func New() *Catalog {
	c := &Catalog{templates: builtin, byID: make(map[int]*entity.Template, len(builtin))}
	for i := range c.templates {
		c.byID[c.templates[i].ID] = &c.templates[i]
	}
	return c
}

// List returns all templates in catalog order.
func (c *Catalog) List() []entity.Template {
	out := make([]entity.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// FindByID returns the template with the given id.
func (c *Catalog) FindByID(id int) (*entity.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Exists reports whether the id is in the catalog.
func (c *Catalog) Exists(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// StyleClass returns the preview style class for the template.
func (c *Catalog) StyleClass(id int) (string, bool) {
	t, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return t.ClassName, true
}

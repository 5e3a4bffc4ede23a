// Package entity defines the domain entities for the template feature.
package entity

// Template is a static catalog entry describing a visual resume style.
// Templates carry no data fields of their own and are immutable at runtime;
// the ClassName is the only part the render pipeline consumes.
type Template struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	Color            string  `json:"color"`
	Preview          string  `json:"preview"`
	PopularityRating float64 `json:"popularityRating"`
	Downloads        int     `json:"downloads"`
	ClassName        string  `json:"className"`
}

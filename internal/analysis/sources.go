package analysis

import (
	"TrendSpotter/internal/collector"
	"TrendSpotter/internal/model"
)

// DefaultSourceTitle labels web citations that come without a title.
const DefaultSourceTitle = "Web Source"

// ExtractSources keeps web citations in order, up to limit of them.
func ExtractSources(citations []collector.Citation, limit int) []model.Source {
	sources := make([]model.Source, 0, len(citations))
	for _, c := range citations {
		if len(sources) == limit {
			break
		}
		if c.Web == nil {
			continue
		}
		title := c.Web.Title
		if title == "" {
			title = DefaultSourceTitle
		}
		sources = append(sources, model.Source{Title: title, URI: c.Web.URI})
	}
	return sources
}

package dto

import (
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

// SearchResults is the combined multi-type search result. Lists are
// concatenated as returned per type: no relevance ranking, no
// deduplication across types.
type SearchResults struct {
	Query    string            `json:"query"`
	Leaders  []*models.Leader  `json:"leaders"`
	Albums   []*models.Album   `json:"albums"`
	Sessions []*models.Session `json:"sessions"`
	Total    int               `json:"total"`
}

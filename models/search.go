package models

type SearchResult struct {
	Listing
	Score     int    `json:"score"`
	Relevance string `json:"relevance"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

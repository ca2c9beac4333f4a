package domain

// ServiceStatus reports index statistics from the retrieval service.
type ServiceStatus struct {
	ProcessedFiles int `json:"processed_files"`
	UniqueTerms    int `json:"unique_terms"`
	StopwordsCount int `json:"stopwords_count"`
}

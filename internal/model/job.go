package model

// Job is a job posting shown to users. Postings are generated per request and not persisted.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	PostedDate  string `json:"posted_date"`
	Description string `json:"description"`
	MatchScore  int    `json:"match_score"`
	Platform    string `json:"platform"`
	URL         string `json:"url"`
}

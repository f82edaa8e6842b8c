package domain

// Link maps a user-supplied alias to the URL it redirects to
type Link struct {
	ID        int64  `json:"id"`
	Alias     string `json:"alias"`
	TargetURL string `json:"target_url"`
}

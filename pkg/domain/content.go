package domain

// ContentRecord represents one discoverable learning item scraped from a listing page.
//
// Primary records (6 Minute English episodes) are cached as JSON; supplementary records
// (TOEFL reading/listening practice) are scraped fresh on every run and leave Episode empty.
type ContentRecord struct {
	Episode string `json:"episode"`
	Title   string `json:"title"`
	PageURL string `json:"pageUrl"` // always absolute
}

// Category describes one paginated listing of supplementary practice links.
type Category struct {
	Name string

	// URLTemplate contains a "{}" placeholder that is replaced by the 0-based page index.
	URLTemplate string

	// BaseURL is prefixed to the relative hrefs found on the listing pages.
	BaseURL string

	Pages int
}

package enums

// Project is the user's stated intent, used only for ranking.
type Project string

const (
	ProjectBuy   Project = "buy"
	ProjectRent  Project = "rent"
	ProjectVisit Project = "visit"
)

package activities

const DefaultAttractionImage = "https://images.unsplash.com/photo-1528360983277-13d401cdc186?w=800&q=80"

type AddAttractionInput struct {
	CityID       *string
	Name         string
	Description  string
	TimeEstimate *string
	ImageURL     string
	CreatedBy    string
}

type ListFilter struct {
	// CityID narrows the list to one city; a pointer to "" selects general
	// attractions.
	CityID *string
}

// VoteResult is the traveler's vote after a cast. Value 0 means the vote was
// cleared, either explicitly or by repeating the same vote.
type VoteResult struct {
	AttractionID string
	Value        int
	Ranking      AttractionRanking
}

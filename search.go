package yummly

import "github.com/yummly/client-go/internal/api"

// SearchResult holds the matches, echoed criteria, and facet counts for a
// search call.
type SearchResult struct {
	Matches  []Match
	Criteria SearchCriteria
	// FacetCounts maps each requested facet field to the per-value match
	// counts the backend aggregated, e.g. "diet" -> {"Vegan": 12, ...}.
	FacetCounts     map[string]map[string]int
	TotalMatchCount int
	Attribution     *Attribution
}

// SearchCriteria echoes the parameters the backend applied to a search.
// Terms are the space-split words of the original query.
type SearchCriteria struct {
	Q                   string
	Terms               []string
	RequirePictures     bool
	AllowedIngredients  []string
	ExcludedIngredients []string
	// AttributeRanges holds applied flavor ranges keyed by the backend's
	// "flavor-sweet" style names.
	AttributeRanges       map[string]Range
	NutritionRestrictions map[string]Range
	FacetFields           []string
	MaxTotalTimeInSeconds int
}

// Range is a numeric min/max restriction.
type Range struct {
	Min float64
	Max float64
}

// Match is a search-result summary referencing a full Recipe by ID.
type Match struct {
	ID                 string
	RecipeName         string
	Ingredients        []string
	TotalTimeInSeconds int
	Attributes         map[string][]string
	SourceDisplayName  string
	Rating             float64
	Flavors            map[string]float64
	SmallImageURLs     []string
	ImageURLsBySize    map[string]string
}

// Attribution is the branding block the backend requires consumers to
// display alongside results.
type Attribution struct {
	HTML string
	URL  string
	Text string
	Logo string
}

func newSearchResultFromResponse(resp *api.SearchResponse) *SearchResult {
	result := &SearchResult{
		Criteria:        newCriteriaFromResponse(&resp.Criteria),
		FacetCounts:     resp.FacetCounts,
		TotalMatchCount: resp.TotalMatchCount,
	}

	for _, m := range resp.Matches {
		result.Matches = append(result.Matches, newMatchFromResponse(&m))
	}

	if resp.Attribution != nil {
		result.Attribution = &Attribution{
			HTML: resp.Attribution.HTML,
			URL:  resp.Attribution.URL,
			Text: resp.Attribution.Text,
			Logo: resp.Attribution.Logo,
		}
	}

	return result
}

func newCriteriaFromResponse(resp *api.CriteriaResponse) SearchCriteria {
	return SearchCriteria{
		Q:                     resp.Q,
		Terms:                 resp.Terms,
		RequirePictures:       resp.RequirePictures,
		AllowedIngredients:    resp.AllowedIngredients,
		ExcludedIngredients:   resp.ExcludedIngredients,
		AttributeRanges:       newRanges(resp.AttributeRanges),
		NutritionRestrictions: newRanges(resp.NutritionRestrictions),
		FacetFields:           resp.FacetFields,
		MaxTotalTimeInSeconds: resp.MaxTotalTimeInSeconds,
	}
}

func newRanges(resp map[string]api.RangeResponse) map[string]Range {
	if resp == nil {
		return nil
	}
	ranges := make(map[string]Range, len(resp))
	for name, r := range resp {
		ranges[name] = Range{Min: r.Min, Max: r.Max}
	}
	return ranges
}

func newMatchFromResponse(resp *api.MatchResponse) Match {
	return Match{
		ID:                 resp.ID,
		RecipeName:         resp.RecipeName,
		Ingredients:        resp.Ingredients,
		TotalTimeInSeconds: resp.TotalTimeInSeconds,
		Attributes:         resp.Attributes,
		SourceDisplayName:  resp.SourceDisplayName,
		Rating:             resp.Rating,
		Flavors:            resp.Flavors,
		SmallImageURLs:     resp.SmallImageURLs,
		ImageURLsBySize:    resp.ImageURLsBySize,
	}
}

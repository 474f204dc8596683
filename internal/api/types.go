package api

// Wire types for the Yummly v1 API. Field tags follow the JSON the backend
// emits; optional fields decode to their zero values when absent.

// RecipeResponse is the full recipe detail payload.
type RecipeResponse struct {
	ID                 string                      `json:"id"`
	Name               string                      `json:"name"`
	IngredientLines    []string                    `json:"ingredientLines"`
	TotalTime          string                      `json:"totalTime"`
	TotalTimeInSeconds int                         `json:"totalTimeInSeconds"`
	Yield              string                      `json:"yield"`
	NumberOfServings   int                         `json:"numberOfServings"`
	Rating             float64                     `json:"rating"`
	Attributes         map[string][]string         `json:"attributes"`
	Flavors            map[string]float64          `json:"flavors"`
	Source             SourceResponse              `json:"source"`
	Images             []ImageResponse             `json:"images"`
	NutritionEstimates []NutritionEstimateResponse `json:"nutritionEstimates"`
}

// SourceResponse identifies the site a recipe was published on.
type SourceResponse struct {
	SourceRecipeURL   string `json:"sourceRecipeUrl"`
	SourceSiteURL     string `json:"sourceSiteUrl"`
	SourceDisplayName string `json:"sourceDisplayName"`
}

// ImageResponse carries hosted image URLs for a recipe.
type ImageResponse struct {
	HostedLargeURL string `json:"hostedLargeUrl"`
	HostedSmallURL string `json:"hostedSmallUrl"`
}

// NutritionEstimateResponse is a single nutrient estimate.
type NutritionEstimateResponse struct {
	Attribute   string       `json:"attribute"`
	Description string       `json:"description"`
	Value       float64      `json:"value"`
	Unit        UnitResponse `json:"unit"`
}

// UnitResponse describes the unit of a nutrition estimate.
type UnitResponse struct {
	Name               string `json:"name"`
	Abbreviation       string `json:"abbreviation"`
	Plural             string `json:"plural"`
	PluralAbbreviation string `json:"pluralAbbreviation"`
}

// SearchResponse is the recipe search payload.
type SearchResponse struct {
	Criteria        CriteriaResponse          `json:"criteria"`
	Matches         []MatchResponse           `json:"matches"`
	FacetCounts     map[string]map[string]int `json:"facetCounts"`
	TotalMatchCount int                       `json:"totalMatchCount"`
	Attribution     *AttributionResponse      `json:"attribution"`
}

// CriteriaResponse echoes the search parameters the backend applied.
type CriteriaResponse struct {
	Q                     string                   `json:"q"`
	Terms                 []string                 `json:"terms"`
	RequirePictures       bool                     `json:"requirePictures"`
	AllowedIngredients    []string                 `json:"allowedIngredients"`
	ExcludedIngredients   []string                 `json:"excludedIngredients"`
	AttributeRanges       map[string]RangeResponse `json:"attributeRanges"`
	NutritionRestrictions map[string]RangeResponse `json:"nutritionRestrictions"`
	FacetFields           []string                 `json:"facetFields"`
	MaxTotalTimeInSeconds int                      `json:"maxTotalTimeInSeconds"`
}

// RangeResponse is a numeric min/max restriction.
type RangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MatchResponse is a single search-result summary.
type MatchResponse struct {
	ID                 string              `json:"id"`
	RecipeName         string              `json:"recipeName"`
	Ingredients        []string            `json:"ingredients"`
	TotalTimeInSeconds int                 `json:"totalTimeInSeconds"`
	Attributes         map[string][]string `json:"attributes"`
	SourceDisplayName  string              `json:"sourceDisplayName"`
	Rating             float64             `json:"rating"`
	Flavors            map[string]float64  `json:"flavors"`
	SmallImageURLs     []string            `json:"smallImageUrls"`
	ImageURLsBySize    map[string]string   `json:"imageUrlsBySize"`
}

// AttributionResponse is the branding block the backend requires consumers
// to display alongside results.
type AttributionResponse struct {
	HTML string `json:"html"`
	URL  string `json:"url"`
	Text string `json:"text"`
	Logo string `json:"logo"`
}

// MetadataEntryResponse is a single entry in a metadata dictionary.
type MetadataEntryResponse struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Description        string   `json:"description"`
	Term               string   `json:"term"`
	SearchValue        string   `json:"searchValue"`
	LocalesAvailableIn []string `json:"localesAvailableIn"`
}

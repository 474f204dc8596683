package api

import (
	"net/url"
	"strconv"
)

// ParamRange is a numeric min/max restriction on a named dimension.
type ParamRange struct {
	Min float64
	Max float64
}

// SearchParams describes a recipe search. Recognized parameters have typed
// fields; Extra carries any additional backend keys verbatim, so new facets
// work without a client release.
type SearchParams struct {
	Query               string
	Start               int
	MaxResult           int
	RequirePictures     *bool
	AllowedIngredients  []string
	ExcludedIngredients []string
	// MaxTotalTimeInSeconds restricts matches by total preparation time.
	// Zero means no restriction.
	MaxTotalTimeInSeconds int
	FacetFields           []string
	// Ranges holds flavor and nutrition restrictions keyed by the
	// "category.item" form, e.g. "flavor.sweet" or "nutrition.FAT".
	Ranges map[string]ParamRange
	// Extra parameters are appended to the query string as-is.
	Extra url.Values
}

// Values encodes the parameters using the backend's query conventions:
// array parameters repeat under a "name[]" key, numeric ranges expand to
// "category.item.min" / "category.item.max", and booleans render as
// "true"/"false".
func (p *SearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("q", p.Query)

	if p.Start > 0 {
		v.Set("start", strconv.Itoa(p.Start))
	}
	if p.MaxResult > 0 {
		v.Set("maxResult", strconv.Itoa(p.MaxResult))
	}
	if p.RequirePictures != nil {
		v.Set("requirePictures", strconv.FormatBool(*p.RequirePictures))
	}
	if p.MaxTotalTimeInSeconds > 0 {
		v.Set("maxTotalTimeInSeconds", strconv.Itoa(p.MaxTotalTimeInSeconds))
	}

	for _, ingredient := range p.AllowedIngredients {
		v.Add("allowedIngredient[]", ingredient)
	}
	for _, ingredient := range p.ExcludedIngredients {
		v.Add("excludedIngredient[]", ingredient)
	}
	for _, field := range p.FacetFields {
		v.Add("facetField[]", field)
	}

	for key, r := range p.Ranges {
		v.Set(key+".min", formatFloat(r.Min))
		v.Set(key+".max", formatFloat(r.Max))
	}

	for key, vals := range p.Extra {
		for _, val := range vals {
			v.Add(key, val)
		}
	}

	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

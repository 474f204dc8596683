package yummly

import "github.com/yummly/client-go/internal/api"

// Recipe is the full detail record for a single recipe.
// Recipe is a pure data struct; optional backend fields decode to zero
// values: an absent totalTime is "" with TotalTimeInSeconds 0, an absent
// yield is "", and images without hosted URLs carry empty strings.
type Recipe struct {
	ID                 string
	Name               string
	IngredientLines    []string
	TotalTime          string
	TotalTimeInSeconds int
	Yield              string
	NumberOfServings   int
	Rating             float64
	// Attributes maps attribute names (course, cuisine, holiday, ...) to
	// their values for this recipe.
	Attributes         map[string][]string
	Flavors            map[string]float64
	Source             Source
	Images             []RecipeImage
	NutritionEstimates []NutritionEstimate
}

// Source identifies the site a recipe was published on.
type Source struct {
	SourceDisplayName string
	SourceSiteURL     string
	SourceRecipeURL   string
}

// RecipeImage carries hosted image URLs for a recipe.
type RecipeImage struct {
	HostedLargeURL string
	HostedSmallURL string
}

// NutritionEstimate is a single nutrient estimate for a recipe.
type NutritionEstimate struct {
	Attribute   string
	Description string
	Value       float64
	Unit        Unit
}

// Unit describes the unit of a nutrition estimate.
type Unit struct {
	Name               string
	Abbreviation       string
	Plural             string
	PluralAbbreviation string
}

func newRecipeFromResponse(resp *api.RecipeResponse) *Recipe {
	recipe := &Recipe{
		ID:                 resp.ID,
		Name:               resp.Name,
		IngredientLines:    resp.IngredientLines,
		TotalTime:          resp.TotalTime,
		TotalTimeInSeconds: resp.TotalTimeInSeconds,
		Yield:              resp.Yield,
		NumberOfServings:   resp.NumberOfServings,
		Rating:             resp.Rating,
		Attributes:         resp.Attributes,
		Flavors:            resp.Flavors,
		Source: Source{
			SourceDisplayName: resp.Source.SourceDisplayName,
			SourceSiteURL:     resp.Source.SourceSiteURL,
			SourceRecipeURL:   resp.Source.SourceRecipeURL,
		},
	}

	for _, img := range resp.Images {
		recipe.Images = append(recipe.Images, RecipeImage{
			HostedLargeURL: img.HostedLargeURL,
			HostedSmallURL: img.HostedSmallURL,
		})
	}

	for _, n := range resp.NutritionEstimates {
		recipe.NutritionEstimates = append(recipe.NutritionEstimates, NutritionEstimate{
			Attribute:   n.Attribute,
			Description: n.Description,
			Value:       n.Value,
			Unit: Unit{
				Name:               n.Unit.Name,
				Abbreviation:       n.Unit.Abbreviation,
				Plural:             n.Unit.Plural,
				PluralAbbreviation: n.Unit.PluralAbbreviation,
			},
		})
	}

	return recipe
}

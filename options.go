package yummly

import (
	"net/http"
	"net/url"
	"time"

	"github.com/yummly/client-go/internal/api"
)

const (
	defaultBaseURL = api.DefaultBaseURL
	defaultTimeout = api.DefaultTimeout
	defaultRetries = api.DefaultMaxRetries
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
}

// searchConfig holds the parameters of a single search call.
type searchConfig struct {
	start                 int
	maxResult             int
	requirePictures       *bool
	allowedIngredients    []string
	excludedIngredients   []string
	maxTotalTimeInSeconds int
	facetFields           []string
	ranges                map[string]api.ParamRange
	extra                 url.Values
}

// Option configures the client.
type Option func(*clientConfig)

// SearchOption configures a search call.
type SearchOption func(*searchConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for timed-out requests.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryDelay sets the initial delay between retry attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithStart sets the zero-based offset of the first match to return.
func WithStart(start int) SearchOption {
	return func(c *searchConfig) {
		c.start = start
	}
}

// WithMaxResult limits the number of matches returned.
func WithMaxResult(max int) SearchOption {
	return func(c *searchConfig) {
		c.maxResult = max
	}
}

// WithRequirePictures restricts matches to recipes with pictures.
func WithRequirePictures(require bool) SearchOption {
	return func(c *searchConfig) {
		c.requirePictures = &require
	}
}

// WithAllowedIngredients restricts matches to recipes containing every
// listed ingredient.
func WithAllowedIngredients(ingredients ...string) SearchOption {
	return func(c *searchConfig) {
		c.allowedIngredients = append(c.allowedIngredients, ingredients...)
	}
}

// WithExcludedIngredients removes matches containing any listed ingredient.
func WithExcludedIngredients(ingredients ...string) SearchOption {
	return func(c *searchConfig) {
		c.excludedIngredients = append(c.excludedIngredients, ingredients...)
	}
}

// WithMaxTotalTime restricts matches by total preparation time.
func WithMaxTotalTime(max time.Duration) SearchOption {
	return func(c *searchConfig) {
		c.maxTotalTimeInSeconds = int(max.Seconds())
	}
}

// WithFacetFields requests aggregated counts for the named facet fields,
// e.g. "ingredient" or "diet".
func WithFacetFields(fields ...string) SearchOption {
	return func(c *searchConfig) {
		c.facetFields = append(c.facetFields, fields...)
	}
}

// WithFlavorRange restricts matches to a flavor intensity range. Flavor
// names are lowercase, e.g. "sweet", "meaty", "bitter", "piquant".
func WithFlavorRange(name string, min, max float64) SearchOption {
	return WithRange("flavor", name, min, max)
}

// WithNutritionRange restricts matches to a nutrient value range. Nutrient
// names follow the backend's uppercase convention, e.g. "FAT" or "SUGAR".
func WithNutritionRange(nutrient string, min, max float64) SearchOption {
	return WithRange("nutrition", nutrient, min, max)
}

// WithRange restricts matches to a numeric range on an arbitrary
// category.item dimension. WithFlavorRange and WithNutritionRange cover the
// two known categories; this keeps future ones reachable.
func WithRange(category, item string, min, max float64) SearchOption {
	return func(c *searchConfig) {
		if c.ranges == nil {
			c.ranges = make(map[string]api.ParamRange)
		}
		c.ranges[category+"."+item] = api.ParamRange{Min: min, Max: max}
	}
}

// WithParam passes an arbitrary query parameter through verbatim. Use it for
// backend keys the typed options do not cover.
func WithParam(key string, values ...string) SearchOption {
	return func(c *searchConfig) {
		if c.extra == nil {
			c.extra = url.Values{}
		}
		for _, value := range values {
			c.extra.Add(key, value)
		}
	}
}

// params converts the search configuration into transport parameters.
func (c *searchConfig) params(q string) *api.SearchParams {
	return &api.SearchParams{
		Query:                 q,
		Start:                 c.start,
		MaxResult:             c.maxResult,
		RequirePictures:       c.requirePictures,
		AllowedIngredients:    c.allowedIngredients,
		ExcludedIngredients:   c.excludedIngredients,
		MaxTotalTimeInSeconds: c.maxTotalTimeInSeconds,
		FacetFields:           c.facetFields,
		Ranges:                c.ranges,
		Extra:                 c.extra,
	}
}

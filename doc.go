// Package yummly provides a Go client SDK for the Yummly recipe-search API.
//
// The client exposes three operations: recipe lookup by identifier, keyword
// and faceted search, and metadata dictionary lookup. Timed-out requests are
// retried transparently up to a configurable count before surfacing a
// TimeoutError.
//
// Basic usage:
//
//	client, err := yummly.New(appID, appKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Search(ctx, "chicken casserole",
//	    yummly.WithMaxResult(5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, match := range result.Matches {
//	    recipe, err := client.GetRecipe(ctx, match.ID)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(recipe.Name)
//	}
package yummly

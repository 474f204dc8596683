// Command testhelper exercises the SDK against a live or local API.
// It is used by cross-SDK compatibility checks and manual smoke tests.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	yummly "github.com/yummly/client-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <recipe|search|metadata> [args]")
	}

	// Load .env if present so local runs pick up credentials.
	godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := []yummly.Option{}
	if baseURL := os.Getenv("YUMMLY_URL"); baseURL != "" {
		opts = append(opts, yummly.WithBaseURL(baseURL))
	}

	client, err := yummly.New(
		os.Getenv("YUMMLY_APP_ID"),
		os.Getenv("YUMMLY_APP_KEY"),
		opts...,
	)
	if err != nil {
		fatal("create client: %v", err)
	}

	switch os.Args[1] {
	case "recipe":
		if len(os.Args) < 3 {
			fatal("usage: testhelper recipe <id>")
		}
		getRecipe(ctx, client, os.Args[2])
	case "search":
		if len(os.Args) < 3 {
			fatal("usage: testhelper search <query>")
		}
		search(ctx, client, os.Args[2])
	case "metadata":
		if len(os.Args) < 3 {
			fatal("usage: testhelper metadata <kind>")
		}
		metadata(ctx, client, os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func getRecipe(ctx context.Context, client *yummly.Client, id string) {
	recipe, err := client.GetRecipe(ctx, id)
	if err != nil {
		fatal("get recipe: %v", err)
	}
	printJSON(recipe)
}

func search(ctx context.Context, client *yummly.Client, q string) {
	result, err := client.Search(ctx, q, yummly.WithMaxResult(10))
	if err != nil {
		fatal("search: %v", err)
	}
	printJSON(result)
}

func metadata(ctx context.Context, client *yummly.Client, kind string) {
	entries, err := client.Metadata(ctx, yummly.MetadataKind(kind))
	if err != nil {
		fatal("metadata: %v", err)
	}
	printJSON(entries)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("marshal output: %v", err)
	}
	os.Stdout.Write(data)
	os.Stdout.Write([]byte("\n"))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

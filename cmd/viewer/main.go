package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shenikar/incident_directory/internal/viewer"
)

const usage = `Usage:
  viewer list               show the incident table
  viewer incident <id>      show one incident by id
`

// Терминальный аналог страниц "/" и "/incident/:id"
func main() {
	apiBase := flag.String("api", getEnv("API_BASE", "http://localhost:8080/api"), "incident API base URL")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"list"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	loader := viewer.NewLoader(viewer.NewClient(*apiBase, *timeout))
	loader.Load(ctx)

	if loader.Status() == viewer.StatusError {
		fmt.Fprintf(os.Stderr, "Error: %s\n", loader.Err())
	}
	incidents := loader.Incidents()

	switch args[0] {
	case "list":
		fmt.Printf("Incident Reports (total %d)\n\n", len(incidents))
		if err := viewer.RenderList(os.Stdout, incidents); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "incident":
		if len(args) < 2 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		viewer.RenderDetail(os.Stdout, incidents, args[1])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if loader.Status() == viewer.StatusError {
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

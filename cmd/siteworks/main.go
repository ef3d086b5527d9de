package main

import (
	"fmt"
	"os"

	"github.com/eastvale/siteworks"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "new":
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "Usage: siteworks new <post|case-study|team> <title>")
			os.Exit(1)
		}
		if err := runNew(os.Args[2], os.Args[3]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "thumbs":
		srcDir := siteworks.EnvOr("SITE_IMAGES_DIR", "public/images")
		dstDir := siteworks.EnvOr("SITE_THUMBS_DIR", "public/thumbs")
		thumbs, err := siteworks.GenerateThumbnails(srcDir, dstDir, 0)
		for _, t := range thumbs {
			fmt.Printf("%s -> %s (%dx%d, %d bytes)\n", t.Source, t.Filename, t.Width, t.Height, t.Size)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("siteworks %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`siteworks - A marketing-site engine built with Go, Echo, and templ

Usage:
  siteworks <command> [arguments]

Commands:
  new <kind> <title>    Scaffold a content file (kind: post, case-study, team)
  thumbs                Generate listing-card thumbnails for site images
  version               Print the siteworks version
  help                  Show this help message

Examples:
  siteworks new post "Why We Redesigned Our Delivery Process"
  siteworks new team "Jane Smith"
  siteworks thumbs`)
}

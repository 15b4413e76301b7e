// Command blogsite validates the blog's site config and manages its code palettes.
package main

import "github.com/opencode-ai/blogsite/internal/cli"

func main() {
	cli.Execute()
}

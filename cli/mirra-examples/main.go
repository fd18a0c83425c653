package main

import (
	"os"

	examplescmder "github.com/llmite-ai/mirra/cmd/examples"
)

func main() {
	cmd := examplescmder.NewExamplesCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

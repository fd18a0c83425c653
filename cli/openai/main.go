package main

import (
	"os"

	openaicmder "github.com/llmite-ai/mirra/cmd/examples/openai"
)

func main() {
	cmd := openaicmder.NewOpenAICmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

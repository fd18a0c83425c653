package main

import (
	"os"

	geminicmder "github.com/llmite-ai/mirra/cmd/examples/gemini"
)

func main() {
	cmd := geminicmder.NewGeminiCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

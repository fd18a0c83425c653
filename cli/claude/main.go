package main

import (
	"os"

	claudecmder "github.com/llmite-ai/mirra/cmd/examples/claude"
)

func main() {
	cmd := claudecmder.NewClaudeCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dagger/mirra/internal/dagger"
)

// binaries are the cli/ entrypoints shipped in every build.
var binaries = []string{
	"./cli/gemini",
	"./cli/openai",
	"./cli/claude",
	"./cli/mirra-examples",
}

// Build and return directory of go binaries
func (m *Mirra) Build(
	ctx context.Context,

	// Linker flags for go build
	// +optional
	// +default="-s -w"
	ldflags string,
) *dagger.Directory {
	gooses := []string{"linux", "darwin", "windows"}
	goarches := []string{"amd64", "arm64"}

	outputs := dag.Directory()
	golang := m.goContainer()

	for _, goos := range gooses {
		for _, goarch := range goarches {
			path := fmt.Sprintf("%s/%s/", goos, goarch)

			build := golang.
				WithEnvVariable("GOOS", goos).
				WithEnvVariable("GOARCH", goarch)
			for _, bin := range binaries {
				build = build.WithExec([]string{"go", "build", "-ldflags", ldflags, "-o", path, bin})
			}

			outputs = outputs.WithDirectory(path, build.Directory(path))
		}
	}

	return outputs
}

// BuildRelease compiles versioned release binaries with embedded version info
func (m *Mirra) BuildRelease(
	ctx context.Context,

	// Version string of build
	version string,

	// Git commit SHA of build
	commit string,
) *dagger.Directory {
	ldflags := []string{
		"-s",
		"-w",
		fmt.Sprintf("-X 'github.com/llmite-ai/mirra/pkg/utils.Version=%s'", version),
		fmt.Sprintf("-X 'github.com/llmite-ai/mirra/pkg/utils.Sha=%s'", commit),
		fmt.Sprintf("-X 'github.com/llmite-ai/mirra/pkg/utils.Buildtime=%s'", time.Now().UTC().Format(time.RFC3339)),
	}

	return m.Build(ctx, strings.Join(ldflags, " "))
}

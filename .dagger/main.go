// mirra example callers CI
//
// Package main builds and tests the example caller binaries the same way
// locally and in CI.
package main

import (
	"context"

	"dagger/mirra/internal/dagger"
)

// Mirra is the CI module for the example callers
type Mirra struct {
	// Project source directory
	//
	// +private
	Source *dagger.Directory
}

// New creates a new Mirra CI module instance
func New(
	// Project source directory.
	//
	// +defaultPath="/"
	// +ignore=[".git", "build", "tmp", "_examples"]
	source *dagger.Directory,
) *Mirra {
	return &Mirra{
		Source: source,
	}
}

// goContainer returns an Alpine Go container with the module cache mounted
// and the project source in /src. The callers are pure Go, so CGO is off.
func (m *Mirra) goContainer() *dagger.Container {
	return dag.Container().
		From("golang:1.25-alpine").
		WithEnvVariable("CGO_ENABLED", "0").
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("go-mod")).
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("go-build")).
		WithWorkdir("/src").
		WithDirectory("/src", m.Source)
}

// Test runs the unit tests via "go test"
func (m *Mirra) Test(ctx context.Context) (string, error) {
	return m.goContainer().
		WithExec([]string{"go", "test", "-v", "./..."}).
		Stdout(ctx)
}

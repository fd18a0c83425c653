package examplescmder_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	examplescmder "github.com/llmite-ai/mirra/cmd/examples"
)

var _ = Describe("mirra-examples", func() {
	It("exposes every caller plus config and version", func() {
		cmd := examplescmder.NewExamplesCmd()
		names := []string{}
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		Expect(names).To(ContainElements("gemini", "openai", "claude", "config", "version"))
	})

	It("runs a caller as a subcommand", func() {
		GinkgoT().Setenv("GEMINI_API_KEY", "test-key")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Hello!"}]}}]}`)
		}))
		defer server.Close()

		var stdout, stderr bytes.Buffer
		cmd := examplescmder.NewExamplesCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{"gemini", "--proxy-target", server.URL, "--config-dir", GinkgoT().TempDir()})

		Expect(cmd.Execute()).To(Succeed())
		Expect(stdout.String()).To(Equal("Hello!\n"))
	})

	It("prints errors with the Error: prefix", func() {
		GinkgoT().Setenv("OPENAI_API_KEY", "")

		var stderr bytes.Buffer
		cmd := examplescmder.NewExamplesCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{"openai", "--config-dir", GinkgoT().TempDir()})

		Expect(cmd.Execute()).NotTo(Succeed())
		Expect(stderr.String()).To(Equal("Error: OPENAI_API_KEY environment variable not set\n"))
	})
})

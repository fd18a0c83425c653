package credentials_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llmite-ai/mirra/pkg/credentials"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
)

// isolateEnv clears the given variables for the duration of one test and
// restores their original values afterwards.
func isolateEnv(names ...string) {
	for _, name := range names {
		orig, had := os.LookupEnv(name)
		Expect(os.Unsetenv(name)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(name, orig)
			} else {
				os.Unsetenv(name)
			}
		})
	}
}

var _ = Describe("Resolve", func() {
	BeforeEach(func() {
		isolateEnv("GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY")
	})

	It("returns the key from the provider's environment variable", func() {
		os.Setenv("GEMINI_API_KEY", "g-test")

		key, err := credentials.Resolve("gemini")
		Expect(err).NotTo(HaveOccurred())
		Expect(key).To(Equal("g-test"))
	})

	It("reports an unset variable by name", func() {
		key, err := credentials.Resolve("openai")
		Expect(key).To(BeEmpty())
		Expect(err).To(MatchError("OPENAI_API_KEY environment variable not set"))
		Expect(errors.Is(err, credentials.ErrMissingKey)).To(BeTrue())

		var missing *credentials.MissingKeyError
		Expect(errors.As(err, &missing)).To(BeTrue())
		Expect(missing.EnvVar).To(Equal("OPENAI_API_KEY"))
	})

	It("treats an empty variable as unset", func() {
		os.Setenv("ANTHROPIC_API_KEY", "")

		_, err := credentials.Resolve("anthropic")
		Expect(err).To(MatchError(ContainSubstring("environment variable not set")))
	})

	It("rejects unknown providers", func() {
		_, err := credentials.Resolve("ollama")
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, credentials.ErrMissingKey)).To(BeFalse())
	})
})

var _ = Describe("LoadEnvFile", func() {
	var tmpDir string

	BeforeEach(func() {
		isolateEnv("GEMINI_API_KEY", "OPENAI_API_KEY")

		var err error
		tmpDir, err = os.MkdirTemp("", "credentials-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, tmpDir)
	})

	It("populates missing variables from the file", func() {
		path := filepath.Join(tmpDir, ".env")
		Expect(os.WriteFile(path, []byte("GEMINI_API_KEY=from-file\n"), 0o600)).To(Succeed())

		Expect(credentials.LoadEnvFile(path)).To(Succeed())

		key, err := credentials.Resolve("gemini")
		Expect(err).NotTo(HaveOccurred())
		Expect(key).To(Equal("from-file"))
	})

	It("does not override variables that are already set", func() {
		os.Setenv("OPENAI_API_KEY", "from-env")
		path := filepath.Join(tmpDir, ".env")
		Expect(os.WriteFile(path, []byte("OPENAI_API_KEY=from-file\n"), 0o600)).To(Succeed())

		Expect(credentials.LoadEnvFile(path)).To(Succeed())

		key, err := credentials.Resolve("openai")
		Expect(err).NotTo(HaveOccurred())
		Expect(key).To(Equal("from-env"))
	})

	It("fails for a missing file", func() {
		err := credentials.LoadEnvFile(filepath.Join(tmpDir, "nope.env"))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("loading env file"))
	})
})

var _ = Describe("provider helpers", func() {
	It("maps providers to their variables", func() {
		Expect(credentials.EnvVarForProvider("gemini")).To(Equal("GEMINI_API_KEY"))
		Expect(credentials.EnvVarForProvider("openai")).To(Equal("OPENAI_API_KEY"))
		Expect(credentials.EnvVarForProvider("anthropic")).To(Equal("ANTHROPIC_API_KEY"))
		Expect(credentials.EnvVarForProvider("ollama")).To(BeEmpty())
	})

	It("has a variable for every supported provider", func() {
		for _, name := range provider.SupportedProviders() {
			Expect(credentials.EnvVarForProvider(name)).NotTo(BeEmpty())
		}
	})
})

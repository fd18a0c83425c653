package provider_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llmite-ai/mirra/pkg/llm/provider"
)

var _ = Describe("supported providers", func() {
	It("lists gemini, openai and anthropic", func() {
		Expect(provider.SupportedProviders()).To(Equal([]string{"gemini", "openai", "anthropic"}))
	})

	DescribeTable("NoResponseMessage",
		func(name, expected string) {
			Expect(provider.NoResponseMessage(name)).To(Equal(expected))
		},
		Entry("gemini", provider.Gemini, "No response from Gemini."),
		Entry("openai", provider.OpenAI, "No response from OpenAI."),
		Entry("anthropic", provider.Anthropic, "No response from Claude."),
		Entry("unknown", "mistral", "No response from mistral."),
	)
})

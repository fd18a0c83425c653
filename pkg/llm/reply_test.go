package llm_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llmite-ai/mirra/pkg/llm"
)

var _ = Describe("Reply", func() {
	It("is empty when nil or without texts", func() {
		var nilReply *llm.Reply
		Expect(nilReply.Empty()).To(BeTrue())
		Expect((&llm.Reply{}).Empty()).To(BeTrue())
	})

	It("is not empty with a single empty-string text", func() {
		Expect((&llm.Reply{Texts: []string{""}}).Empty()).To(BeFalse())
	})
})

var _ = Describe("StatusError", func() {
	It("formats the status code and body", func() {
		err := &llm.StatusError{StatusCode: 429, Body: "slow down"}
		Expect(err.Error()).To(Equal("request failed with status code 429: slow down"))
	})

	It("is found through wrapping", func() {
		wrapped := fmt.Errorf("calling gemini: %w", &llm.StatusError{StatusCode: 500})

		var statusErr *llm.StatusError
		Expect(errors.As(wrapped, &statusErr)).To(BeTrue())
		Expect(statusErr.StatusCode).To(Equal(500))
	})
})

package configcmder_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	configcmder "github.com/llmite-ai/mirra/cmd/examples/config"
)

var _ = Describe("NewConfigCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := configcmder.NewConfigCmd()
		Expect(cmd.Use).To(Equal("config"))
	})

	It("has set, get, and list subcommands", func() {
		cmd := configcmder.NewConfigCmd()
		cmds := cmd.Commands()
		subcommands := make([]string, 0, len(cmds))
		for _, sub := range cmds {
			subcommands = append(subcommands, sub.Name())
		}
		Expect(subcommands).To(ContainElements("set", "get", "list"))
	})
})

var _ = Describe("Config command execution", func() {
	var (
		configDir string
		out       *bytes.Buffer
	)

	run := func(args ...string) error {
		out.Reset()
		cmd := configcmder.NewConfigCmd()
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append(args, "--config-dir", configDir))
		return cmd.Execute()
	}

	BeforeEach(func() {
		configDir = filepath.Join(GinkgoT().TempDir(), ".mirra")
		out = &bytes.Buffer{}
	})

	Describe("set subcommand", func() {
		It("writes config.toml in the config dir", func() {
			Expect(run("set", "proxy.target", "http://localhost:8080")).To(Succeed())

			data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`target = "http://localhost:8080"`))
			Expect(out.String()).To(ContainSubstring("proxy.target"))
		})

		It("rejects unknown keys", func() {
			Expect(run("set", "invalid_key", "value")).To(MatchError(ContainSubstring("unknown config key")))
		})

		It("requires exactly two arguments", func() {
			Expect(run("set", "proxy.target")).NotTo(Succeed())
			Expect(run("set")).NotTo(Succeed())
		})

		DescribeTable("validates values",
			func(key, value string) {
				Expect(run("set", key, value)).NotTo(Succeed())
			},
			Entry("non-numeric max tokens", "claude.max_tokens", "lots"),
			Entry("zero max tokens", "claude.max_tokens", "0"),
			Entry("unknown transport", "gemini.transport", "grpc"),
			Entry("non-boolean markdown", "output.markdown", "sometimes"),
		)
	})

	Describe("get subcommand", func() {
		It("gets a previously set value", func() {
			Expect(run("set", "openai.model", "gpt-4o-mini")).To(Succeed())

			Expect(run("get", "openai.model")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("gpt-4o-mini"))
		})

		It("falls back to the default for an unset key", func() {
			Expect(run("get", "gemini.model")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("gemini-1.5-flash"))
		})

		It("rejects unknown keys", func() {
			Expect(run("get", "invalid_key")).NotTo(Succeed())
		})

		It("requires exactly one argument", func() {
			Expect(run("get")).NotTo(Succeed())
		})
	})

	Describe("list subcommand", func() {
		It("lists every key with its default when no file exists", func() {
			Expect(run("list")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("proxy.target"))
			Expect(out.String()).To(ContainSubstring(`"http://localhost:4567"`))
			Expect(out.String()).To(ContainSubstring("claude.max_tokens"))
		})

		It("shows values from the config file", func() {
			Expect(run("set", "claude.model", "claude-3-5-haiku-20241022")).To(Succeed())

			Expect(run("list")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Using config file:"))
			Expect(out.String()).To(ContainSubstring(`"claude-3-5-haiku-20241022"`))
		})

		It("rejects any arguments", func() {
			Expect(run("list", "extra")).NotTo(Succeed())
		})
	})
})

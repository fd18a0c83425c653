package geminicmder_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	geminicmder "github.com/llmite-ai/mirra/cmd/examples/gemini"
)

const helloResponse = `{"candidates":[{"content":{"parts":[{"text":"Hello!"}]}}]}`

var _ = Describe("gemini command", func() {
	var (
		configDir string
		stdout    *bytes.Buffer
		stderr    *bytes.Buffer
		hits      *atomic.Int32
		lastPath  atomic.Value
	)

	serve := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			lastPath.Store(r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)
		}))
	}

	execute := func(args ...string) error {
		cmd := geminicmder.NewGeminiCmd()
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		cmd.SetArgs(append([]string{"--config-dir", configDir}, args...))
		return cmd.Execute()
	}

	BeforeEach(func() {
		configDir = GinkgoT().TempDir()
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
		hits = &atomic.Int32{}
		GinkgoT().Setenv("GEMINI_API_KEY", "test-key")
	})

	It("prints the reply text", func() {
		server := serve(http.StatusOK, helloResponse)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL)).To(Succeed())
		Expect(stdout.String()).To(Equal("Hello!\n"))
		Expect(hits.Load()).To(Equal(int32(1)))
		Expect(lastPath.Load()).To(Equal("/v1beta/models/gemini-1.5-flash:generateContent"))
	})

	It("uses the --model flag in the request path", func() {
		server := serve(http.StatusOK, helloResponse)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL, "-m", "gemini-1.5-pro")).To(Succeed())
		Expect(lastPath.Load()).To(Equal("/v1beta/models/gemini-1.5-pro:generateContent"))
	})

	It("fails without GEMINI_API_KEY and never contacts the proxy", func() {
		GinkgoT().Setenv("GEMINI_API_KEY", "")
		server := serve(http.StatusOK, helloResponse)
		defer server.Close()

		err := execute("--proxy-target", server.URL)
		Expect(err).To(MatchError("GEMINI_API_KEY environment variable not set"))
		Expect(stderr.String()).To(ContainSubstring("environment variable not set"))
		Expect(stdout.String()).To(BeEmpty())
		Expect(hits.Load()).To(BeZero())
	})

	It("prints the sentinel for empty candidates", func() {
		server := serve(http.StatusOK, `{"candidates":[]}`)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL)).To(Succeed())
		Expect(stdout.String()).To(Equal("No response from Gemini.\n"))
	})

	It("reports the status code and body on a 500", func() {
		server := serve(http.StatusInternalServerError, `{"error":"boom"}`)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL)).NotTo(Succeed())
		Expect(stderr.String()).To(ContainSubstring("500"))
		Expect(stderr.String()).To(ContainSubstring(`{"error":"boom"}`))
		Expect(stdout.String()).To(BeEmpty())
	})

	It("returns an error when the connection drops", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if hj, ok := w.(http.Hijacker); ok {
				conn, _, err := hj.Hijack()
				if err == nil {
					conn.Close()
				}
			}
		}))
		defer server.Close()

		Expect(execute("--proxy-target", server.URL)).NotTo(Succeed())
		Expect(stderr.String()).To(HavePrefix("Error: "))
	})

	It("rejects an unknown transport before sending anything", func() {
		server := serve(http.StatusOK, helloResponse)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL, "--transport", "grpc")).To(MatchError(ContainSubstring("invalid transport")))
		Expect(hits.Load()).To(BeZero())
	})

	It("reads the model from config.toml", func() {
		Expect(os.WriteFile(filepath.Join(configDir, "config.toml"),
			[]byte("[gemini]\nmodel = \"gemini-from-file\"\n"), 0o600)).To(Succeed())
		server := serve(http.StatusOK, helloResponse)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL)).To(Succeed())
		Expect(lastPath.Load()).To(Equal("/v1beta/models/gemini-from-file:generateContent"))
	})

	It("lets MIRRA_ environment variables override the defaults", func() {
		server := serve(http.StatusOK, helloResponse)
		defer server.Close()
		GinkgoT().Setenv("MIRRA_PROXY_TARGET", server.URL)
		GinkgoT().Setenv("MIRRA_GEMINI_MODEL", "gemini-from-env")

		Expect(execute()).To(Succeed())
		Expect(lastPath.Load()).To(Equal("/v1beta/models/gemini-from-env:generateContent"))
	})

	It("loads the API key from --env-file", func() {
		os.Unsetenv("GEMINI_API_KEY")
		envFile := filepath.Join(configDir, ".env")
		Expect(os.WriteFile(envFile, []byte("GEMINI_API_KEY=from-file\n"), 0o600)).To(Succeed())
		DeferCleanup(os.Unsetenv, "GEMINI_API_KEY")

		server := serve(http.StatusOK, helloResponse)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL, "--env-file", envFile)).To(Succeed())
		Expect(stdout.String()).To(Equal("Hello!\n"))
	})

	It("mirrors debug logs to --log-file as JSON", func() {
		logFile := filepath.Join(configDir, "run.log")
		server := serve(http.StatusOK, helloResponse)
		defer server.Close()

		Expect(execute("--proxy-target", server.URL, "--log-file", logFile)).To(Succeed())

		data, err := os.ReadFile(logFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"msg":"exchange complete"`))
		Expect(string(data)).To(ContainSubstring(`"request_id":`))
		Expect(string(data)).To(ContainSubstring(`"source":`))
		Expect(stdout.String()).To(Equal("Hello!\n"))
	})
})

package cli

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/sonos-tools/sonosctl/internal/appconfig"
	"github.com/sonos-tools/sonosctl/internal/sonos"
)

type memStore struct {
	cfg   appconfig.Config
	saves int
}

func (m *memStore) Path() string { return "/tmp/sonosctl-test/config.yaml" }

func (m *memStore) Load() (appconfig.Config, error) { return m.cfg, nil }

func (m *memStore) Save(cfg appconfig.Config) error {
	m.cfg = cfg.Normalize()
	m.saves++
	return nil
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func withConfigStore(t *testing.T, s appconfig.Store) {
	t.Helper()
	orig := newConfigStore
	newConfigStore = func() (appconfig.Store, error) { return s, nil }
	t.Cleanup(func() { newConfigStore = orig })
}

func withSpeakerTransport(t *testing.T, rt roundTripperFunc) {
	t.Helper()
	orig := newSpeakerClient
	newSpeakerClient = func(flags *rootFlags) (*sonos.Client, error) {
		return &sonos.Client{
			IP:   "192.0.2.1",
			HTTP: &http.Client{Timeout: time.Second, Transport: rt},
		}, nil
	}
	t.Cleanup(func() { newSpeakerClient = orig })
}

func runCLI(args ...string) (string, error) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func successEnvelope(action, urn string) string {
	return `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/"><s:Body><u:` + action + `Response xmlns:u="` + urn + `"></u:` + action + `Response></s:Body></s:Envelope>`
}

package cli

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const urnAVTransport = "urn:schemas-upnp-org:service:AVTransport:1"

func TestTransportCommands_Success(t *testing.T) {
	withConfigStore(t, &memStore{})

	var actions []string
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		sa := r.Header.Get("SOAPACTION")
		action := strings.Trim(sa[strings.Index(sa, "#")+1:], `"`)
		actions = append(actions, action)
		return httpResponse(200, successEnvelope(action, urnAVTransport)), nil
	})

	for _, name := range []string{"play", "pause", "stop", "next", "prev"} {
		_, err := runCLI(name, "--ip", "192.0.2.1")
		require.NoError(t, err, name)
	}
	require.Equal(t, []string{"Play", "Pause", "Stop", "Next", "Previous"}, actions)
}

func TestTransportCommand_UPnPFault(t *testing.T) {
	withConfigStore(t, &memStore{})

	fault := `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/"><s:Body><s:Fault><detail><UPnPError xmlns="urn:schemas-upnp-org:control-1-0"><errorCode>701</errorCode></UPnPError></detail></s:Fault></s:Body></s:Envelope>`
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		return httpResponse(500, fault), nil
	})

	_, err := runCLI("prev", "--ip", "192.0.2.1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upnp error 701")
}

func TestPlay_JSONOutput(t *testing.T) {
	withConfigStore(t, &memStore{})
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		return httpResponse(200, successEnvelope("Play", urnAVTransport)), nil
	})

	out, err := runCLI("play", "--ip", "192.0.2.1", "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"ok": true`)
	require.Contains(t, out, `"action": "play"`)
}

func TestVolumeSet_RejectsNonInteger(t *testing.T) {
	withConfigStore(t, &memStore{})

	_, err := runCLI("volume", "set", "loud", "--ip", "192.0.2.1")
	require.Error(t, err)
}

func TestVolumeGet_PrintsValue(t *testing.T) {
	withConfigStore(t, &memStore{})
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		return httpResponse(200, `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body><u:GetVolumeResponse xmlns:u="urn:schemas-upnp-org:service:RenderingControl:1"><CurrentVolume>42</CurrentVolume></u:GetVolumeResponse></s:Body></s:Envelope>`), nil
	})

	out, err := runCLI("volume", "get", "--ip", "192.0.2.1")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)
}

func TestMute_RejectsUnknownMode(t *testing.T) {
	withConfigStore(t, &memStore{})
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})

	_, err := runCLI("mute", "sideways", "--ip", "192.0.2.1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "on|off|toggle|get")
}

func TestMuteToggle_ReadsThenWrites(t *testing.T) {
	withConfigStore(t, &memStore{})

	var bodies []string
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		sa := r.Header.Get("SOAPACTION")
		if strings.Contains(sa, "#GetMute") {
			return httpResponse(200, `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body><u:GetMuteResponse xmlns:u="urn:schemas-upnp-org:service:RenderingControl:1"><CurrentMute>0</CurrentMute></u:GetMuteResponse></s:Body></s:Envelope>`), nil
		}
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		return httpResponse(200, successEnvelope("SetMute", "urn:schemas-upnp-org:service:RenderingControl:1")), nil
	})

	_, err := runCLI("mute", "toggle", "--ip", "192.0.2.1")
	require.NoError(t, err)
	require.Len(t, bodies, 1)
	require.Contains(t, bodies[0], "<DesiredMute>1</DesiredMute>")
}

func TestLED_RejectsUnknownMode(t *testing.T) {
	withConfigStore(t, &memStore{})
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})

	_, err := runCLI("led", "blink", "--ip", "192.0.2.1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "on|off|get")
}

func TestLEDOn(t *testing.T) {
	withConfigStore(t, &memStore{})
	withSpeakerTransport(t, func(r *http.Request) (*http.Response, error) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/DeviceProperties/Control"))
		return httpResponse(200, successEnvelope("SetLEDState", "urn:schemas-upnp-org:service:DeviceProperties:1")), nil
	})

	_, err := runCLI("led", "on", "--ip", "192.0.2.1")
	require.NoError(t, err)
}

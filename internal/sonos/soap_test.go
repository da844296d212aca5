package sonos

import "testing"

func TestEnvelope_ExactBytes(t *testing.T) {
	t.Parallel()

	got := envelope("<x/>")
	want := `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/"><s:Body><x/></s:Body></s:Envelope>`
	if got != want {
		t.Fatalf("envelope mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestParseActionResponse(t *testing.T) {
	t.Parallel()

	raw := []byte(`<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <u:GetVolumeResponse xmlns:u="urn:schemas-upnp-org:service:RenderingControl:1">
      <CurrentVolume>25</CurrentVolume>
    </u:GetVolumeResponse>
  </s:Body>
</s:Envelope>`)

	fields, err := parseActionResponse(raw)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if fields["CurrentVolume"] != "25" {
		t.Fatalf("CurrentVolume: %q", fields["CurrentVolume"])
	}
}

func TestParseActionResponse_UnescapesNestedMarkup(t *testing.T) {
	t.Parallel()

	raw := []byte(`<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body><u:GetPositionInfoResponse xmlns:u="urn:schemas-upnp-org:service:AVTransport:1"><Track>3</Track><TrackMetaData>&lt;DIDL-Lite&gt;&lt;/DIDL-Lite&gt;</TrackMetaData></u:GetPositionInfoResponse></s:Body></s:Envelope>`)

	fields, err := parseActionResponse(raw)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if fields["Track"] != "3" {
		t.Fatalf("Track: %q", fields["Track"])
	}
	if fields["TrackMetaData"] != "<DIDL-Lite></DIDL-Lite>" {
		t.Fatalf("TrackMetaData: %q", fields["TrackMetaData"])
	}
}

func TestParseActionResponse_NotXML(t *testing.T) {
	t.Parallel()

	if _, err := parseActionResponse([]byte("mystery payload")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFaultCode(t *testing.T) {
	t.Parallel()

	code, ok := faultCode([]byte(faultEnvelope801))
	if !ok {
		t.Fatalf("expected fault code")
	}
	if code != 801 {
		t.Fatalf("code: %d", code)
	}
}

func TestFaultCode_IgnoresForeignNamespace(t *testing.T) {
	t.Parallel()

	raw := []byte(`<root xmlns="urn:example:other"><errorCode>801</errorCode></root>`)
	if _, ok := faultCode(raw); ok {
		t.Fatalf("expected no fault code for foreign namespace")
	}
}

func TestFaultCode_Unparseable(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"not xml at all",
		`<UPnPError xmlns="urn:schemas-upnp-org:control-1-0"><errorCode>many</errorCode></UPnPError>`,
		`<UPnPError xmlns="urn:schemas-upnp-org:control-1-0"></UPnPError>`,
	} {
		if _, ok := faultCode([]byte(raw)); ok {
			t.Fatalf("expected no fault code for %q", raw)
		}
	}
}

func TestFaultCode_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	raw := []byte(`<UPnPError xmlns="urn:schemas-upnp-org:control-1-0"><errorCode> 701 </errorCode></UPnPError>`)
	code, ok := faultCode(raw)
	if !ok || code != 701 {
		t.Fatalf("code: %d ok: %v", code, ok)
	}
}

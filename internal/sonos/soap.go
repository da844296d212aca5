package sonos

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Sonos compares nothing loosely: a successful void action echoes back the
// exact envelope below wrapped around <u:XxxResponse/>. Both the request
// wrapper and the success comparison depend on these bytes staying as-is.
const (
	envelopeOpen  = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/"><s:Body>`
	envelopeClose = `</s:Body></s:Envelope>`
)

func envelope(body string) string {
	return envelopeOpen + body + envelopeClose
}

// send posts a single SOAP action and returns the raw response body.
// Classification (success literal, fault, field extraction) is the caller's
// problem; transport failures are the only errors returned here.
func (c *Client) send(ctx context.Context, controlPath, serviceURN, action, body string) ([]byte, error) {
	endpoint := c.baseURL() + controlPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(envelope(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("SOAPACTION", fmt.Sprintf("%q", serviceURN+"#"+action))

	start := time.Now()
	slog.Debug("soap: request", "action", action, "endpoint", endpoint)
	resp, err := doRequest(ctx, c.HTTP, req)
	if err != nil {
		slog.Debug("soap: request failed", "action", action, "endpoint", endpoint, "elapsed", time.Since(start).String(), "err", err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	slog.Debug("soap: response", "action", action, "endpoint", endpoint, "status", resp.StatusCode, "bytes", len(raw), "elapsed", time.Since(start).String())
	return raw, nil
}

// command runs a void action: the action element is built around the literal
// argument string, and the response is matched byte-for-byte against the
// expected success envelope. Anything else goes through fault classification.
func (c *Client) command(ctx context.Context, controlPath, serviceURN, action, args string) (Result, error) {
	body := "<u:" + action + ` xmlns:u="` + serviceURN + `">` + args + "</u:" + action + ">"
	raw, err := c.send(ctx, controlPath, serviceURN, action, body)
	if err != nil {
		return Result{}, err
	}
	success := envelope("<u:" + action + `Response xmlns:u="` + serviceURN + `"></u:` + action + "Response>")
	if string(raw) == success {
		return successResult(), nil
	}
	return faultResult(raw), nil
}

// query runs a data-returning action and extracts the response fields. A
// device fault surfaces as *UPnPError.
func (c *Client) query(ctx context.Context, controlPath, serviceURN, action, args string) (map[string]string, error) {
	body := "<u:" + action + ` xmlns:u="` + serviceURN + `">` + args + "</u:" + action + ">"
	raw, err := c.send(ctx, controlPath, serviceURN, action, body)
	if err != nil {
		return nil, err
	}
	if code, ok := faultCode(raw); ok {
		return nil, &UPnPError{Code: code}
	}
	return parseActionResponse(raw)
}

// parseActionResponse returns the direct children of the <u:XxxResponse>
// element as a name-to-text map. Nested markup inside a field (escaped
// DIDL-Lite, typically) comes back as its unescaped text.
func parseActionResponse(raw []byte) (map[string]string, error) {
	var env struct {
		Body struct {
			Inner []byte `xml:",innerxml"`
		} `xml:"Body"`
	}
	if err := xml.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse soap response: %w", err)
	}

	var response struct {
		Fields []struct {
			XMLName xml.Name
			Value   string `xml:",chardata"`
		} `xml:",any"`
	}
	if err := xml.Unmarshal(env.Body.Inner, &response); err != nil {
		return nil, fmt.Errorf("parse action response: %w", err)
	}

	fields := make(map[string]string, len(response.Fields))
	for _, f := range response.Fields {
		fields[f.XMLName.Local] = f.Value
	}
	return fields, nil
}

// faultCode digs the UPnP errorCode out of a fault envelope. It reports false
// for anything it cannot read: not XML, no errorCode element, non-numeric
// code. Callers fall back to the raw body in that case.
func faultCode(raw []byte) (int, bool) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	for {
		tok, err := dec.Token()
		if err != nil {
			return 0, false
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Space != nsUPnPControl || se.Name.Local != "errorCode" {
			continue
		}
		var text string
		if err := dec.DecodeElement(&text, &se); err != nil {
			return 0, false
		}
		code, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return 0, false
		}
		return code, true
	}
}

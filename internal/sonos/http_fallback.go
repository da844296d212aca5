package sonos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Some ZonePlayer firmwares stall Go's HTTP client on the local segment
// (the connection hangs until Client.Timeout fires). When that happens for a
// private address we replay the request once through the curl binary, which
// negotiates fine with those units.

// curlRoundTripFunc exists for unit tests.
var curlRoundTripFunc = curlRoundTrip

func doRequest(ctx context.Context, httpClient *http.Client, req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if req.Body != nil && req.GetBody == nil {
		if err := bufferRequestBody(req); err != nil {
			return nil, err
		}
	}

	resp, err := httpClient.Do(req)
	if err == nil || !shouldCurlFallback(req, err) {
		return resp, err
	}

	curlResp, curlErr := curlRoundTripFunc(ctx, req, fallbackTimeout(ctx, httpClient.Timeout))
	if curlErr != nil {
		return nil, fmt.Errorf("%w (curl fallback failed: %v)", err, curlErr)
	}
	return curlResp, nil
}

func fallbackTimeout(ctx context.Context, clientTimeout time.Duration) time.Duration {
	timeout := clientTimeout
	if dl, ok := ctx.Deadline(); ok {
		if remain := time.Until(dl); remain > 0 && (timeout <= 0 || remain < timeout) {
			timeout = remain
		}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return timeout
}

func shouldCurlFallback(req *http.Request, err error) bool {
	if req.URL == nil || (req.URL.Scheme != "http" && req.URL.Scheme != "https") {
		return false
	}
	ip := net.ParseIP(req.URL.Hostname())
	if ip == nil || !(ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()) {
		return false
	}
	return isTimeoutLike(err)
}

func isTimeoutLike(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	// The http client wraps its own timeout as a plain string error.
	msg := err.Error()
	return strings.Contains(msg, "Client.Timeout exceeded") || strings.Contains(msg, "timeout")
}

// bufferRequestBody makes the body replayable so the curl fallback can send
// it again after the first attempt consumed it.
func bufferRequestBody(req *http.Request) error {
	const max = 2 << 20
	b, err := io.ReadAll(io.LimitReader(req.Body, max+1))
	_ = req.Body.Close()
	if err != nil {
		return err
	}
	if len(b) > max {
		return fmt.Errorf("request body too large to replay: %d bytes", len(b))
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	return nil
}

func curlRoundTrip(ctx context.Context, req *http.Request, timeout time.Duration) (*http.Response, error) {
	curlPath, err := exec.LookPath("curl")
	if err != nil {
		return nil, err
	}

	var body []byte
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		body, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, err
		}
	}

	secs := fmt.Sprintf("%.3f", timeout.Seconds())
	args := []string{
		"--silent", "--show-error", "--include",
		"--max-time", secs,
		"--connect-timeout", secs,
		"--request", req.Method,
	}
	for k, vals := range req.Header {
		for _, v := range vals {
			args = append(args, "--header", k+": "+v)
		}
	}
	// Suppress 100-continue negotiation.
	args = append(args, "--header", "Expect:")
	if len(body) > 0 {
		args = append(args, "--data-binary", "@-")
	}
	args = append(args, req.URL.String())

	cmd := exec.CommandContext(ctx, curlPath, args...)
	if len(body) > 0 {
		cmd.Stdin = bytes.NewReader(body)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("curl: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return parseCurlOutput(out, req)
}

// parseCurlOutput turns curl --include output (status line, headers, blank
// line, body) into an *http.Response. Interim 1xx responses are skipped.
func parseCurlOutput(out []byte, req *http.Request) (*http.Response, error) {
	for {
		headerText, body, ok := cutHeaderBlock(out)
		if !ok {
			return nil, errors.New("curl output missing header separator")
		}

		lines := strings.Split(headerText, "\n")
		statusLine := strings.TrimRight(lines[0], "\r")
		proto, codeStr, tail, err := splitStatusLine(statusLine)
		if err != nil {
			return nil, err
		}
		code, err := strconv.Atoi(codeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid status code in %q", statusLine)
		}

		if code >= 100 && code < 200 && code != http.StatusSwitchingProtocols {
			out = body
			continue
		}

		headers := make(http.Header)
		for _, raw := range lines[1:] {
			line := strings.TrimRight(raw, "\r")
			k, v, found := strings.Cut(line, ":")
			if !found || strings.TrimSpace(k) == "" {
				continue
			}
			headers.Add(strings.TrimSpace(k), strings.TrimSpace(v))
		}

		status := codeStr
		if tail != "" {
			status += " " + tail
		}
		major, minor := protoVersion(proto)
		return &http.Response{
			StatusCode:    code,
			Status:        status,
			Proto:         proto,
			ProtoMajor:    major,
			ProtoMinor:    minor,
			Header:        headers,
			Body:          io.NopCloser(bytes.NewReader(body)),
			ContentLength: int64(len(body)),
			Request:       req,
		}, nil
	}
}

func cutHeaderBlock(out []byte) (header string, body []byte, ok bool) {
	if i := bytes.Index(out, []byte("\r\n\r\n")); i >= 0 {
		return string(out[:i]), out[i+4:], true
	}
	if i := bytes.Index(out, []byte("\n\n")); i >= 0 {
		return string(out[:i]), out[i+2:], true
	}
	return "", nil, false
}

func splitStatusLine(statusLine string) (proto, code, tail string, err error) {
	if !strings.HasPrefix(statusLine, "HTTP/") {
		return "", "", "", fmt.Errorf("unexpected curl status line: %q", statusLine)
	}
	parts := strings.SplitN(strings.TrimSpace(statusLine), " ", 3)
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("invalid status line: %q", statusLine)
	}
	proto = parts[0]
	code = parts[1]
	if len(parts) == 3 {
		tail = parts[2]
	}
	return proto, code, tail, nil
}

func protoVersion(proto string) (major, minor int) {
	v := strings.TrimPrefix(proto, "HTTP/")
	if nums := strings.SplitN(v, ".", 2); len(nums) == 2 {
		major, _ = strconv.Atoi(nums[0])
		minor, _ = strconv.Atoi(nums[1])
	}
	return major, minor
}

package sonos

import "fmt"

// Result is the outcome of a void control action. The device reports
// protocol-level failures in-band, so they are values here, not Go errors:
// either the action succeeded, or the device returned a UPnP fault code, or
// it returned something we could not interpret at all (kept verbatim so the
// caller can inspect it). Transport failures are ordinary errors and never
// produce a Result.
type Result struct {
	kind resultKind
	code int
	raw  string
}

type resultKind int

const (
	resultSuccess resultKind = iota
	resultErrorCode
	resultRawFailure
)

func successResult() Result {
	return Result{kind: resultSuccess}
}

func faultResult(raw []byte) Result {
	if code, ok := faultCode(raw); ok {
		return Result{kind: resultErrorCode, code: code}
	}
	return Result{kind: resultRawFailure, raw: string(raw)}
}

func (r Result) OK() bool {
	return r.kind == resultSuccess
}

// Code returns the UPnP fault code when the device rejected the action.
func (r Result) Code() (int, bool) {
	return r.code, r.kind == resultErrorCode
}

// Raw returns the unmodified response body when it was neither the success
// envelope nor a parseable fault.
func (r Result) Raw() (string, bool) {
	return r.raw, r.kind == resultRawFailure
}

// Err converts a failed Result into an error for callers that do not care
// about the distinction (the CLI, mostly). A successful Result yields nil.
func (r Result) Err() error {
	switch r.kind {
	case resultErrorCode:
		return &UPnPError{Code: r.code}
	case resultRawFailure:
		return fmt.Errorf("unexpected device response: %s", snippet(r.raw))
	default:
		return nil
	}
}

type UPnPError struct {
	Code int
}

func (e *UPnPError) Error() string {
	return fmt.Sprintf("upnp error %d", e.Code)
}

func snippet(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

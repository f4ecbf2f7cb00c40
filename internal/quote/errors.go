package quote

import "fmt"

// NetworkError reports a transport-level failure while talking to the
// quote provider. The attempt is never retried; callers get exactly
// one terminal outcome per fetch.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("quote provider request failed (%s): %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a malformed envelope or unparseable JSON body.
// Session state is never mutated when decoding fails.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode quote response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode quote response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProviderError reports a syntactically valid response whose status
// code signals failure. It carries the provider's status verbatim and
// the embedded message when one is present.
type ProviderError struct {
	Status  string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("quote provider returned status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("quote provider returned status %s", e.Status)
}

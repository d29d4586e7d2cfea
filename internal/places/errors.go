package places

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason classifies why an address could not be resolved.
type Reason string

const (
	// ReasonNoMatch means the provider answered but found nothing.
	ReasonNoMatch Reason = "no_match"
	// ReasonProviderError covers transport, timeout, non-2xx and malformed responses.
	ReasonProviderError Reason = "provider_error"
	// ReasonInternal is reported for failures outside the provider, such as the store.
	ReasonInternal Reason = "internal"
)

// Failure is returned when an address cannot be geocoded.
type Failure struct {
	Address string
	Reason  Reason
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("geocode %q: %s: %v", f.Address, f.Reason, f.Err)
	}
	return fmt.Sprintf("geocode %q: %s", f.Address, f.Reason)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// HTTPStatus lets the HTTP layer map failures without knowing this package.
func (f *Failure) HTTPStatus() int {
	if f.Reason == ReasonNoMatch {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// NoMatch builds a Failure for an address the provider did not recognise.
func NoMatch(address string) *Failure {
	return &Failure{Address: address, Reason: ReasonNoMatch}
}

// ProviderError builds a Failure for an unusable provider call.
func ProviderError(address string, err error) *Failure {
	return &Failure{Address: address, Reason: ReasonProviderError, Err: err}
}

// ReasonOf reports the failure reason carried by err, or ReasonInternal.
func ReasonOf(err error) Reason {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Reason
	}
	return ReasonInternal
}

// IsNoMatch reports whether err is a NoMatch failure.
func IsNoMatch(err error) bool {
	return err != nil && ReasonOf(err) == ReasonNoMatch
}

// IsProviderError reports whether err is a ProviderError failure.
func IsProviderError(err error) bool {
	return err != nil && ReasonOf(err) == ReasonProviderError
}

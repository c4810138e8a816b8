package dispatch

import "net/http"

// Classify maps an HTTP status code and the application error code embedded
// in the response body to a failure Kind. A small set of statuses is
// decisive on its own; everything else falls through to the half-open
// error-code bands. codePresent distinguishes errorCode 0 from an absent
// field; an absent code matches no band.
//
// Classify is pure: identical inputs always yield the identical Kind.
func Classify(status int, code int64, codePresent bool) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindSignatureInvalid
	case http.StatusForbidden:
		return KindFingerprintInvalid
	case http.StatusUnprocessableEntity:
		return KindValidationFailed
	case http.StatusInternalServerError:
		return KindServerFault
	}

	if !codePresent {
		return KindUnclassified
	}
	switch {
	case code >= 5000:
		return KindRemoteInternal
	case code >= 3000:
		return KindPaymentRejected
	case code >= 2000:
		return KindValidationFailed
	case code >= 1000:
		return KindAuthenticationFailed
	}
	return KindUnclassified
}

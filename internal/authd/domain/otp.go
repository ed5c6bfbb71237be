package domain

// OTPChallenge is the code/session-code pair supplied by a client and
// forwarded to the remote OTP service for validation. Both values are
// opaque to us; the remote service owns issuance and expiry.
type OTPChallenge struct {
	Code        string
	SessionCode string
}

package domain

// TokenPair is the access/refresh credential pair minted at sign-in or
// refresh. Pairs are never persisted server-side; validity is enforced
// purely by signature and expiration at verification time.
type TokenPair struct {
	Access  string
	Refresh string
}

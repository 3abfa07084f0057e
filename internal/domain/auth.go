package domain

// TokenPair holds the access/refresh credentials issued by the token
// endpoint. Both values are opaque signed strings; only the access
// token's embedded expiry is ever inspected client-side.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

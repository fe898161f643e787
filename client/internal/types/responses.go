package types

// ------------------------------
// Response Types
// ------------------------------

// AccessToken is the body of the legacy channel access-token endpoint.
type AccessToken struct {
	Token string `json:"token"`
	Sig   string `json:"sig"`
	Error string `json:"error,omitempty"`
}

package model

// IdentityKind describes how a client identity key was derived.
type IdentityKind string

const (
	// IdentityNetworkAddress keys come from a forwarded or direct address header.
	IdentityNetworkAddress IdentityKind = "network-address"
	// IdentityPersistentToken keys come from a token the client stored and resent.
	IdentityPersistentToken IdentityKind = "persistent-token"
	// IdentityEphemeral keys are minted fresh for a caller with no usable
	// signal at all. They can never be matched on a later request, so such
	// callers are effectively not rate-limitable until they return the
	// issued token.
	IdentityEphemeral IdentityKind = "ephemeral"
)

// ClientIdentity is the opaque key an anonymous caller's quota usage is
// bucketed under.
type ClientIdentity struct {
	Key  string
	Kind IdentityKind
}

// QuotaDecision is the result of admitting one request against the daily quota.
type QuotaDecision struct {
	Admitted bool
	// Count is the post-increment value for today's bucket. It keeps growing
	// past the limit; rejected attempts are never refunded.
	Count     int64
	Remaining int
	// IssueToken signals that the caller had no persistent token and should
	// be handed one for future requests.
	IssueToken bool
}

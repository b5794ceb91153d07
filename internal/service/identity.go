package service

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"fixmygame/backend/internal/model"
)

const (
	headerForwardedFor = "X-Forwarded-For"
	headerRealIP       = "X-Real-IP"
)

// ResolveIdentity derives exactly one quota identity from the signals a
// request carries, in priority order: first X-Forwarded-For hop, X-Real-IP,
// the persistent token the caller sent back, and finally a freshly minted
// token. It is a pure function of its inputs apart from the mint in the
// last case, and it never yields an empty key.
func ResolveIdentity(headers http.Header, token string) model.ClientIdentity {
	if addr := firstForwardedAddr(headers.Get(headerForwardedFor)); addr != "" {
		return model.ClientIdentity{Key: addr, Kind: model.IdentityNetworkAddress}
	}
	if addr := strings.TrimSpace(headers.Get(headerRealIP)); addr != "" {
		return model.ClientIdentity{Key: addr, Kind: model.IdentityNetworkAddress}
	}
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		return model.ClientIdentity{Key: trimmed, Kind: model.IdentityPersistentToken}
	}
	return model.ClientIdentity{Key: uuid.NewString(), Kind: model.IdentityEphemeral}
}

// firstForwardedAddr extracts the client hop from an X-Forwarded-For value,
// the first comma-separated entry.
func firstForwardedAddr(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	first, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(first)
}

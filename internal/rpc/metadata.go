package rpc

import (
	"net/http"
	"strconv"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

// Metadata header names for the authenticated caller, attached by the
// gateway after its guard has run. The downstream service never trusts
// anything the external caller supplied directly.
const (
	HeaderUserID = "user-id"
	HeaderRole   = "role"
)

// SetAuthHeaders attaches the caller identity to an outgoing internal call.
func SetAuthHeaders(h http.Header, caller ports.AuthContext) {
	h.Set(HeaderUserID, strconv.FormatInt(caller.UserID, 10))
	h.Set(HeaderRole, string(caller.Role))
}

// AuthFromHeaders reads the caller identity from an incoming internal call.
// Missing or malformed metadata means the caller identity cannot be
// established, which is an authentication failure.
func AuthFromHeaders(h http.Header) (ports.AuthContext, error) {
	id, err := strconv.ParseInt(h.Get(HeaderUserID), 10, 64)
	if err != nil || id <= 0 {
		return ports.AuthContext{}, domain.E(domain.KindUnauthenticated, "missing caller identity metadata")
	}
	role, err := domain.ParseRole(h.Get(HeaderRole))
	if err != nil {
		return ports.AuthContext{}, domain.E(domain.KindUnauthenticated, "missing caller role metadata")
	}
	return ports.AuthContext{UserID: id, Role: role}, nil
}

package auth

import (
	"fmt"

	"smart-deals-server/internal/marketerrors"
)

// AuthorizeOwner decides whether a caller may see data scoped to
// requestedEmail. No owner filter means a collection-wide or public view,
// which any caller may take. With a filter, the caller must be that owner;
// the Forbidden rejection is distinct from Unauthorized because the caller
// is known but not entitled.
func AuthorizeOwner(requestedEmail string, caller Identity) error {
	if requestedEmail == "" {
		return nil
	}
	if requestedEmail != caller.Email {
		return fmt.Errorf("auth: caller %s does not own scope %s: %w", caller.Email, requestedEmail, marketerrors.ErrForbidden)
	}
	return nil
}

package interfaces

import (
	"context"
	"errors"
)

var ErrPolicyDenied = errors.New("denied by authorization policy")

// IAuthorizer consults the external authorization policy service. A nil
// error means the action is allowed; ErrPolicyDenied means the policy
// explicitly refused it.

type IAuthorizer interface {
	CanStartSession(ctx context.Context, userID, serviceCategory string) error
	CanCreateService(ctx context.Context, vendorID, serviceCategory string) error
}

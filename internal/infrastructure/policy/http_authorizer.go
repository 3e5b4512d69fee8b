package policy

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"paygo_market/internal/usecase/interfaces"
)

const checkTimeout = 3 * time.Second

// HTTPAuthorizer consults the external authorization policy service.
// Without a configured POLICY_URL every check passes (single-tenant and
// local setups); with one, transport failures fail closed.

type HTTPAuthorizer struct {
	http *resty.Client
	url  string
}

var _ interfaces.IAuthorizer = (*HTTPAuthorizer)(nil)

func NewHTTPAuthorizer(policyURL string) *HTTPAuthorizer {
	if policyURL == "" {
		log.Printf("[policy][authorizer] no POLICY_URL configured; all policy checks will pass")
		return &HTTPAuthorizer{}
	}
	return &HTTPAuthorizer{
		http: resty.New().SetBaseURL(policyURL).SetTimeout(checkTimeout),
		url:  policyURL,
	}
}

type policyCheckRequest struct {
	PrincipalID string `json:"principal_id"`
	Action      string `json:"action"`
	Category    string `json:"category,omitempty"`
}

type policyCheckResponse struct {
	Allowed bool `json:"allowed"`
}

func (a *HTTPAuthorizer) CanStartSession(ctx context.Context, userID, serviceCategory string) error {
	return a.check(ctx, policyCheckRequest{PrincipalID: userID, Action: "session.start", Category: serviceCategory})
}

func (a *HTTPAuthorizer) CanCreateService(ctx context.Context, vendorID, serviceCategory string) error {
	return a.check(ctx, policyCheckRequest{PrincipalID: vendorID, Action: "service.create", Category: serviceCategory})
}

func (a *HTTPAuthorizer) check(ctx context.Context, req policyCheckRequest) error {
	if a.url == "" {
		return nil
	}

	var result policyCheckResponse
	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/check")
	if err != nil {
		log.Printf("[policy][authorizer] check failed action=%s principal=%s err=%v", req.Action, req.PrincipalID, err)
		return fmt.Errorf("policy check: %w", err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("[policy][authorizer] check rejected action=%s principal=%s status=%d", req.Action, req.PrincipalID, resp.StatusCode())
		return fmt.Errorf("policy check: http %d", resp.StatusCode())
	}
	if !result.Allowed {
		return interfaces.ErrPolicyDenied
	}
	return nil
}

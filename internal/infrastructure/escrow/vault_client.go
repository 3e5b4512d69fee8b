package escrow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"paygo_market/internal/usecase/interfaces"
)

var ErrMissingEscrowRPCURL = errors.New("missing ESCROW_RPC_URL")

// Vault-side JSON-RPC error codes. Anything else in the server range is
// treated as a permanent rejection.
const (
	codeVaultRejected    = -32050
	codeUnsupportedToken = -32051
	codeVaultCongested   = -32005
)

const defaultRPCTimeoutSeconds = 5

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int64  `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
	ID     int64           `json:"id"`
}

// VaultClient adapts the escrow vault contract's JSON-RPC endpoint.
//
// Each call is bounded by the configured timeout; exceeding it surfaces as
// ErrEscrowUnavailable like any other transient transport failure. The
// client never retries — retry and fallback policy belong to the callers.
// Raw transport errors never leave this package.

type VaultClient struct {
	http      *resty.Client
	vaultAddr string
	mockMode  bool
	nextID    atomic.Int64
}

var _ interfaces.IEscrowClient = (*VaultClient)(nil)

func NewVaultClient(rpcURL string) (*VaultClient, error) {
	if isEscrowMockEnabled() {
		log.Printf("[escrow][client] mock mode enabled")
		return &VaultClient{mockMode: true}, nil
	}

	if rpcURL == "" {
		log.Printf("[escrow][client] missing ESCROW_RPC_URL")
		return nil, ErrMissingEscrowRPCURL
	}

	timeoutSeconds := defaultRPCTimeoutSeconds
	if v := strings.TrimSpace(os.Getenv("ESCROW_RPC_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSeconds = parsed
		}
	}

	client := resty.New().
		SetBaseURL(rpcURL).
		SetTimeout(time.Duration(timeoutSeconds) * time.Second).
		SetHeader("Content-Type", "application/json")

	log.Printf("[escrow][client] vault client initialized url=%s timeout=%ds", rpcURL, timeoutSeconds)
	return &VaultClient{
		http:      client,
		vaultAddr: os.Getenv("ESCROW_VAULT_ADDRESS"),
	}, nil
}

func (c *VaultClient) Deposit(ctx context.Context, userAddr, token string, amount decimal.Decimal) (string, error) {
	if c.mockMode {
		ref := mockTxRef("deposit", userAddr, token)
		log.Printf("[escrow][client] mock deposit user_addr=%s token=%s amount=%s tx_ref=%s", userAddr, token, amount, ref)
		return ref, nil
	}

	var ref string
	if err := c.call(ctx, "vault_deposit", []any{c.vaultAddr, userAddr, token, amount.String()}, &ref); err != nil {
		return "", err
	}
	log.Printf("[escrow][client] deposit confirmed user_addr=%s token=%s amount=%s tx_ref=%s", userAddr, token, amount, ref)
	return ref, nil
}

func (c *VaultClient) Withdraw(ctx context.Context, userAddr, token string, amount decimal.Decimal) (string, error) {
	if c.mockMode {
		ref := mockTxRef("withdraw", userAddr, token)
		log.Printf("[escrow][client] mock withdraw user_addr=%s token=%s amount=%s tx_ref=%s", userAddr, token, amount, ref)
		return ref, nil
	}

	var ref string
	if err := c.call(ctx, "vault_withdraw", []any{c.vaultAddr, userAddr, token, amount.String()}, &ref); err != nil {
		return "", err
	}
	log.Printf("[escrow][client] withdraw confirmed user_addr=%s token=%s amount=%s tx_ref=%s", userAddr, token, amount, ref)
	return ref, nil
}

func (c *VaultClient) GetBalance(ctx context.Context, userAddr, token string) (decimal.Decimal, error) {
	if c.mockMode {
		return mockBalance(), nil
	}

	var raw string
	if err := c.call(ctx, "vault_balanceOf", []any{c.vaultAddr, userAddr, token}, &raw); err != nil {
		return decimal.Zero, err
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed balance %q", interfaces.ErrEscrowRejected, raw)
	}
	return balance, nil
}

func (c *VaultClient) IsTokenSupported(ctx context.Context, token string) (bool, error) {
	if c.mockMode {
		return true, nil
	}

	var supported bool
	if err := c.call(ctx, "vault_isTokenSupported", []any{c.vaultAddr, token}, &supported); err != nil {
		return false, err
	}
	return supported, nil
}

func (c *VaultClient) call(ctx context.Context, method string, params []any, out any) error {
	req := rpcRequest{
		Jsonrpc: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID.Add(1),
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("")
	if err != nil {
		log.Printf("[escrow][client] rpc transport failure method=%s err=%v", method, err)
		return fmt.Errorf("%w: %v", interfaces.ErrEscrowUnavailable, err)
	}
	if resp.StatusCode() >= 500 {
		log.Printf("[escrow][client] rpc server failure method=%s status=%d", method, resp.StatusCode())
		return fmt.Errorf("%w: http %d", interfaces.ErrEscrowUnavailable, resp.StatusCode())
	}
	if resp.StatusCode() != 200 {
		log.Printf("[escrow][client] rpc rejected method=%s status=%d", method, resp.StatusCode())
		return fmt.Errorf("%w: http %d", interfaces.ErrEscrowRejected, resp.StatusCode())
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		log.Printf("[escrow][client] rpc malformed response method=%s err=%v", method, err)
		return fmt.Errorf("%w: malformed response", interfaces.ErrEscrowUnavailable)
	}
	if rpcResp.Error != nil {
		return translateRPCError(method, rpcResp.Error)
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			log.Printf("[escrow][client] rpc malformed result method=%s err=%v", method, err)
			return fmt.Errorf("%w: malformed result", interfaces.ErrEscrowRejected)
		}
	}
	return nil
}

func translateRPCError(method string, rpcErr *rpcError) error {
	log.Printf("[escrow][client] rpc error method=%s code=%d message=%s", method, rpcErr.Code, rpcErr.Message)
	switch rpcErr.Code {
	case codeUnsupportedToken:
		return fmt.Errorf("%w: %s", interfaces.ErrEscrowUnsupportedToken, rpcErr.Message)
	case codeVaultCongested:
		return fmt.Errorf("%w: %s", interfaces.ErrEscrowUnavailable, rpcErr.Message)
	default:
		return fmt.Errorf("%w: %s (code %d)", interfaces.ErrEscrowRejected, rpcErr.Message, rpcErr.Code)
	}
}

func isEscrowMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ESCROW_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func mockTxRef(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|") + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)))
	return "0x" + hex.EncodeToString(sum[:])
}

func mockBalance() decimal.Decimal {
	if v := strings.TrimSpace(os.Getenv("ESCROW_MOCK_BALANCE")); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.NewFromInt(1_000_000)
}

package adapter

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// IngressExpiry is how long a call envelope stays valid.
const IngressExpiry = 5 * time.Minute

const (
	queryPath  = "/api/v2/canister/%s/query"
	callPath   = "/api/v3/canister/%s/call"
	statusPath = "/api/v2/status"
)

type httpAgent struct {
	client *utils.HTTPClient
	codec  codec.Codec
	tokens oauth2.TokenSource
	sender models.Principal

	// entropy fills envelope nonces.
	entropy io.Reader

	logger *logger.Logger
}

// AgentOption customises an HTTP agent.
type AgentOption func(*httpAgent)

// WithTokenSource authenticates calls as sender with bearer delegations from
// tokens. Without it calls are anonymous.
func WithTokenSource(tokens oauth2.TokenSource, sender models.Principal) AgentOption {
	return func(a *httpAgent) {
		a.tokens = tokens
		a.sender = sender
	}
}

// NewHTTPAgent constructs the HTTP implementation of [Agent] for the replica
// at adapterCfg.ReplicaURL.
//
// Returns an error if the replica URL is empty or cannot be parsed.
func NewHTTPAgent(adapterCfg config.ClientAdapter, c codec.Codec, logger *logger.Logger, opts ...AgentOption) (Agent, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ReplicaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid replica url: %w", err)
	}

	a := &httpAgent{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		codec:   c,
		sender:  models.AnonymousPrincipal,
		entropy: rand.Reader,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.Scheme+"://"+u.Host+u.Path, "/"), nil
}

func (a *httpAgent) Sender() models.Principal {
	return a.sender
}

// Query implements [Agent]. It POSTs a query envelope to
// /api/v2/canister/{id}/query.
func (a *httpAgent) Query(ctx context.Context, canister models.Principal, method string, args []any, results ...any) error {
	return a.send(ctx, models.RequestTypeQuery, queryPath, canister, method, args, results)
}

// Call implements [Agent]. It POSTs an update envelope to
// /api/v3/canister/{id}/call.
func (a *httpAgent) Call(ctx context.Context, canister models.Principal, method string, args []any, results ...any) error {
	return a.send(ctx, models.RequestTypeCall, callPath, canister, method, args, results)
}

func (a *httpAgent) send(ctx context.Context, requestType, pathFormat string, canister models.Principal, method string, args, results []any) error {
	log := a.logger.ForCall(canister.String(), method)

	arg, err := a.codec.EncodeTuple(args...)
	if err != nil {
		return fmt.Errorf("encode %s arguments: %w", method, err)
	}

	nonce := make([]byte, 8)
	if _, err := io.ReadFull(a.entropy, nonce); err != nil {
		return fmt.Errorf("generate %s nonce: %w", method, err)
	}

	envelope := models.CallEnvelope{
		RequestType:   requestType,
		CanisterID:    canister,
		MethodName:    method,
		Arg:           arg,
		Sender:        a.sender,
		Nonce:         nonce,
		IngressExpiry: uint64(time.Now().Add(IngressExpiry).UnixNano()),
	}
	body, err := a.codec.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", method, err)
	}

	req, err := a.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", a.codec.ContentType()).
		SetHeader("Accept", a.codec.ContentType()).
		SetBody(body).
		Post(fmt.Sprintf(pathFormat, canister))
	if err != nil {
		log.Err(err).Msg("call request failed")
		return fmt.Errorf("%s request: %w", requestType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("replica returned an error status")
		return err
	}

	var reply models.CallReply
	if err = a.codec.Unmarshal(resp.Body(), &reply); err != nil {
		return fmt.Errorf("decode %s reply: %w", method, err)
	}

	switch reply.Status {
	case models.StatusReplied:
		if reply.Reply == nil {
			return fmt.Errorf("%w: replied without payload", ErrUnexpectedReply)
		}
		if err = a.codec.DecodeTuple(reply.Reply.Arg, results...); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
		log.Debug().Msg("call replied")
		return nil
	case models.StatusRejected:
		rejectErr := &RejectError{
			Canister:  canister,
			Method:    method,
			Code:      reply.RejectCode,
			ErrorCode: reply.ErrorCode,
			Message:   reply.RejectMessage,
		}
		log.Warn().Err(rejectErr).Msg("call rejected")
		return rejectErr
	default:
		return fmt.Errorf("%w: status %q", ErrUnexpectedReply, reply.Status)
	}
}

// Status implements [Agent]. It GETs /api/v2/status, which is always JSON.
func (a *httpAgent) Status(ctx context.Context) (models.ReplicaStatus, error) {
	var status models.ReplicaStatus

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&status).
		Get(statusPath)
	if err != nil {
		return models.ReplicaStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReplicaStatus{}, err
	}
	return status, nil
}

func (a *httpAgent) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := a.client.R().SetContext(ctx)
	if a.tokens == nil {
		return req, nil
	}

	token, err := a.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("obtain delegation: %w", err)
	}
	req.SetHeader("Authorization", token.Type()+" "+token.AccessToken)
	return req, nil
}

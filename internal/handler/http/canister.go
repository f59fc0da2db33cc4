package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// maxEnvelopeSize bounds the encoded body of a call envelope.
const maxEnvelopeSize = 2 << 20

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	h.handleCall(w, r, models.RequestTypeQuery)
}

func (h *Handler) call(w http.ResponseWriter, r *http.Request) {
	h.handleCall(w, r, models.RequestTypeCall)
}

// handleCall decodes the envelope with the codec named by Content-Type,
// checks it against the endpoint and the authenticated caller, and answers
// with the dispatcher's reply in the same codec. Canister rejections are
// replies, not HTTP errors: only transport-level problems produce a non-200
// status.
func (h *Handler) handleCall(w http.ResponseWriter, r *http.Request, requestType string) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	c, env, err := h.decodeEnvelope(w, r, requestType)
	if err != nil {
		log.Err(err).Str("request_type", requestType).Msg("call envelope refused")
		writeError(w, err)
		return
	}

	reply := h.dispatcher.Dispatch(ctx, c, requestType, env, utils.CallerFromContext(ctx))

	if _, err = utils.WriteEncoded(w, c, reply, http.StatusOK); err != nil {
		log.Err(err).Str("method", env.MethodName).Msg("failed to write call reply")
	}
}

func (h *Handler) decodeEnvelope(w http.ResponseWriter, r *http.Request, requestType string) (codec.Codec, models.CallEnvelope, error) {
	var env models.CallEnvelope

	c, err := codec.ByContentType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, env, err
	}

	canisterID, err := models.ParsePrincipal(chi.URLParam(r, "canisterID"))
	if err != nil {
		return nil, env, fmt.Errorf("%w: %w", ErrInvalidCanisterID, err)
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEnvelopeSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, env, ErrEnvelopeTooLarge
		}
		return nil, env, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	if err = c.Unmarshal(body, &env); err != nil {
		return nil, env, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	if env.RequestType != requestType {
		return nil, env, fmt.Errorf("%w: %q", ErrRequestTypeMismatch, env.RequestType)
	}
	if env.CanisterID != canisterID {
		return nil, env, fmt.Errorf("%w: %s", ErrCanisterMismatch, env.CanisterID)
	}

	caller := utils.CallerFromContext(r.Context())
	if env.Sender == models.ManagementPrincipal {
		env.Sender = caller
	}
	if env.Sender != caller {
		return nil, env, fmt.Errorf("%w: sender %s, delegation %s", ErrSenderMismatch, env.Sender, caller)
	}

	if env.IngressExpiry != 0 && uint64(h.now().UnixNano()) > env.IngressExpiry {
		return nil, env, ErrIngressExpired
	}

	return c, env, nil
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/selection"
	"github.com/google/uuid"
)

const (
	placeOrderPath      = "/v1/order/place"
	genericOrderFailure = "Order was not accepted. Please try again."
)

// CredentialSource resolves a customer's provider credential. An empty
// credential with a nil error means the customer is signed out of the
// provider.
type CredentialSource interface {
	ProviderKey(ctx context.Context, customerID uuid.UUID) (string, error)
}

// ProviderClient performs the single authenticated order-placement exchange
// with the upstream provider and classifies the outcome. Every outcome,
// good or bad, ends as exactly one notification on the session.
type ProviderClient struct {
	httpClient  *http.Client
	credentials CredentialSource
}

var providerClient *ProviderClient

func InitProviderClient(creds CredentialSource) {
	providerClient = NewProviderClient(creds)
}

func GetProviderClient() *ProviderClient {
	if providerClient == nil {
		providerClient = NewProviderClient(GetCredentialService())
	}
	return providerClient
}

func NewProviderClient(creds CredentialSource) *ProviderClient {
	return &ProviderClient{
		httpClient:  &http.Client{},
		credentials: creds,
	}
}

// PlaceResult reports how a submission attempt ended.
type PlaceResult struct {
	Placed    bool
	Message   string
	Submitted models.Selection
	Service   *models.ServiceRecord
	RawReply  []byte
}

type placeReply struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// PlaceOrder drives one submission attempt for a customer session:
// re-validate, resolve configuration and credential, then exactly one POST
// to the provider. On success the per-order draft fields reset; the
// category and service stay selected. Transport failures never propagate,
// they become a notification.
func (p *ProviderClient) PlaceOrder(ctx context.Context, customerID uuid.UUID, sess *selection.Session, records []models.ServiceRecord) PlaceResult {
	draft := sess.Snapshot()
	svc := selection.ActiveService(draft, records)
	result := PlaceResult{Submitted: draft, Service: svc}

	if msg := selection.Validate(draft, svc); msg != "" {
		sess.Notices().Show(models.NoteError, msg)
		result.Message = msg
		return result
	}

	sess.Notices().Show(models.NoteInfo, "Placing your order...")

	base := config.ProviderAPIBase()
	if base == "" {
		result.Message = "Provider API base is not configured."
		sess.Notices().Show(models.NoteError, result.Message)
		return result
	}

	credential, err := p.credentials.ProviderKey(ctx, customerID)
	if err != nil {
		result.Message = err.Error()
		sess.Notices().Show(models.NoteError, result.Message)
		return result
	}
	if credential == "" {
		result.Message = "You must sign in first."
		sess.Notices().Show(models.NoteError, result.Message)
		return result
	}

	link := strings.TrimSpace(draft.Link)
	result.Submitted.Link = link
	payload := map[string]any{
		"provider_service_id": numericID(svc.ProviderServiceID),
		"link":                link,
		"quantity":            draft.Quantity,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		result.Message = err.Error()
		sess.Notices().Show(models.NoteError, result.Message)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+placeOrderPath, bytes.NewBuffer(body))
	if err != nil {
		result.Message = err.Error()
		sess.Notices().Show(models.NoteError, result.Message)
		return result
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", credential))
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[provider] order request failed: %v", err)
		result.Message = err.Error()
		sess.Notices().Show(models.NoteError, result.Message)
		return result
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[provider] reading reply failed: %v", err)
		result.Message = err.Error()
		sess.Notices().Show(models.NoteError, result.Message)
		return result
	}
	result.RawReply = raw

	// A reply that is not valid JSON is treated as an empty object, not as
	// a fatal error; classification then falls through to the fallback.
	var reply placeReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		reply = placeReply{}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && reply.OK {
		sess.FinishSubmission()
		result.Placed = true
		result.Message = "Order placed successfully."
		sess.Notices().Show(models.NoteSuccess, result.Message)
		return result
	}

	result.Message = reply.Message
	if result.Message == "" {
		result.Message = genericOrderFailure
	}
	log.Printf("[provider] order rejected (status %d)", resp.StatusCode)
	sess.Notices().Show(models.NoteError, result.Message)
	return result
}

// numericID sends numeric-looking provider ids as JSON numbers, matching
// what the provider expects, and falls back to the raw string for the
// occasional non-numeric id.
func numericID(id string) any {
	if f, err := strconv.ParseFloat(id, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return id
}

package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingEsimAPIURL = errors.New("missing ESIM_API_URL")
var ErrMissingEsimAPIKey = errors.New("missing ESIM_API_KEY")
var ErrEsimGatewayNotConfigured = errors.New("esim gateway not configured")
var ErrEsimProviderUnauthorized = errors.New("esim provider unauthorized")
var ErrEsimProviderNotFound = errors.New("esim provider resource not found")
var ErrEsimProviderBadRequest = errors.New("esim provider rejected the request")

const requestTimeout = 15 * time.Second

// EsimAPIGateway is the REST client for the eSIM provisioning provider.
//
// Mock mode (ESIM_GATEWAY_MOCK) synthesizes customers, eSIMs and top-ups in
// memory so the full order flow can run without provider credentials.

type EsimAPIGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mockMode  bool
	mu        sync.Mutex
	mockEsims map[string][]entities.Esim // customer id -> esims
}

var _ interfaces.IProvisioningProvider = (*EsimAPIGateway)(nil)

func NewEsimAPIGateway(baseURL, apiKey string) (*EsimAPIGateway, error) {
	if isEsimGatewayMockEnabled() {
		log.Printf("[provisioning][gateway] mock mode enabled")
		return &EsimAPIGateway{mockMode: true, mockEsims: map[string][]entities.Esim{}}, nil
	}

	if strings.TrimSpace(baseURL) == "" {
		log.Printf("[provisioning][gateway] missing ESIM_API_URL")
		return nil, ErrMissingEsimAPIURL
	}
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[provisioning][gateway] missing ESIM_API_KEY")
		return nil, ErrMissingEsimAPIKey
	}
	log.Printf("[provisioning][gateway] client initialized")

	return &EsimAPIGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

type customerPayload struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CountryCode string `json:"country_code"`
	Reference   string `json:"reference,omitempty"`
}

func (g *EsimAPIGateway) CreateCustomer(ctx context.Context, profile entities.CustomerProfile, traceTag string) (string, error) {
	if g != nil && g.mockMode {
		id := "mock-cust-" + uuid.NewString()
		log.Printf("[provisioning][gateway] mock customer created id=%s email=%s", id, profile.Email)
		return id, nil
	}
	if g == nil || g.httpClient == nil {
		return "", ErrEsimGatewayNotConfigured
	}
	log.Printf("[provisioning][gateway] create customer start email=%s ref=%s", profile.Email, traceTag)

	var resp struct {
		ID string `json:"id"`
	}
	err := g.do(ctx, http.MethodPost, "/customers", customerPayload{
		Email:       profile.Email,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		CountryCode: profile.CountryCode,
		Reference:   traceTag,
	}, &resp)
	if err != nil {
		log.Printf("[provisioning][gateway] create customer failed email=%s err=%v", profile.Email, err)
		return "", err
	}
	log.Printf("[provisioning][gateway] create customer success id=%s", resp.ID)

	return resp.ID, nil
}

func (g *EsimAPIGateway) CreateEsim(ctx context.Context, planID, customerID, traceTag string) (entities.CreatedEsim, error) {
	if g != nil && g.mockMode {
		created := mockCreatedEsim()
		g.mu.Lock()
		g.mockEsims[customerID] = append(g.mockEsims[customerID], entities.Esim{
			ICCID:           created.ICCID,
			ProviderAssetID: created.ProviderAssetID,
			State:           entities.EsimStateActive,
			Plans:           []entities.Plan{{PlanTypeID: planID, QuotaBytes: 5 << 30, RemainingBytes: 5 << 30}},
		})
		g.mu.Unlock()
		log.Printf("[provisioning][gateway] mock esim created iccid=%s plan=%s", created.ICCID, planID)
		return created, nil
	}
	if g == nil || g.httpClient == nil {
		return entities.CreatedEsim{}, ErrEsimGatewayNotConfigured
	}
	log.Printf("[provisioning][gateway] create esim start plan=%s customer=%s ref=%s", planID, customerID, traceTag)

	var resp createdEsimPayload
	err := g.do(ctx, http.MethodPost, "/esims", map[string]string{
		"plan_id":     planID,
		"customer_id": customerID,
		"reference":   traceTag,
	}, &resp)
	if err != nil {
		log.Printf("[provisioning][gateway] create esim failed plan=%s customer=%s err=%v", planID, customerID, err)
		return entities.CreatedEsim{}, err
	}
	log.Printf("[provisioning][gateway] create esim success iccid=%s asset=%s", resp.ICCID, resp.ID)

	return resp.toEntity(), nil
}

func (g *EsimAPIGateway) GetCustomerEsims(ctx context.Context, customerID string) ([]entities.Esim, error) {
	if g != nil && g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		return append([]entities.Esim(nil), g.mockEsims[customerID]...), nil
	}
	if g == nil || g.httpClient == nil {
		return nil, ErrEsimGatewayNotConfigured
	}

	var resp struct {
		Esims []esimPayload `json:"esims"`
	}
	err := g.do(ctx, http.MethodGet, "/customers/"+customerID+"/esims", nil, &resp)
	if err != nil {
		return nil, err
	}

	esims := make([]entities.Esim, 0, len(resp.Esims))
	for _, e := range resp.Esims {
		esims = append(esims, e.toEntity())
	}
	return esims, nil
}

func (g *EsimAPIGateway) GetEsim(ctx context.Context, iccid string) (entities.Esim, error) {
	if g != nil && g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		for _, esims := range g.mockEsims {
			for _, e := range esims {
				if e.ICCID == iccid {
					return e, nil
				}
			}
		}
		return entities.Esim{}, ErrEsimProviderNotFound
	}
	if g == nil || g.httpClient == nil {
		return entities.Esim{}, ErrEsimGatewayNotConfigured
	}

	var resp esimPayload
	if err := g.do(ctx, http.MethodGet, "/esims/"+iccid, nil, &resp); err != nil {
		return entities.Esim{}, err
	}
	return resp.toEntity(), nil
}

func (g *EsimAPIGateway) GetEsimPlans(ctx context.Context, iccid string) ([]entities.Plan, error) {
	if g != nil && g.mockMode {
		esim, err := g.GetEsim(ctx, iccid)
		if err != nil {
			return nil, err
		}
		return esim.Plans, nil
	}
	if g == nil || g.httpClient == nil {
		return nil, ErrEsimGatewayNotConfigured
	}

	var resp struct {
		Plans []planPayload `json:"plans"`
	}
	if err := g.do(ctx, http.MethodGet, "/esims/"+iccid+"/plans", nil, &resp); err != nil {
		return nil, err
	}

	plans := make([]entities.Plan, 0, len(resp.Plans))
	for _, p := range resp.Plans {
		plans = append(plans, p.toEntity())
	}
	return plans, nil
}

func (g *EsimAPIGateway) CreateTopUp(ctx context.Context, iccid, planTypeID string) (entities.Plan, error) {
	if g != nil && g.mockMode {
		now := time.Now().UTC()
		log.Printf("[provisioning][gateway] mock topup applied iccid=%s plan_type=%s", iccid, planTypeID)
		return entities.Plan{PlanTypeID: planTypeID, QuotaBytes: 5 << 30, RemainingBytes: 5 << 30, StartAt: &now}, nil
	}
	if g == nil || g.httpClient == nil {
		return entities.Plan{}, ErrEsimGatewayNotConfigured
	}
	log.Printf("[provisioning][gateway] topup start iccid=%s plan_type=%s", iccid, planTypeID)

	var resp planPayload
	err := g.do(ctx, http.MethodPost, "/esims/"+iccid+"/topups", map[string]string{"plan_type_id": planTypeID}, &resp)
	if err != nil {
		log.Printf("[provisioning][gateway] topup failed iccid=%s err=%v", iccid, err)
		return entities.Plan{}, err
	}
	log.Printf("[provisioning][gateway] topup success iccid=%s plan_type=%s", iccid, resp.PlanTypeID)

	return resp.toEntity(), nil
}

type createdEsimPayload struct {
	ID             string `json:"id"`
	ICCID          string `json:"iccid"`
	ActivationCode string `json:"activation_code"`
	ManualCode     string `json:"manual_code"`
	SMDPAddress    string `json:"smdp_address"`
	APN            string `json:"apn"`
}

func (p createdEsimPayload) toEntity() entities.CreatedEsim {
	return entities.CreatedEsim{
		ProviderAssetID: p.ID,
		ICCID:           p.ICCID,
		ActivationCode:  p.ActivationCode,
		ManualCode:      p.ManualCode,
		SMDPAddress:     p.SMDPAddress,
		APN:             p.APN,
	}
}

type esimPayload struct {
	ID    string        `json:"id"`
	ICCID string        `json:"iccid"`
	State string        `json:"state"`
	Plans []planPayload `json:"plans"`
}

func (p esimPayload) toEntity() entities.Esim {
	esim := entities.Esim{
		ICCID:           p.ICCID,
		ProviderAssetID: p.ID,
		State:           entities.EsimState(p.State),
	}
	for _, plan := range p.Plans {
		esim.Plans = append(esim.Plans, plan.toEntity())
	}
	return esim
}

type planPayload struct {
	PlanTypeID     string     `json:"plan_type_id"`
	QuotaBytes     int64      `json:"quota_bytes"`
	RemainingBytes int64      `json:"remaining_bytes"`
	ActivatedAt    *time.Time `json:"activated_at"`
	StartAt        *time.Time `json:"start_at"`
	NetworkStatus  string     `json:"network_status"`
}

func (p planPayload) toEntity() entities.Plan {
	return entities.Plan{
		PlanTypeID:     p.PlanTypeID,
		QuotaBytes:     p.QuotaBytes,
		RemainingBytes: p.RemainingBytes,
		ActivatedAt:    p.ActivatedAt,
		StartAt:        p.StartAt,
		NetworkStatus:  p.NetworkStatus,
	}
}

func mockCreatedEsim() entities.CreatedEsim {
	iccid := "8944" + strings.ReplaceAll(uuid.NewString(), "-", "")[:15]
	return entities.CreatedEsim{
		ProviderAssetID: "mock-esim-" + uuid.NewString(),
		ICCID:           iccid,
		ActivationCode:  "LPA:1$mock.smdp.example$" + uuid.NewString(),
		ManualCode:      uuid.NewString(),
		SMDPAddress:     "mock.smdp.example",
		APN:             "internet",
	}
}

func (g *EsimAPIGateway) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrEsimProviderUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrEsimProviderNotFound
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrEsimProviderBadRequest, truncate(raw, 256))
	default:
		return fmt.Errorf("esim provider returned status %d: %s", resp.StatusCode, truncate(raw, 256))
	}

	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func isEsimGatewayMockEnabled() bool {
	for _, key := range []string{"ESIM_GATEWAY_MOCK", "PROVISIONING_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("monto inválido")

// PaymentIntent is everything the rest of the system is allowed to know
// about the payment provider: an id to store on the order and a client
// secret for the storefront card form.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// PaymentProvider creates card payment intents. The provider's wire details
// never leak past this interface.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error)
}

// ----- Stripe -----

// StripeProvider posts to the payment_intents endpoint with amounts in
// cents, the way the card provider expects them.
type StripeProvider struct {
	SecretKey string
	BaseURL   string
	Client    *http.Client
}

func NewStripeProvider(secretKey string) *StripeProvider {
	return &StripeProvider{
		SecretKey: secretKey,
		BaseURL:   "https://api.stripe.com/v1",
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(cents, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		if apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe: unexpected status %d", res.StatusCode)
	}

	var body struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &PaymentIntent{ID: body.ID, ClientSecret: body.ClientSecret}, nil
}

// ----- Offline mock -----

// MockProvider stands in when no STRIPE_SECRET_KEY is configured (local dev,
// tests). Intents are fabricated but shaped like the real thing.
type MockProvider struct{}

func (MockProvider) CreateIntent(_ context.Context, amount decimal.Decimal, _ string) (*PaymentIntent, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	id := "pi_mock_" + uuid.NewString()
	return &PaymentIntent{ID: id, ClientSecret: id + "_secret_" + uuid.NewString()}, nil
}

package payments

import (
	"context"
	"errors"
	"fmt"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/pkg/utils"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

var (
	ErrMissingSecretKey = errors.New("missing STRIPE_SECRET_KEY")

	// ErrPaymentSetup wraps processor failures. Callers surface it as a
	// user-facing failure without creating a booking record.
	ErrPaymentSetup = errors.New("payment setup failed")
)

// IntentRequest carries the customer metadata attached to a deposit charge.
type IntentRequest struct {
	Service       entity.ServiceType
	CustomerName  string
	CustomerEmail string
}

// Intent is the processor's authorization handle. Amount is the deposit in
// whole dollars; the client confirms the charge with ClientSecret.
type Intent struct {
	ClientSecret string
	Amount       int
}

// Gateway abstracts the external payment processor.
type Gateway interface {
	CreateDepositIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

type StripeGateway struct {
	sc  *client.API
	log *zap.Logger
}

func NewStripeGateway(secretKey string, log *zap.Logger) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	return &StripeGateway{
		sc:  client.New(secretKey, nil),
		log: log.With(zap.String("gateway", "stripe")),
	}, nil
}

func (g *StripeGateway) CreateDepositIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	pricing, err := entity.LookupPrice(req.Service)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(pricing.Deposit) * 100), // minor units
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.SetIdempotencyKey(utils.GenerateIdempotencyKey())
	params.AddMetadata("service", string(req.Service))
	params.AddMetadata("customerName", req.CustomerName)
	params.AddMetadata("customerEmail", req.CustomerEmail)
	params.AddMetadata("type", "deposit")

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		g.log.Error("Payment intent creation failed",
			zap.Error(err),
			zap.String("service", string(req.Service)),
		)
		return nil, fmt.Errorf("%w: %v", ErrPaymentSetup, err)
	}

	g.log.Info("Payment intent created",
		zap.String("intent_id", pi.ID),
		zap.String("service", string(req.Service)),
		zap.Int("deposit", pricing.Deposit),
	)

	return &Intent{
		ClientSecret: pi.ClientSecret,
		Amount:       pricing.Deposit,
	}, nil
}

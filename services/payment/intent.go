package payment

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// CreateIntent asks Stripe for a payment intent over the given price (major
// currency units) and returns its client secret. The processor is opaque
// beyond this call; completion happens client-side.
func (s *DefaultPaymentService) CreateIntent(price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return "", fmt.Errorf("invalid payment amount: %v", price)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

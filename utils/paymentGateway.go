package utils

import (
	"fmt"
	"lms/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// GatewayClient talks to the external payment gateway. It implements
// services.PaymentVerifier.
type GatewayClient struct {
	client *resty.Client
}

func NewGatewayClient() *GatewayClient {
	client := resty.New().
		SetBaseURL(config.AppConfig.PaymentApiURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &GatewayClient{client: client}
}

// VerifyPayment asks the gateway whether the payment behind the reference was
// captured for the expected amount.
func (g *GatewayClient) VerifyPayment(reference string, amount float64) error {
	var result struct {
		Status string  `json:"status"`
		Amount float64 `json:"amount"`
	}

	resp, err := g.client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentApiKey).
		SetQueryParam("reference", reference).
		SetResult(&result).
		Get("payments/verify")
	if err != nil {
		log.Printf("[PAYMENT] Gateway verify call failed for %s: %v", reference, err)
		return fmt.Errorf("payment gateway unreachable: %w", err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("[PAYMENT] Gateway rejected %s: %d %s", reference, resp.StatusCode(), resp.String())
		return fmt.Errorf("payment gateway returned status %d", resp.StatusCode())
	}
	if result.Status != "CAPTURED" {
		return fmt.Errorf("payment not captured, status %q", result.Status)
	}
	if result.Amount < amount {
		return fmt.Errorf("captured amount %.2f is below the course price %.2f", result.Amount, amount)
	}
	return nil
}

package controllers

import (
	"errors"

	"github.com/Eduardo-pena2000/parmesana-web-app/pkg/resp"
	"github.com/Eduardo-pena2000/parmesana-web-app/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentController struct {
	Provider services.PaymentProvider
	Currency string
}

func NewPaymentController(provider services.PaymentProvider, currency string) *PaymentController {
	return &PaymentController{Provider: provider, Currency: currency}
}

// POST /api/payments/create-payment-intent
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Amount   decimal.Decimal `json:"amount" binding:"required"`
		Currency string          `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = pc.Currency
	}

	intent, err := pc.Provider.CreateIntent(c.Request.Context(), req.Amount, currency)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"clientSecret": intent.ClientSecret, "id": intent.ID})
}

// File: services/payment/payment.go
package payment

import (
	"context"
	"fmt"
	"math"

	paymentRepo "consulta/database/repository/payment"
	"consulta/models"
	"consulta/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService tracks cobros: charges recorded against sessions.
type PaymentService interface {
	RecordCharge(ctx context.Context, p models.Payment) (*models.Payment, error)
	MarkPaid(ctx context.Context, paymentID string) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Payment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Payment, error)
	ListPending(ctx context.Context) ([]models.Payment, error)
	Delete(ctx context.Context, paymentID string) error
	// SettledIndex returns a settled-payment lookup snapshot for the
	// projector.
	SettledIndex(ctx context.Context, sessions []models.Session) (SettledIndex, error)
}

// SettledIndex records which session ids have a fully settled payment. It
// satisfies the projector's payment-status capability.
type SettledIndex map[string]bool

func (s SettledIndex) IsSettled(sessionID string) bool {
	return s[sessionID]
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo paymentRepo.PaymentRepository
}

// RecordCharge stores a pending cobro. Card charges also get a Stripe
// payment intent so the patient can pay online.
func (s *DefaultPaymentService) RecordCharge(ctx context.Context, p models.Payment) (*models.Payment, error) {
	if p.SessionID == "" {
		return nil, fmt.Errorf("payment needs a session id")
	}
	if p.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if p.Currency == "" {
		p.Currency = "eur"
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}

	if p.Method == models.PaymentMethodCard {
		intent, err := paymentintent.New(&stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(math.Round(p.Amount * 100))),
			Currency: stripe.String(p.Currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		p.StripeIntentID = intent.ID
		utils.GetLogger().Info("payment: created stripe intent",
			zap.String("sessionId", p.SessionID), zap.String("intentId", intent.ID))
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record charge: %w", err)
	}
	created := p
	return &created, nil
}

func (s *DefaultPaymentService) MarkPaid(ctx context.Context, paymentID string) error {
	return s.Repo.MarkPaid(ctx, paymentID)
}

func (s *DefaultPaymentService) ListBySession(ctx context.Context, sessionID string) ([]models.Payment, error) {
	return s.Repo.GetBySessionID(ctx, sessionID)
}

func (s *DefaultPaymentService) ListByPatient(ctx context.Context, patientID string) ([]models.Payment, error) {
	return s.Repo.GetByPatientID(ctx, patientID)
}

func (s *DefaultPaymentService) ListPending(ctx context.Context) ([]models.Payment, error) {
	return s.Repo.GetPending(ctx)
}

func (s *DefaultPaymentService) Delete(ctx context.Context, paymentID string) error {
	return s.Repo.Delete(ctx, paymentID)
}

// SettledIndex snapshots payment status for the given sessions. A session
// is settled when it has at least one paid cobro. Lookup failures degrade
// to "not settled" per session rather than failing the render.
func (s *DefaultPaymentService) SettledIndex(ctx context.Context, sessions []models.Session) (SettledIndex, error) {
	index := make(SettledIndex, len(sessions))
	for i := range sessions {
		payments, err := s.Repo.GetBySessionID(ctx, sessions[i].ID)
		if err != nil {
			utils.GetLogger().Warn("payment: settled lookup failed",
				zap.String("sessionId", sessions[i].ID), zap.Error(err))
			continue
		}
		for _, p := range payments {
			if p.Status == models.PaymentStatusPaid {
				index[sessions[i].ID] = true
				break
			}
		}
	}
	return index, nil
}

package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"os"
	"time"

	"frontera-be/internal/config"
	"frontera-be/internal/constant"
	"frontera-be/internal/dto"
	"frontera-be/internal/entity"
	"frontera-be/internal/pkg/logger"
	"frontera-be/internal/pkg/mailer"
	"frontera-be/internal/repository/specification"
	"frontera-be/internal/repository/unitofwork"
	"frontera-be/pkg/events"
	pkgNats "frontera-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IBillingService interface {
	CreateEnrollment(ctx context.Context, userId uuid.UUID, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentInvoiceResponse, error)
	GetMyInvoices(ctx context.Context, userId uuid.UUID) ([]*dto.EnrollmentInvoiceResponse, error)
	HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error
}

type billingService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pkgNats.Publisher
	cfg            config.BillingConfig
	log            logger.ILogger
}

func NewBillingService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pkgNats.Publisher,
	cfg config.BillingConfig,
	log logger.ILogger,
) IBillingService {
	return &billingService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		cfg:            cfg,
		log:            log,
	}
}

func toInvoiceResponse(inv *entity.EnrollmentInvoice) *dto.EnrollmentInvoiceResponse {
	return &dto.EnrollmentInvoiceResponse{
		Id:         inv.Id,
		OrderId:    inv.OrderId,
		Amount:     inv.Amount,
		Currency:   inv.Currency,
		Status:     string(inv.Status),
		PaymentURL: inv.PaymentURL,
		PaidAt:     inv.PaidAt,
		CreatedAt:  inv.CreatedAt,
	}
}

func (s *billingService) CreateEnrollment(ctx context.Context, userId uuid.UUID, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentInvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	app, err := uow.ApplicationRepository().FindOne(ctx,
		specification.ByID{ID: req.ApplicationId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("application not found")
	}
	if app.Status != entity.ApplicationStatusAccepted {
		return nil, errors.New("enrollment requires an accepted application")
	}

	existing, err := uow.InvoiceRepository().FindOne(ctx,
		specification.ByApplication{ApplicationID: app.Id},
		specification.ByStatus{Status: string(entity.InvoiceStatusPending)},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toInvoiceResponse(existing), nil
	}

	paid, err := uow.InvoiceRepository().FindOne(ctx,
		specification.ByApplication{ApplicationID: app.Id},
		specification.ByStatus{Status: string(entity.InvoiceStatusPaid)},
	)
	if err != nil {
		return nil, err
	}
	if paid != nil {
		return nil, errors.New("enrollment already paid")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	invoice := &entity.EnrollmentInvoice{
		Id:            uuid.New(),
		UserId:        userId,
		ApplicationId: app.Id,
		OrderId:       fmt.Sprintf("ENROLL-%s", uuid.New().String()),
		Amount:        s.cfg.EnrollmentFee,
		Currency:      s.cfg.Currency,
		Status:        entity.InvoiceStatusPending,
		CreatedAt:     time.Now(),
	}

	// Gateway calls stay outside the DB transaction.
	var sClient snap.Client
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(s.cfg.MidtransServerKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  invoice.OrderId,
			GrossAmt: invoice.Amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    app.Id.String(),
				Price: invoice.Amount,
				Qty:   1,
				Name:  "Frontera program enrollment",
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("payment gateway error: %v", midErr.GetMessage())
	}
	invoice.PaymentURL = snapResp.RedirectURL

	if err := uow.InvoiceRepository().Create(ctx, invoice); err != nil {
		return nil, err
	}

	go func(email, company, paymentURL string) {
		if emailErr := s.emailService.SendEnrollmentInvoice(email, company, paymentURL); emailErr != nil {
			fmt.Printf("Error sending enrollment invoice email: %v\n", emailErr)
		}
	}(user.Email, app.Profile.CompanyName, invoice.PaymentURL)

	return toInvoiceResponse(invoice), nil
}

func (s *billingService) GetMyInvoices(ctx context.Context, userId uuid.UUID) ([]*dto.EnrollmentInvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoices, err := uow.InvoiceRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EnrollmentInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, toInvoiceResponse(inv))
	}
	return result, nil
}

func (s *billingService) HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error {
	if s.cfg.MidtransServerKey == "" {
		return errors.New("payment gateway not configured")
	}

	// signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.cfg.MidtransServerKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.log.Warn(constant.ModuleBilling, "Webhook signature mismatch", map[string]interface{}{"order_id": req.OrderId})
		return errors.New("invalid signature")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByOrderId{OrderId: req.OrderId})
	if err != nil {
		return err
	}
	if invoice == nil {
		return errors.New("invoice not found")
	}

	var newStatus entity.InvoiceStatus
	switch req.TransactionStatus {
	case "capture", "settlement":
		newStatus = entity.InvoiceStatusPaid
	case "deny", "cancel":
		newStatus = entity.InvoiceStatusFailed
	case "expire":
		newStatus = entity.InvoiceStatusExpired
	case "pending":
		return nil
	default:
		return nil
	}

	if invoice.Status == newStatus {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	invoice.Status = newStatus
	now := time.Now()
	invoice.UpdatedAt = &now
	if newStatus == entity.InvoiceStatusPaid {
		invoice.PaidAt = &now
	}

	if err := uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return err
	}

	// Paid enrollment unlocks the coaching program.
	if newStatus == entity.InvoiceStatusPaid {
		if err := uow.UserRepository().UpdateStatus(ctx, invoice.UserId, string(entity.UserStatusActive)); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info(constant.ModuleBilling, "Invoice status updated", map[string]interface{}{
		"order_id": invoice.OrderId,
		"status":   string(invoice.Status),
	})

	if newStatus == entity.InvoiceStatusPaid && s.eventPublisher != nil {
		event := events.NewEnrollmentPaidEvent(invoice.OrderId, invoice.UserId.String(), invoice.Amount)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn(constant.ModuleBilling, "Failed to publish payment event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

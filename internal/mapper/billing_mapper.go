package mapper

import (
	"frontera-be/internal/entity"
	"frontera-be/internal/model"
)

type BillingMapper struct{}

func NewBillingMapper() *BillingMapper {
	return &BillingMapper{}
}

func (m *BillingMapper) InvoiceToEntity(i *model.EnrollmentInvoice) *entity.EnrollmentInvoice {
	if i == nil {
		return nil
	}
	return &entity.EnrollmentInvoice{
		Id:            i.Id,
		UserId:        i.UserId,
		ApplicationId: i.ApplicationId,
		OrderId:       i.OrderId,
		Amount:        i.Amount,
		Currency:      i.Currency,
		Status:        entity.InvoiceStatus(i.Status),
		PaymentURL:    i.PaymentURL,
		PaidAt:        i.PaidAt,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     updatedAtToPtr(i.UpdatedAt),
	}
}

func (m *BillingMapper) InvoiceToModel(i *entity.EnrollmentInvoice) *model.EnrollmentInvoice {
	if i == nil {
		return nil
	}
	return &model.EnrollmentInvoice{
		Id:            i.Id,
		UserId:        i.UserId,
		ApplicationId: i.ApplicationId,
		OrderId:       i.OrderId,
		Amount:        i.Amount,
		Currency:      i.Currency,
		Status:        string(i.Status),
		PaymentURL:    i.PaymentURL,
		PaidAt:        i.PaidAt,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     ptrToUpdatedAt(i.UpdatedAt),
	}
}

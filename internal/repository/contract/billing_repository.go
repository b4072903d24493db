package contract

import (
	"context"

	"frontera-be/internal/entity"
	"frontera-be/internal/repository/specification"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.EnrollmentInvoice) error
	Update(ctx context.Context, invoice *entity.EnrollmentInvoice) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EnrollmentInvoice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EnrollmentInvoice, error)
}

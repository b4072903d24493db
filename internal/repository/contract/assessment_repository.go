package contract

import (
	"context"

	"frontera-be/internal/entity"
	"frontera-be/internal/repository/specification"
)

type AssessmentRepository interface {
	Create(ctx context.Context, a *entity.Assessment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

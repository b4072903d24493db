package contract

import (
	"context"

	"frontera-be/internal/entity"
	"frontera-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StrategicBetRepository interface {
	Create(ctx context.Context, bet *entity.StrategicBet) error
	Update(ctx context.Context, bet *entity.StrategicBet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategicBet, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategicBet, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type StrategicThesisRepository interface {
	Create(ctx context.Context, thesis *entity.StrategicThesis) error
	Update(ctx context.Context, thesis *entity.StrategicThesis) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategicThesis, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategicThesis, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

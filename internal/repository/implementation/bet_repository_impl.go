package implementation

import (
	"context"
	"errors"

	"frontera-be/internal/entity"
	"frontera-be/internal/mapper"
	"frontera-be/internal/model"
	"frontera-be/internal/repository/contract"
	"frontera-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StrategicBetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BetMapper
}

func NewStrategicBetRepository(db *gorm.DB) contract.StrategicBetRepository {
	return &StrategicBetRepositoryImpl{
		db:     db,
		mapper: mapper.NewBetMapper(),
	}
}

func (r *StrategicBetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StrategicBetRepositoryImpl) Create(ctx context.Context, bet *entity.StrategicBet) error {
	m := r.mapper.BetToModel(bet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bet = *r.mapper.BetToEntity(m)
	return nil
}

func (r *StrategicBetRepositoryImpl) Update(ctx context.Context, bet *entity.StrategicBet) error {
	m := r.mapper.BetToModel(bet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*bet = *r.mapper.BetToEntity(m)
	return nil
}

func (r *StrategicBetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StrategicBet{}).Error
}

func (r *StrategicBetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategicBet, error) {
	var m model.StrategicBet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BetToEntity(&m), nil
}

func (r *StrategicBetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategicBet, error) {
	var models []*model.StrategicBet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.StrategicBet, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BetToEntity(m)
	}
	return entities, nil
}

func (r *StrategicBetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StrategicBet{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type StrategicThesisRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BetMapper
}

func NewStrategicThesisRepository(db *gorm.DB) contract.StrategicThesisRepository {
	return &StrategicThesisRepositoryImpl{
		db:     db,
		mapper: mapper.NewBetMapper(),
	}
}

func (r *StrategicThesisRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StrategicThesisRepositoryImpl) Create(ctx context.Context, thesis *entity.StrategicThesis) error {
	m := r.mapper.ThesisToModel(thesis)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*thesis = *r.mapper.ThesisToEntity(m)
	return nil
}

func (r *StrategicThesisRepositoryImpl) Update(ctx context.Context, thesis *entity.StrategicThesis) error {
	m := r.mapper.ThesisToModel(thesis)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*thesis = *r.mapper.ThesisToEntity(m)
	return nil
}

func (r *StrategicThesisRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StrategicThesis{}).Error
}

func (r *StrategicThesisRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategicThesis, error) {
	var m model.StrategicThesis
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ThesisToEntity(&m), nil
}

func (r *StrategicThesisRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategicThesis, error) {
	var models []*model.StrategicThesis
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.StrategicThesis, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ThesisToEntity(m)
	}
	return entities, nil
}

func (r *StrategicThesisRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StrategicThesis{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

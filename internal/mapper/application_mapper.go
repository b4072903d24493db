package mapper

import (
	"encoding/json"

	"frontera-be/internal/entity"
	"frontera-be/internal/model"
)

type ApplicationMapper struct{}

func NewApplicationMapper() *ApplicationMapper {
	return &ApplicationMapper{}
}

func (m *ApplicationMapper) ToEntity(a *model.Application) *entity.Application {
	if a == nil {
		return nil
	}

	var profile entity.ClientProfile
	if len(a.Profile) > 0 {
		_ = json.Unmarshal(a.Profile, &profile)
	}

	return &entity.Application{
		Id:          a.Id,
		UserId:      a.UserId,
		Status:      entity.ApplicationStatus(a.Status),
		Profile:     profile,
		ReviewNotes: a.ReviewNotes,
		ReviewedBy:  a.ReviewedBy,
		DecidedAt:   a.DecidedAt,
		SubmittedAt: a.SubmittedAt,
		UpdatedAt:   updatedAtToPtr(a.UpdatedAt),
		DeletedAt:   deletedAtToPtr(a.DeletedAt),
		IsDeleted:   a.DeletedAt.Valid,
	}
}

func (m *ApplicationMapper) ToModel(a *entity.Application) *model.Application {
	if a == nil {
		return nil
	}

	profile, _ := json.Marshal(a.Profile)

	return &model.Application{
		Id:          a.Id,
		UserId:      a.UserId,
		Status:      string(a.Status),
		Profile:     profile,
		ReviewNotes: a.ReviewNotes,
		ReviewedBy:  a.ReviewedBy,
		DecidedAt:   a.DecidedAt,
		SubmittedAt: a.SubmittedAt,
		UpdatedAt:   ptrToUpdatedAt(a.UpdatedAt),
		DeletedAt:   ptrToDeletedAt(a.DeletedAt, a.IsDeleted),
	}
}

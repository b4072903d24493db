package mapper

import (
	"encoding/json"

	"frontera-be/internal/entity"
	"frontera-be/internal/model"
	"frontera-be/pkg/coaching/assessment"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToEntity(a *model.Assessment) *entity.Assessment {
	if a == nil {
		return nil
	}

	var responses assessment.Responses
	if len(a.Responses) > 0 {
		_ = json.Unmarshal(a.Responses, &responses)
	}

	var result assessment.Result
	if len(a.Result) > 0 {
		_ = json.Unmarshal(a.Result, &result)
	}

	return &entity.Assessment{
		Id:          a.Id,
		UserId:      a.UserId,
		Responses:   responses,
		Result:      result,
		SubmittedAt: a.SubmittedAt,
	}
}

func (m *AssessmentMapper) ToModel(a *entity.Assessment) *model.Assessment {
	if a == nil {
		return nil
	}

	responses, _ := json.Marshal(a.Responses)
	result, _ := json.Marshal(a.Result)

	return &model.Assessment{
		Id:          a.Id,
		UserId:      a.UserId,
		Responses:   responses,
		Result:      result,
		SubmittedAt: a.SubmittedAt,
	}
}

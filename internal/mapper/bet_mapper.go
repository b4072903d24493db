package mapper

import (
	"encoding/json"

	"frontera-be/internal/entity"
	"frontera-be/internal/model"
)

type BetMapper struct{}

func NewBetMapper() *BetMapper {
	return &BetMapper{}
}

func (m *BetMapper) BetToEntity(b *model.StrategicBet) *entity.StrategicBet {
	if b == nil {
		return nil
	}

	var scores entity.BetScores
	if len(b.Scores) > 0 {
		_ = json.Unmarshal(b.Scores, &scores)
	}

	var links []string
	if len(b.EvidenceLinks) > 0 {
		_ = json.Unmarshal(b.EvidenceLinks, &links)
	}

	var risks entity.StrategicRisks
	if len(b.Risks) > 0 {
		_ = json.Unmarshal(b.Risks, &risks)
	}

	return &entity.StrategicBet{
		Id:            b.Id,
		UserId:        b.UserId,
		JobToBeDone:   b.JobToBeDone,
		Belief:        b.Belief,
		Bet:           b.Bet,
		SuccessMetric: b.SuccessMetric,
		KillCriteria:  b.KillCriteria,
		KillDate:      b.KillDate,
		Scores:        scores,
		EvidenceLinks: links,
		Risks:         risks,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     updatedAtToPtr(b.UpdatedAt),
		DeletedAt:     deletedAtToPtr(b.DeletedAt),
		IsDeleted:     b.DeletedAt.Valid,
	}
}

func (m *BetMapper) BetToModel(b *entity.StrategicBet) *model.StrategicBet {
	if b == nil {
		return nil
	}

	scores, _ := json.Marshal(b.Scores)
	links, _ := json.Marshal(b.EvidenceLinks)
	risks, _ := json.Marshal(b.Risks)

	return &model.StrategicBet{
		Id:            b.Id,
		UserId:        b.UserId,
		JobToBeDone:   b.JobToBeDone,
		Belief:        b.Belief,
		Bet:           b.Bet,
		SuccessMetric: b.SuccessMetric,
		KillCriteria:  b.KillCriteria,
		KillDate:      b.KillDate,
		Scores:        scores,
		EvidenceLinks: links,
		Risks:         risks,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     ptrToUpdatedAt(b.UpdatedAt),
		DeletedAt:     ptrToDeletedAt(b.DeletedAt, b.IsDeleted),
	}
}

func (m *BetMapper) ThesisToEntity(t *model.StrategicThesis) *entity.StrategicThesis {
	if t == nil {
		return nil
	}
	return &entity.StrategicThesis{
		Id:          t.Id,
		UserId:      t.UserId,
		Statement:   t.Statement,
		WhereToPlay: t.WhereToPlay,
		HowToWin:    t.HowToWin,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAtToPtr(t.UpdatedAt),
		DeletedAt:   deletedAtToPtr(t.DeletedAt),
		IsDeleted:   t.DeletedAt.Valid,
	}
}

func (m *BetMapper) ThesisToModel(t *entity.StrategicThesis) *model.StrategicThesis {
	if t == nil {
		return nil
	}
	return &model.StrategicThesis{
		Id:          t.Id,
		UserId:      t.UserId,
		Statement:   t.Statement,
		WhereToPlay: t.WhereToPlay,
		HowToWin:    t.HowToWin,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   ptrToUpdatedAt(t.UpdatedAt),
		DeletedAt:   ptrToDeletedAt(t.DeletedAt, t.IsDeleted),
	}
}

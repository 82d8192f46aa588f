package storage

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narasux/chemreact/pkg/loader"
	"github.com/narasux/chemreact/pkg/logging"
	"github.com/narasux/chemreact/pkg/model"
)

var Catalog *model.Catalog

var initOnce sync.Once

// InitCatalog 加载并初始化种子数据
func InitCatalog() {
	if Catalog != nil {
		return
	}
	initOnce.Do(func() {
		var err error
		if Catalog, err = loader.NewDefault().Exec(); err != nil {
			panic(err)
		}
	})
}

// SeedStat 单类数据的写入统计
type SeedStat struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// SeedResult 种子数据写入结果
type SeedResult struct {
	Elements  SeedStat `json:"elements"`
	Molecules SeedStat `json:"molecules"`
	Reactions SeedStat `json:"reactions"`
}

// SeedCatalog 将种子数据写入数据库（幂等）：
// 元素按原子序数、分子按化学式、反应按方程式匹配已有记录，存在则更新，否则创建
func SeedCatalog(ctx context.Context, db *gorm.DB, catalog *model.Catalog) (SeedResult, error) {
	result := SeedResult{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range catalog.Elements {
			created, err := seedElement(tx, e)
			if err != nil {
				return errors.Wrapf(err, "seed element %s", e.Symbol)
			}
			result.Elements.count(created)
		}
		for _, m := range catalog.Molecules {
			created, err := seedMolecule(tx, m)
			if err != nil {
				return errors.Wrapf(err, "seed molecule %s", m.Formula)
			}
			result.Molecules.count(created)
		}
		for _, r := range catalog.Reactions {
			created, err := seedReaction(tx, r)
			if err != nil {
				return errors.Wrapf(err, "seed reaction %s", r.Equation)
			}
			result.Reactions.count(created)
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	logging.GetSystemLogger().Infof(
		"catalog seeded: elements %+v, molecules %+v, reactions %+v",
		result.Elements, result.Molecules, result.Reactions,
	)
	return result, nil
}

func (s *SeedStat) count(created bool) {
	if created {
		s.Created++
	} else {
		s.Updated++
	}
}

func seedElement(tx *gorm.DB, e model.Element) (bool, error) {
	var existing model.Element
	err := tx.Where("atomic_number = ?", e.AtomicNumber).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, tx.Create(&e).Error
	} else if err != nil {
		return false, err
	}
	e.CreatedAt = existing.CreatedAt
	return false, tx.Save(&e).Error
}

func seedMolecule(tx *gorm.DB, m model.Molecule) (bool, error) {
	var existing model.Molecule
	err := tx.Where("formula = ?", m.Formula).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m.ID = 0
		return true, tx.Create(&m).Error
	} else if err != nil {
		return false, err
	}
	m.ID, m.CreatedAt = existing.ID, existing.CreatedAt
	return false, tx.Save(&m).Error
}

// 反应的参与物质整体替换
func seedReaction(tx *gorm.DB, r model.Reaction) (bool, error) {
	participants := make([]model.ReactionParticipant, len(r.Participants))
	copy(participants, r.Participants)
	r.Participants = nil

	var existing model.Reaction
	err := tx.Where("equation = ?", r.Equation).Take(&existing).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	switch {
	case created:
		r.ID = 0
		if err = tx.Omit(clause.Associations).Create(&r).Error; err != nil {
			return false, err
		}
	case err != nil:
		return false, err
	default:
		r.ID, r.CreatedAt = existing.ID, existing.CreatedAt
		if err = tx.Omit(clause.Associations).Save(&r).Error; err != nil {
			return false, err
		}
		if err = tx.Where("reaction_id = ?", r.ID).Delete(&model.ReactionParticipant{}).Error; err != nil {
			return false, err
		}
	}

	if len(participants) == 0 {
		return created, nil
	}
	for idx := range participants {
		participants[idx].ID = 0
		participants[idx].ReactionID = r.ID
	}
	return created, tx.Create(&participants).Error
}

package repositoryImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"

	"traza/database"
	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/lot/repository"
)

type LotRepoSuite struct {
	suite.Suite
	ctx  context.Context
	repo repository.LotRepository
}

func TestLotRepoSuite(t *testing.T) {
	suite.Run(t, new(LotRepoSuite))
}

func (s *LotRepoSuite) SetupTest() {
	db, err := database.OpenSQLite(":memory:")
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.repo = New(db)
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func (s *LotRepoSuite) create(code string, harvest datatypes.Date) *entities.Lot {
	l := &entities.Lot{Code: code, SowingDate: day(2024, 1, 1), HarvestDate: harvest}
	s.Require().NoError(s.repo.Create(s.ctx, l))
	return l
}

func (s *LotRepoSuite) TestFindByIDNotFound() {
	_, err := s.repo.FindByID(s.ctx, 42)
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *LotRepoSuite) TestListOrdersByHarvestThenID() {
	a := s.create("A", day(2024, 6, 1))
	b := s.create("B", day(2024, 7, 1))
	c := s.create("C", day(2024, 6, 1))

	out, err := s.repo.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(out, 3)
	s.Equal([]uint{b.LotID, c.LotID, a.LotID}, []uint{out[0].LotID, out[1].LotID, out[2].LotID})
}

func (s *LotRepoSuite) TestExistsCodeAndFindByCode() {
	s.create("CODE-1", day(2024, 6, 1))

	ok, err := s.repo.ExistsCode(s.ctx, "CODE-1")
	s.Require().NoError(err)
	s.True(ok)
	ok, err = s.repo.ExistsCode(s.ctx, "CODE-2")
	s.Require().NoError(err)
	s.False(ok)

	l, err := s.repo.FindByCode(s.ctx, "CODE-1")
	s.Require().NoError(err)
	s.Equal("CODE-1", l.Code)
	_, err = s.repo.FindByCode(s.ctx, "CODE-2")
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *LotRepoSuite) TestUniqueCode() {
	s.create("DUP", day(2024, 6, 1))
	err := s.repo.Create(s.ctx, &entities.Lot{Code: "DUP", SowingDate: day(2024, 1, 1), HarvestDate: day(2024, 6, 1)})
	s.Error(err)
}

func (s *LotRepoSuite) TestDeleteMissing() {
	s.ErrorIs(s.repo.Delete(s.ctx, 7), apperr.ErrNotFound)
}

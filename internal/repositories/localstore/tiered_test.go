package localstore_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errUnavailable = errors.New("connection refused")

type TieredStoreTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockShared *mocks.MockStore
	mr         *miniredis.Miniredis
	client     *redis.Client
	shared     localstore.Store
	local      localstore.Store
	store      localstore.Store
}

func (s *TieredStoreTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockShared = mocks.NewMockStore(s.mockCtrl)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	shared, err := localstore.NewRedis(&localstore.RedisConfig{RedisClient: s.client})
	s.Require().NoError(err)
	s.shared = shared
	s.local = localstore.NewMemory()

	store, err := localstore.NewTiered(&localstore.TieredConfig{
		Shared: s.shared,
		Local:  s.local,
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *TieredStoreTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestTieredStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TieredStoreTestSuite))
}

func (s *TieredStoreTestSuite) withFailingShared() localstore.Store {
	store, err := localstore.NewTiered(&localstore.TieredConfig{
		Shared: s.mockShared,
		Local:  s.local,
	})
	s.Require().NoError(err)
	return store
}

func (s *TieredStoreTestSuite) TestNewTieredValidatesConfig() {
	_, err := localstore.NewTiered(nil)
	s.Error(err)

	_, err = localstore.NewTiered(&localstore.TieredConfig{Local: s.local})
	s.Error(err)

	_, err = localstore.NewTiered(&localstore.TieredConfig{Shared: s.shared})
	s.Error(err)
}

func (s *TieredStoreTestSuite) TestSetWritesBothStores() {
	s.Require().NoError(s.store.Set(localstore.KeyCompetitionEndsAt, "1745150400000"))

	v, ok, err := s.shared.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("1745150400000", v)

	v, ok, err = s.local.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("1745150400000", v)
}

func (s *TieredStoreTestSuite) TestGetPrefersSharedAndMirrors() {
	s.Require().NoError(s.local.Set(localstore.KeyCompetitionEndsAt, "1"))
	s.Require().NoError(s.shared.Set(localstore.KeyCompetitionEndsAt, "2"))

	v, ok, err := s.store.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("2", v)

	v, _, err = s.local.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.Equal("2", v)
}

func (s *TieredStoreTestSuite) TestGetMirrorsSharedDelete() {
	s.Require().NoError(s.local.Set(localstore.KeyCompetitionEndsAt, "1"))

	_, ok, err := s.store.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.False(ok)

	_, ok, err = s.local.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *TieredStoreTestSuite) TestGetFallsBackToLocal() {
	s.Require().NoError(s.local.Set(localstore.KeyCompetitionEndsAt, "1745150400000"))
	s.mockShared.EXPECT().Get(localstore.KeyCompetitionEndsAt).Return("", false, errUnavailable)

	v, ok, err := s.withFailingShared().Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("1745150400000", v)
}

func (s *TieredStoreTestSuite) TestSetSucceedsLocallyWhenSharedFails() {
	s.mockShared.EXPECT().Set(localstore.KeyCompetitionEndsAt, "42").Return(errUnavailable)

	s.Require().NoError(s.withFailingShared().Set(localstore.KeyCompetitionEndsAt, "42"))

	v, ok, err := s.local.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("42", v)
}

func (s *TieredStoreTestSuite) TestDeleteSucceedsLocallyWhenSharedFails() {
	s.Require().NoError(s.local.Set(localstore.KeyCompetitionEndsAt, "42"))
	s.mockShared.EXPECT().Delete(localstore.KeyCompetitionEndsAt).Return(errUnavailable)

	s.Require().NoError(s.withFailingShared().Delete(localstore.KeyCompetitionEndsAt))

	_, ok, err := s.local.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *TieredStoreTestSuite) TestSurvivesRedisOutage() {
	s.Require().NoError(s.store.Set(localstore.KeyCompetitionEndsAt, "7"))
	s.mr.Close()

	v, ok, err := s.store.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("7", v)
}

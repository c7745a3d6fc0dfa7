//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/commands"
	"tablebook/tests/common/builder"
	commandsmock "tablebook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *commandsmock.MockReservationRepository
	mockFeed *commandsmock.MockChangeFeedPublisher
	commands commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockFeed = commandsmock.NewMockChangeFeedPublisher(s.mockCtrl)
	s.commands = commands.NewReservationCommands(s.mockRepo, s.mockFeed)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationCommandsTestSuite) TestBook() {
	s.Run("persists and publishes", func() {
		b := builder.NewReservationBuilder()
		view := b.BuildView()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil)
		s.mockFeed.EXPECT().PublishInserted(gomock.Any(), view).Return(nil)

		got, err := s.commands.Book(context.Background(), b.BuildParams())
		require.NoError(s.T(), err)
		assert.Equal(s.T(), view.ID, got.ID)
	})

	s.Run("invalid window", func() {
		params := builder.NewReservationBuilder().BuildParams()
		params.End = params.Start

		_, err := s.commands.Book(context.Background(), params)
		assert.ErrorIs(s.T(), err, commands.ErrDomainValidation)
	})

	s.Run("domain validation failure", func() {
		params := builder.NewReservationBuilder().WithGuests(0).BuildParams()

		_, err := s.commands.Book(context.Background(), params)
		assert.ErrorIs(s.T(), err, commands.ErrDomainValidation)
	})

	s.Run("slot taken by a concurrent booking", func() {
		b := builder.NewReservationBuilder()
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("overlapping reservation", nil, infra.KindConflict))

		_, err := s.commands.Book(context.Background(), b.BuildParams())
		assert.ErrorIs(s.T(), err, commands.ErrReservationConflict)
	})

	s.Run("storage failure", func() {
		b := builder.NewReservationBuilder()
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", assert.AnError, infra.KindDBFailure))

		_, err := s.commands.Book(context.Background(), b.BuildParams())
		assert.ErrorIs(s.T(), err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("feed failure does not fail the booking", func() {
		b := builder.NewReservationBuilder()
		view := b.BuildView()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil)
		s.mockFeed.EXPECT().PublishInserted(gomock.Any(), view).Return(assert.AnError)

		got, err := s.commands.Book(context.Background(), b.BuildParams())
		require.NoError(s.T(), err)
		assert.NotNil(s.T(), got)
	})
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("deletes and publishes", func() {
		s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		s.mockFeed.EXPECT().PublishDeleted(gomock.Any(), id).Return(nil)

		err := s.commands.Cancel(context.Background(), id)
		assert.NoError(s.T(), err)
	})

	s.Run("unknown reservation", func() {
		s.mockRepo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := s.commands.Cancel(context.Background(), id)
		assert.ErrorIs(s.T(), err, commands.ErrReservationNotFound)
	})

	s.Run("feed failure does not fail the cancel", func() {
		s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		s.mockFeed.EXPECT().PublishDeleted(gomock.Any(), id).Return(assert.AnError)

		err := s.commands.Cancel(context.Background(), id)
		assert.NoError(s.T(), err)
	})
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

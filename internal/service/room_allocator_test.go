package service

import (
	"errors"
	"testing"

	"healthcare-qms/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindByID(db *gorm.DB, id uint) (*entity.Room, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAll(db *gorm.DB, departmentID *uint) ([]entity.Room, error) {
	args := m.Called(db, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAvailable(db *gorm.DB, departmentID *uint) ([]entity.Room, error) {
	args := m.Called(db, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Room), args.Error(1)
}

func (m *MockRoomRepository) MarkOccupied(db *gorm.DB, id uint, occupantType entity.OccupantType, occupantID uint) (int64, error) {
	args := m.Called(db, id, occupantType, occupantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) MarkReleased(db *gorm.DB, id uint) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAllocator(repo *MockRoomRepository) *RoomAllocator {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewRoomAllocator(log, repo)
}

func TestRoomAllocator_Occupy(t *testing.T) {
	holder := Holder{Type: entity.OccupantPatientTest, ID: 7}

	t.Run("claims an available room", func(t *testing.T) {
		repo := new(MockRoomRepository)
		repo.On("MarkOccupied", mock.Anything, uint(1), entity.OccupantPatientTest, uint(7)).Return(int64(1), nil)

		err := newTestAllocator(repo).Occupy(nil, 1, holder)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("loses the race on a held room", func(t *testing.T) {
		repo := new(MockRoomRepository)
		repo.On("MarkOccupied", mock.Anything, uint(1), entity.OccupantPatientTest, uint(7)).Return(int64(0), nil)
		repo.On("FindByID", mock.Anything, uint(1)).Return(&entity.Room{ID: 1, IsAvailable: false}, nil)

		err := newTestAllocator(repo).Occupy(nil, 1, holder)

		assert.ErrorIs(t, err, ErrRoomOccupied)
		repo.AssertExpectations(t)
	})

	t.Run("room does not exist", func(t *testing.T) {
		repo := new(MockRoomRepository)
		repo.On("MarkOccupied", mock.Anything, uint(99), entity.OccupantPatientTest, uint(7)).Return(int64(0), nil)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

		err := newTestAllocator(repo).Occupy(nil, 99, holder)

		assert.ErrorIs(t, err, ErrRoomNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockRoomRepository)
		dbErr := errors.New("connection reset")
		repo.On("MarkOccupied", mock.Anything, uint(1), entity.OccupantPatientTest, uint(7)).Return(int64(0), dbErr)

		err := newTestAllocator(repo).Occupy(nil, 1, holder)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestRoomAllocator_Release(t *testing.T) {
	t.Run("frees a held room", func(t *testing.T) {
		repo := new(MockRoomRepository)
		repo.On("MarkReleased", mock.Anything, uint(3)).Return(int64(1), nil)

		assert.NoError(t, newTestAllocator(repo).Release(nil, 3))
		repo.AssertExpectations(t)
	})

	t.Run("already free room is a no-op", func(t *testing.T) {
		repo := new(MockRoomRepository)
		repo.On("MarkReleased", mock.Anything, uint(3)).Return(int64(0), nil)

		assert.NoError(t, newTestAllocator(repo).Release(nil, 3))
		repo.AssertExpectations(t)
	})
}

func TestRoomAllocator_Reassign(t *testing.T) {
	holder := Holder{Type: entity.OccupantAppointment, ID: 12}

	t.Run("no previous room occupies directly", func(t *testing.T) {
		repo := new(MockRoomRepository)
		repo.On("MarkOccupied", mock.Anything, uint(5), entity.OccupantAppointment, uint(12)).Return(int64(1), nil)

		assert.NoError(t, newTestAllocator(repo).Reassign(nil, nil, 5, holder))
		repo.AssertExpectations(t)
	})

	t.Run("moves between rooms", func(t *testing.T) {
		repo := new(MockRoomRepository)
		previous := uint(4)
		repo.On("MarkReleased", mock.Anything, uint(4)).Return(int64(1), nil)
		repo.On("MarkOccupied", mock.Anything, uint(5), entity.OccupantAppointment, uint(12)).Return(int64(1), nil)

		assert.NoError(t, newTestAllocator(repo).Reassign(nil, &previous, 5, holder))
		repo.AssertExpectations(t)
	})

	t.Run("same room is a no-op", func(t *testing.T) {
		repo := new(MockRoomRepository)
		previous := uint(5)

		assert.NoError(t, newTestAllocator(repo).Reassign(nil, &previous, 5, holder))
		repo.AssertNotCalled(t, "MarkReleased", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "MarkOccupied", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("conflict on the new room surfaces after release", func(t *testing.T) {
		repo := new(MockRoomRepository)
		previous := uint(4)
		repo.On("MarkReleased", mock.Anything, uint(4)).Return(int64(1), nil)
		repo.On("MarkOccupied", mock.Anything, uint(5), entity.OccupantAppointment, uint(12)).Return(int64(0), nil)
		repo.On("FindByID", mock.Anything, uint(5)).Return(&entity.Room{ID: 5, IsAvailable: false}, nil)

		err := newTestAllocator(repo).Reassign(nil, &previous, 5, holder)

		assert.ErrorIs(t, err, ErrRoomOccupied)
		repo.AssertExpectations(t)
	})
}

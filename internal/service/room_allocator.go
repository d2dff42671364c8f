package service

import (
	"errors"
	"fmt"

	"healthcare-qms/internal/domain/entity"
	"healthcare-qms/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrRoomNotFound is returned when the referenced room does not exist
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomOccupied is returned when the room already has a live holder
	ErrRoomOccupied = errors.New("room is not available")
)

// Holder identifies the entity occupying a room.
type Holder struct {
	Type entity.OccupantType
	ID   uint
}

// RoomAllocator grants and releases exclusive room occupancy for both
// patient tests and appointments. All occupancy goes through this one
// allocator so the two workflows can never both claim the same room.
//
// Callers pass the transaction handle their unit of work runs under;
// the conditional claim inside that transaction is what makes two
// concurrent Occupy calls on one room yield exactly one winner.
type RoomAllocator struct {
	log      *logrus.Logger
	roomRepo repository.RoomRepository
}

func NewRoomAllocator(log *logrus.Logger, roomRepo repository.RoomRepository) *RoomAllocator {
	return &RoomAllocator{
		log:      log,
		roomRepo: roomRepo,
	}
}

// Occupy claims the room for the holder. Returns ErrRoomNotFound if the
// room does not exist and ErrRoomOccupied if another holder has it.
func (a *RoomAllocator) Occupy(tx *gorm.DB, roomID uint, holder Holder) error {
	rows, err := a.roomRepo.MarkOccupied(tx, roomID, holder.Type, holder.ID)
	if err != nil {
		a.log.Warnf("Failed to occupy room %d: %+v", roomID, err)
		return fmt.Errorf("occupy room %d: %w", roomID, err)
	}
	if rows == 0 {
		room, err := a.roomRepo.FindByID(tx, roomID)
		if err != nil {
			return fmt.Errorf("occupy room %d: %w", roomID, err)
		}
		if room == nil {
			return ErrRoomNotFound
		}
		a.log.Debugf("Room %d occupancy conflict: held elsewhere, %s %d lost", roomID, holder.Type, holder.ID)
		return ErrRoomOccupied
	}

	a.log.Debugf("Room %d occupied by %s %d", roomID, holder.Type, holder.ID)
	return nil
}

// Release frees the room. Releasing a room that is already free is a no-op.
func (a *RoomAllocator) Release(tx *gorm.DB, roomID uint) error {
	if _, err := a.roomRepo.MarkReleased(tx, roomID); err != nil {
		a.log.Warnf("Failed to release room %d: %+v", roomID, err)
		return fmt.Errorf("release room %d: %w", roomID, err)
	}

	a.log.Debugf("Room %d released", roomID)
	return nil
}

// Reassign moves a holder from its previous room to a new one. The old
// room is released first so it never stays occupied with no live holder;
// both updates run under the caller's transaction, so a conflict on the
// new room rolls the release back too.
func (a *RoomAllocator) Reassign(tx *gorm.DB, previousRoomID *uint, newRoomID uint, holder Holder) error {
	if previousRoomID != nil {
		if *previousRoomID == newRoomID {
			return nil
		}
		if err := a.Release(tx, *previousRoomID); err != nil {
			return err
		}
	}
	return a.Occupy(tx, newRoomID, holder)
}

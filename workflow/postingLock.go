package workflow

import (
	"fmt"

	"gorm.io/gorm"
)

// AcquireHostPostingLock serializes posting per host across instances using MySQL advisory locks.
// NOTE: GET_LOCK is connection-scoped, so this must be called on the same *gorm.DB that will do the posting transaction.
func AcquireHostPostingLock(tx *gorm.DB, hostCollectiveId int) error {
	lockName := fmt.Sprintf("posting:%d", hostCollectiveId)
	var ok int
	if err := tx.Raw("SELECT GET_LOCK(?, 30)", lockName).Scan(&ok).Error; err != nil {
		return err
	}
	if ok != 1 {
		return fmt.Errorf("could not acquire posting lock for host_collective_id=%d", hostCollectiveId)
	}
	return nil
}

func ReleaseHostPostingLock(tx *gorm.DB, hostCollectiveId int) {
	lockName := fmt.Sprintf("posting:%d", hostCollectiveId)
	var _ok int
	_ = tx.Raw("SELECT RELEASE_LOCK(?)", lockName).Scan(&_ok).Error
}

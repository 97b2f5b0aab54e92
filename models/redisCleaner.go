package models

import (
	"github.com/collectivehq/platform_backend/utils"
)

type RedisCleaner interface {
	RemoveInstanceRedis() error // remove one
	RemoveAllRedis() error      // remove list if exists
}

// remove both item & list
func RemoveRedisBoth[T RedisCleaner](obj T) error {
	if err := obj.RemoveInstanceRedis(); err != nil {
		return err
	}
	if err := obj.RemoveAllRedis(); err != nil {
		return err
	}
	return nil
}

func (obj Collective) RemoveInstanceRedis() error {
	if err := utils.RemoveRedisItem[Collective](obj.ID); err != nil {
		return err
	}
	return nil
}

func (obj Collective) RemoveAllRedis() error {
	return nil
}

func (obj Tier) RemoveInstanceRedis() error {
	if err := utils.RemoveRedisItem[Tier](obj.ID); err != nil {
		return err
	}
	return nil
}

func (obj Tier) RemoveAllRedis() error {
	if err := utils.RemoveRedisList[Tier](obj.CollectiveId); err != nil {
		return err
	}
	return nil
}

func (obj PaymentMethod) RemoveInstanceRedis() error {
	if err := utils.RemoveRedisItem[PaymentMethod](obj.ID); err != nil {
		return err
	}
	return nil
}

func (obj PaymentMethod) RemoveAllRedis() error {
	if err := utils.RemoveRedisList[PaymentMethod](obj.CollectiveId); err != nil {
		return err
	}
	return nil
}

func (obj PayoutMethod) RemoveInstanceRedis() error {
	if err := utils.RemoveRedisItem[PayoutMethod](obj.ID); err != nil {
		return err
	}
	return nil
}

func (obj PayoutMethod) RemoveAllRedis() error {
	if err := utils.RemoveRedisList[PayoutMethod](obj.CollectiveId); err != nil {
		return err
	}
	return nil
}

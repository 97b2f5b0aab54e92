package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublishToLedger implements the transactional outbox:
// it writes the message record inside the caller's DB transaction but does NOT publish to Pub/Sub.
// Publishing is performed asynchronously by the outbox dispatcher after commit.
func PublishToLedger(ctx context.Context, db *gorm.DB, hostCollectiveId int, occurredAt time.Time, refId int, refType LedgerReferenceType, obj interface{}, oldObj interface{}, msgAction PubSubMessageAction) error {

	var objInByte []byte
	var oldObjInByte []byte
	var err error

	if msgAction == PubSubMessageActionCreate || msgAction == PubSubMessageActionUpdate {
		objInByte, err = ToJSONWithoutField(obj, "Attachments")
		if err != nil {
			return err
		}
	}
	if msgAction == PubSubMessageActionUpdate || msgAction == PubSubMessageActionDelete {
		oldObjInByte, err = ToJSONWithoutField(oldObj, "Attachments")
		if err != nil {
			return err
		}
	}

	record := PubSubMessageRecord{
		HostCollectiveId: hostCollectiveId,
		OccurredAt:       occurredAt,
		ReferenceId:      refId,
		ReferenceType:    refType,
		Action:           msgAction,
		NewObj:           objInByte,
		OldObj:           oldObjInByte,
		IsProcessed:      false,
		PublishStatus:    OutboxPublishStatusPending,
		CorrelationId:    correlationIdFromContextOrNew(ctx),
	}
	err = db.Create(&record).Error
	if err != nil {
		return err
	}
	return nil
}

func correlationIdFromContextOrNew(ctx context.Context) string {
	if ctx != nil {
		if v, ok := utils.GetCorrelationIdFromContext(ctx); ok && v != "" {
			return v
		}
	}
	return uuid.NewString()
}

// ToJSONWithoutField converts an object to JSON after temporarily removing a specified field
func ToJSONWithoutField(obj interface{}, fieldName string) ([]byte, error) {
	val := reflect.ValueOf(obj)

	// If the value is an interface, get the concrete value it holds
	if val.Kind() == reflect.Interface {
		val = val.Elem()
	}

	// If the value is not a pointer, create a pointer to it
	if val.Kind() != reflect.Ptr {
		valPtr := reflect.New(val.Type())
		valPtr.Elem().Set(val)
		val = valPtr
	}

	// Dereference the pointer
	val = val.Elem()

	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct, got %v", val.Kind())
	}

	field := val.FieldByName(fieldName)
	var err error
	var jsonData []byte
	if field.IsValid() {
		// Store the original value of the field
		originalValue := reflect.New(field.Type()).Elem()
		originalValue.Set(field)

		// Clear the field value
		field.Set(reflect.Zero(field.Type()))

		jsonData, err = json.Marshal(val.Interface())

		// Restore the original value
		field.Set(originalValue)
	} else {
		jsonData, err = json.Marshal(val.Interface())
	}
	if err != nil {
		return nil, err
	}
	return jsonData, nil
}

// ValidateLedgerReference checks the referenced document exists before a
// ledger message is accepted for that reference.
func ValidateLedgerReference(ctx context.Context, hostCollectiveId int, referenceId int, referenceType LedgerReferenceType) error {
	tableNames := map[LedgerReferenceType]string{
		LedgerReferenceTypeOrder:          "orders",
		LedgerReferenceTypeExpensePayment: "expenses",
		LedgerReferenceTypeRefund:         "orders",

		// balance transfers reference a transaction group, not a document row
		LedgerReferenceTypeBalanceTransfer: "",
	}
	tableName, ok := tableNames[referenceType]
	if !ok {
		return errors.New("invalid reference type")
	}

	if tableName == "" {
		return nil
	}

	db := config.GetDB()
	var count int64
	dbCtx := db.WithContext(ctx).Where("host_collective_id = ? AND id = ?", hostCollectiveId, referenceId)
	if err := dbCtx.Table(tableName).Count(&count).Error; err != nil {
		return err
	}
	if count <= 0 {
		return errors.New("ledger reference does not exist")
	}

	return nil
}

package workflow

import (
	"errors"
	"fmt"
	"testing"

	mysqlDriver "github.com/go-sql-driver/mysql"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	dup := &mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"}
	if !isDuplicateKeyErr(dup) {
		t.Error("1062 should be detected as duplicate key")
	}
	if !isDuplicateKeyErr(fmt.Errorf("create idempotency key: %w", dup)) {
		t.Error("wrapped 1062 should be detected as duplicate key")
	}

	if isDuplicateKeyErr(&mysqlDriver.MySQLError{Number: 1213, Message: "Deadlock"}) {
		t.Error("deadlock must not be treated as duplicate key")
	}
	if isDuplicateKeyErr(errors.New("duplicate entry")) {
		t.Error("plain errors must not be treated as duplicate key")
	}
	if isDuplicateKeyErr(nil) {
		t.Error("nil is not a duplicate key error")
	}
}

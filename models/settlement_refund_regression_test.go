package models_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
)

// Regression: refunding a debt group must net the host's owed balance to zero
// without mutating the original ledger entries or settlement rows.
func TestRefundDebtGroup_NetsSettlementToZero(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "platform_test")

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	db := config.GetDB()
	if err := models.MigrateTable(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	const hostId = 2

	var group string
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		group, _, err = models.CreateDebtEntry(tx, models.NewTransactionPair{
			Kind:             models.TransactionKindPlatformTipDebt,
			Description:      "Platform tip",
			CollectiveId:     models.PlatformCollectiveId,
			FromCollectiveId: hostId,
			HostCollectiveId: hostId,
			Amount:           decimal.NewFromInt(100),
			Currency:         "USD",
			HostCurrency:     "USD",
		})
		return err
	})
	if err != nil {
		t.Fatalf("CreateDebtEntry: %v", err)
	}

	assertGroupSumsToZero(t, db, group)
	assertHostOwes(t, hostId, "100")

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := models.RefundGroup(tx, group)
		return err
	})
	if err != nil {
		t.Fatalf("RefundGroup: %v", err)
	}

	// original entries still there, reversal entries added, every group balanced
	var count int64
	if err := db.Model(&models.Transaction{}).Where("host_collective_id = ?", hostId).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Fatalf("expected 4 ledger entries after refund, got %d", count)
	}
	assertGroupSumsToZero(t, db, group)
	assertHostOwes(t, hostId, "0")

	hosts, err := models.HostsWithOwedSettlements(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range hosts {
		if id == hostId {
			t.Error("host with fully refunded debt should not appear in owed hosts")
		}
	}

	// refunding the same group again must fail
	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := models.RefundGroup(tx, group)
		return err
	})
	if err == nil {
		t.Fatal("second refund of the same group should error")
	}
}

func assertGroupSumsToZero(t *testing.T, db *gorm.DB, group string) {
	t.Helper()
	var sum decimal.Decimal
	if err := db.Model(&models.Transaction{}).
		Where("transaction_group = ?", group).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error; err != nil {
		t.Fatal(err)
	}
	if !sum.IsZero() {
		t.Fatalf("group %s does not sum to zero: %s", group, sum)
	}
}

func assertHostOwes(t *testing.T, hostId int, want string) {
	t.Helper()
	rows, err := models.HostOwedSummary(context.Background(), hostId)
	if err != nil {
		t.Fatal(err)
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.TotalOwed)
	}
	wantDec, _ := decimal.NewFromString(want)
	if !total.Equal(wantDec) {
		t.Fatalf("host %d owes %s, want %s", hostId, total, want)
	}
}

func startRedisContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("platform-test-redis-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:6379",
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("start redis container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "6379/tcp")
	if err != nil {
		t.Fatalf("redis docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "redis-cli", "ping")
		if err == nil {
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("redis did not become ready")
	return "", ""
}

func startMySQLContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("platform-test-mysql-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=platform_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	// Example: "127.0.0.1:49154\n"
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}

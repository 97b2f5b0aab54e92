package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"text/template"
	"time"
	"unicode"

	"github.com/99designs/gqlgen/graphql"
	"github.com/bsm/redislock"
	"github.com/collectivehq/platform_backend/config"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/schema"
)

func IsValidEmail(email string) bool {
	// Basic email validation regex pattern
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	regex := regexp.MustCompile(pattern)
	return regex.MatchString(email)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// slugs are lowercase, digits and single dashes, no leading/trailing dash
func IsValidSlug(slug string) bool {
	if len(slug) < 2 || len(slug) > 80 {
		return false
	}
	return slugPattern.MatchString(slug)
}

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

func GetQueryFields(ctx context.Context, model interface{}) (fieldNames []string, err error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return
	}
	m := make(map[string]string)
	for _, field := range s.Fields {
		dbName := field.DBName
		modelName := strings.ToLower(field.Name)
		m[modelName] = dbName
	}

	fields := graphql.CollectFieldsCtx(ctx, nil)
	for _, column := range fields {
		if !strings.HasPrefix(column.Name, "__") {
			colName := strings.ToLower(column.Name)
			if len(column.Selections) == 0 {
				fieldNames = append(fieldNames, m[colName])
			} else {
				dbName := m[colName+"id"]
				if len(dbName) > 0 {
					colName += "id"
				} else {
					colName += "code"
				}
				fieldNames = append(fieldNames, m[colName])
			}
		}
	}
	return
}

func GetPaginatedQueryFields(ctx context.Context, model interface{}) (fieldNames []string, err error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return
	}
	m := make(map[string]string)
	for _, field := range s.Fields {
		dbName := field.DBName
		modelName := strings.ToLower(field.Name)
		m[modelName] = dbName
	}

	fields := graphql.CollectFieldsCtx(ctx, nil)
	for _, column := range fields {
		if column.Name == "edges" {
			edgesFields := graphql.CollectFields(graphql.GetOperationContext(ctx), column.Selections, nil)
			nodeFields := graphql.CollectFields(graphql.GetOperationContext(ctx), edgesFields[0].Selections, nil)
			for _, nodeColumn := range nodeFields {
				if !strings.HasPrefix(nodeColumn.Name, "__") {
					colName := strings.ToLower(nodeColumn.Name)
					if len(nodeColumn.Selections) == 0 {
						fieldNames = append(fieldNames, m[colName])
					} else {
						dbName := m[colName+"id"]
						if len(dbName) > 0 {
							colName += "id"
						} else {
							colName += "code"
						}
						fieldNames = append(fieldNames, m[colName])
					}
				}
			}
			break
		}
	}
	return
}

func SplitQueryPath(path string) (module string, action string, err error) {
	var capitalIndex int
	for i, r := range path {
		if unicode.IsUpper(r) {
			capitalIndex = i
			break
		}
	}
	if capitalIndex == 0 {
		err = errors.New("invalid query")
		return
	}
	action = path[:capitalIndex]
	module = path[capitalIndex:]
	return
}

// returns slice removing duplicate elements
func UniqueSlice[T comparable](slice []T) []T {
	inResult := make(map[T]bool)
	var result []T
	for _, elm := range slice {
		if _, ok := inResult[elm]; !ok {
			// if not exists in map, append it, otherwise do nothing
			inResult[elm] = true
			result = append(result, elm)
		}
	}
	return result
}

// execute given template string and return generated string
func ExecTemplate(tString string, data map[string]interface{}) (string, error) {
	t, err := template.New("sql").Parse(tString)
	if err != nil {
		return "", errors.New("error parsing sql template: " + err.Error())
	}
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return "", errors.New("failed to execute sql template: " + err.Error())
	}
	return b.String(), nil
}

// safely dereference pointer of type T, nil pointer return zero value or optional default
func DereferencePtr[T any](ptr *T, defaults ...T) T {
	var defaultValue T
	if len(defaults) > 0 {
		defaultValue = defaults[0]
	}
	if ptr == nil {
		return defaultValue
	}
	return *ptr
}

// return nil if boolean expression is true, else the given default
func NilOrElse[T any](b bool, elseValue T) *T {
	if b {
		return nil
	}
	return &elseValue
}

func NilIfEmpty[T comparable](ptr T) *T {
	var defaultZero T
	if ptr == defaultZero {
		return nil
	}
	return &ptr
}

// turn transactionSettlement to TransactionSettlement
func UppercaseFirst(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// turn ToggleActive to toggleActive
func LowercaseFirst(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// mergeSlices merges two integer slices and removes duplicates
func MergeIntSlices(slice1, slice2 []int) []int {
	elementMap := make(map[int]bool)
	mergedSlice := []int{}

	for _, elem := range slice1 {
		if !elementMap[elem] {
			elementMap[elem] = true
			mergedSlice = append(mergedSlice, elem)
		}
	}

	for _, elem := range slice2 {
		if !elementMap[elem] {
			elementMap[elem] = true
			mergedSlice = append(mergedSlice, elem)
		}
	}

	return mergedSlice
}

// ParseDecimal converts a string to a decimal.Decimal value.
func ParseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, errors.New("empty decimal string")
	}

	dec, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}

	return dec, nil
}

// HostLock obtains a short redis lock scoped to a fiscal host and returns its
// release func. Best effort serialization for host-level operations outside
// the posting worker.
func HostLock(ctx context.Context, hostCollectiveId int, lockType string, moduleName string, functionName string) (func(), error) {
	logger := config.GetLogger()
	locker := config.GetRedisLock()
	if locker == nil {
		// Avoid nil-pointer panics when Redis lock isn't initialized yet.
		config.LogError(logger, moduleName, functionName, "Redis lock not initialized", hostCollectiveId, errors.New("redis lock is nil"))
		return nil, errors.New("service not ready (redis lock not initialized)")
	}
	lockKey := fmt.Sprintf("%s:%d", lockType, hostCollectiveId)
	lock, err := locker.Obtain(ctx, lockKey, 30*time.Second, nil)
	if err == redislock.ErrNotObtained {
		config.LogError(logger, moduleName, functionName, "Could not obtain lock for host", hostCollectiveId, err)
		return nil, errors.New("could not obtain lock for host")
	} else if err != nil {
		config.LogError(logger, moduleName, functionName, "Error obtaining lock for host", hostCollectiveId, err)
		return nil, err
	}
	return func() {
		_ = lock.Release(ctx)
	}, nil
}

package controllers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/adamanr/workforce_service/internal/config"
	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockDB represents a mock database connection. Query arguments are passed
// to the mock as one []any. Query may return a func() pgx.Rows for
// statements that run more than once.
type MockDB struct {
	mock.Mock
}

func (m *MockDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	callArgs := m.Called(ctx, sql, args)
	switch rows := callArgs.Get(0).(type) {
	case func() pgx.Rows:
		return rows(), callArgs.Error(1)
	case pgx.Rows:
		return rows, callArgs.Error(1)
	default:
		return nil, callArgs.Error(1)
	}
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	callArgs := m.Called(ctx, sql, args)
	return callArgs.Get(0).(pgx.Row)
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	callArgs := m.Called(ctx, sql, args)
	return callArgs.Get(0).(pgconn.CommandTag), callArgs.Error(1)
}

// sqlContains matches a statement by a fragment of its text.
func sqlContains(fragment string) interface{} {
	return mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, fragment)
	})
}

// assign stores val into the pointer dest the way pgx would for the types the
// controllers scan into.
func assign(dest, val interface{}) error {
	target := reflect.ValueOf(dest)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("scan destination %T is not a pointer", dest)
	}
	elem := target.Elem()

	if val == nil {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}

	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			elem.Set(reflect.Zero(elem.Type()))
			return nil
		}
		if !v.Type().AssignableTo(elem.Type()) {
			v = v.Elem()
		}
	}

	switch {
	case v.Type().AssignableTo(elem.Type()):
		elem.Set(v)
	case v.Type().ConvertibleTo(elem.Type()):
		elem.Set(v.Convert(elem.Type()))
	case elem.Kind() == reflect.Pointer && v.Type().ConvertibleTo(elem.Type().Elem()):
		p := reflect.New(elem.Type().Elem())
		p.Elem().Set(v.Convert(elem.Type().Elem()))
		elem.Set(p)
	default:
		return fmt.Errorf("cannot scan %T into %T", val, dest)
	}

	return nil
}

func scanValues(values []interface{}, dest []interface{}) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i := range dest {
		if err := assign(dest[i], values[i]); err != nil {
			return err
		}
	}
	return nil
}

// MockRow represents a mock database row.
type MockRow struct {
	data []interface{}
	err  error
}

func NewMockRow(data []interface{}, err error) *MockRow {
	return &MockRow{data: data, err: err}
}

func (m *MockRow) Scan(dest ...interface{}) error {
	if m.err != nil {
		return m.err
	}
	return scanValues(m.data, dest)
}

// MockRows represents mock database rows.
type MockRows struct {
	rows       [][]interface{}
	pos        int
	err        error
	fieldDescs []pgconn.FieldDescription
}

func NewMockRows(rows [][]interface{}, err error, fieldDescs []pgconn.FieldDescription) *MockRows {
	return &MockRows{
		rows:       rows,
		pos:        -1,
		err:        err,
		fieldDescs: fieldDescs,
	}
}

func (m *MockRows) FieldDescriptions() []pgconn.FieldDescription {
	return m.fieldDescs
}

func (m *MockRows) Next() bool {
	if m.err != nil {
		return false
	}
	m.pos++
	return m.pos < len(m.rows)
}

func (m *MockRows) Close() {}

func (m *MockRows) Scan(dest ...interface{}) error {
	if m.pos < 0 || m.pos >= len(m.rows) {
		return fmt.Errorf("scan called without a current row")
	}
	return scanValues(m.rows[m.pos], dest)
}

func (m *MockRows) Err() error {
	return m.err
}

func (m *MockRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(m.rows)))
}

func (m *MockRows) Values() ([]interface{}, error) {
	if m.pos < 0 || m.pos >= len(m.rows) {
		return nil, nil
	}
	return m.rows[m.pos], nil
}

func (m *MockRows) RawValues() [][]byte {
	return nil
}

func (m *MockRows) Conn() *pgx.Conn {
	return nil
}

// StructRows builds mock rows whose columns are the db tags of T, embedded
// structs included, in declaration order.
func StructRows[T any](items ...T) *MockRows {
	var names []string
	collectColumns(reflect.TypeFor[T](), &names)

	descs := make([]pgconn.FieldDescription, len(names))
	for i, name := range names {
		descs[i] = pgconn.FieldDescription{Name: name}
	}

	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		var values []interface{}
		collectValues(reflect.ValueOf(item), &values)
		rows = append(rows, values)
	}

	return NewMockRows(rows, nil, descs)
}

func collectColumns(t reflect.Type, names *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectColumns(f.Type, names)
			continue
		}
		if tag := f.Tag.Get("db"); tag != "" && tag != "-" {
			*names = append(*names, tag)
		}
	}
}

func collectValues(v reflect.Value, values *[]interface{}) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectValues(v.Field(i), values)
			continue
		}
		if tag := f.Tag.Get("db"); tag != "" && tag != "-" {
			*values = append(*values, v.Field(i).Interface())
		}
	}
}

// MockRedis represents a mock Redis client.
type MockRedis struct {
	mock.Mock
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)

	if statusCmd, ok := args.Get(0).(*redis.StatusCmd); ok {
		return statusCmd
	}

	cmd := redis.NewStatusCmd(ctx)
	if err, ok := args.Get(0).(error); ok && err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("OK")
	}

	return cmd
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)

	if stringCmd, ok := args.Get(0).(*redis.StringCmd); ok {
		return stringCmd
	}

	cmd := redis.NewStringCmd(ctx)
	if err, ok := args.Get(0).(error); ok && err != nil {
		cmd.SetErr(err)
	} else if val, ok := args.Get(0).(string); ok {
		cmd.SetVal(val)
	}

	return cmd
}

func (m *MockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)

	if intCmd, ok := args.Get(0).(*redis.IntCmd); ok {
		return intCmd
	}

	cmd := redis.NewIntCmd(ctx)
	if err, ok := args.Get(0).(error); ok && err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(int64(len(keys)))
	}

	return cmd
}

func NewMockCommandTag(tag string, rowsAffected int64) pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("%s %d", tag, rowsAffected))
}

var testNow = time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)

// Test helper functions.
func CreateTestDependencies(mockDB *MockDB, mockRedis *MockRedis) *Dependens {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := &config.Config{}
	cfg.Server.JWTSecret = "test-secret-key"
	cfg.Server.PublicURL = "https://api.example.com"
	cfg.Redis.AccessTokenTTL = time.Hour
	cfg.Redis.RefreshTokenTTL = time.Hour * 24
	cfg.Reports.Parallel = 4

	return &Dependens{
		DB:        mockDB,
		Redis:     mockRedis,
		Logger:    logger,
		Config:    cfg,
		Sanitizer: bluemonday.StrictPolicy(),
		Now:       func() time.Time { return testNow },
	}
}

// Test data helpers.
func CreateTestEmployee() entity.Employee {
	return entity.Employee{
		ID:                   1,
		Name:                 StringPtr("John Doe"),
		MobileNo:             StringPtr("91234567"),
		CountryID:            Uint64Ptr(3),
		CountryName:          StringPtr("India"),
		FinNricNo:            StringPtr("S1234567Z"),
		MaskFinNricNo:        StringPtr("SXXXX567Z"),
		WorkPermitNo:         StringPtr("WP123456"),
		MaskWorkPermitNo:     StringPtr("WXXX3456"),
		WorkPermitExpiryDate: TimePtr(testNow.AddDate(0, 0, 3)),
		CompanyID:            Uint64Ptr(7),
		EmailID:              StringPtr("john@example.com"),
		Site:                 StringPtr("1,2"),
		IsActive:             1,
		CreatedDate:          testNow,
	}
}

func StringPtr(s string) *string {
	return &s
}

func Uint64Ptr(u uint64) *uint64 {
	return &u
}

func IntPtr(i int) *int {
	return &i
}

func BoolPtr(b bool) *bool {
	return &b
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

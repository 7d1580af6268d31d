package controllers

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/adamanr/workforce_service/internal/report"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pngPrefix = "data:image/png;base64,"

func TestEmployeeController_GenerateQRCode(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockDB)
		expectedError error
		errorContains string
	}{
		{
			name: "successful generation",
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Query", mock.Anything, sqlContains("FROM employees e WHERE e.employee_id = $1"), []interface{}{uint64(1), 0}).
					Return(StructRows(CreateTestEmployee()), nil)
				mockDB.On("Exec", mock.Anything, sqlContains("SET qr_code = $1, qr_generated_status = 1"), mock.MatchedBy(func(args []interface{}) bool {
					qrCode, ok := args[0].(string)
					return ok && strings.HasPrefix(qrCode, pngPrefix) && args[1] == uint64(1)
				})).Return(NewMockCommandTag("UPDATE", 1), nil)
				expectAudit(mockDB)
			},
		},
		{
			name: "employee not found",
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Query", mock.Anything, sqlContains("FROM employees e WHERE e.employee_id = $1"), mock.Anything).
					Return(StructRows[entity.Employee](), nil)
			},
			expectedError: ErrInvalidEmployeeID,
		},
		{
			name: "store failure",
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Query", mock.Anything, sqlContains("FROM employees e WHERE e.employee_id = $1"), mock.Anything).
					Return(StructRows(CreateTestEmployee()), nil)
				mockDB.On("Exec", mock.Anything, sqlContains("SET qr_code"), mock.Anything).
					Return(NewMockCommandTag("UPDATE", 0), errors.New("connection reset"))
			},
			errorContains: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDB{}
			deps := CreateTestDependencies(mockDB, &MockRedis{})
			tt.setupMocks(mockDB)

			qrCode, err := NewEmployeeController(deps).GenerateQRCode(context.Background(), companyAdmin, testMeta, 1)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, qrCode)
			case tt.errorContains != "":
				assert.ErrorContains(t, err, tt.errorContains)
				assert.Empty(t, qrCode)
			default:
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(qrCode, pngPrefix))
			}

			mockDB.AssertExpectations(t)
		})
	}
}

func TestEmployeeController_QRCodesPrintView(t *testing.T) {
	stored, err := report.QRCodeDataURL(entity.QRPayload{EmployeeID: 2, EmployeeName: "Jane Roe"})
	require.NoError(t, err)

	withQR := CreateTestEmployee()
	withQR.ID = 2
	withQR.Name = StringPtr("Jane Roe")
	withQR.QRCode = &stored
	withQR.QRGeneratedStatus = 1

	tests := []struct {
		name          string
		req           *entity.QRPrintRequest
		setupMocks    func(*MockDB)
		expectedError error
	}{
		{
			name: "sheet for two employees",
			req:  &entity.QRPrintRequest{EmployeeIDs: "1, 2,,x", CopiesCount: 3, PageSizeType: 2},
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Query", mock.Anything, sqlContains("e.employee_id = ANY($1)"), []interface{}{[]uint64{1, 2}}).
					Return(StructRows(CreateTestEmployee(), withQR), nil)
			},
		},
		{
			name:          "no ids",
			req:           &entity.QRPrintRequest{EmployeeIDs: " , 0", CopiesCount: 1},
			setupMocks:    func(*MockDB) {},
			expectedError: ErrEmployeeIDsRequired,
		},
		{
			name:          "no copies",
			req:           &entity.QRPrintRequest{EmployeeIDs: "1", CopiesCount: 0},
			setupMocks:    func(*MockDB) {},
			expectedError: ErrCopiesCountRequired,
		},
		{
			name:          "copies above the configured limit",
			req:           &entity.QRPrintRequest{EmployeeIDs: "1,2", CopiesCount: 101},
			setupMocks:    func(*MockDB) {},
			expectedError: ErrCopiesCountTooLarge,
		},
		{
			name:          "copies that would overflow the sheet size",
			req:           &entity.QRPrintRequest{EmployeeIDs: "1,2", CopiesCount: math.MaxInt/2 + 1},
			setupMocks:    func(*MockDB) {},
			expectedError: ErrCopiesCountTooLarge,
		},
		{
			name: "no employees found",
			req:  &entity.QRPrintRequest{EmployeeIDs: "9", CopiesCount: 1},
			setupMocks: func(mockDB *MockDB) {
				mockDB.On("Query", mock.Anything, sqlContains("e.employee_id = ANY($1)"), mock.Anything).
					Return(StructRows[entity.Employee](), nil)
			},
			expectedError: ErrEmployeesListEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDB{}
			deps := CreateTestDependencies(mockDB, &MockRedis{})
			deps.Config.Reports.Dir = t.TempDir()
			deps.Config.Reports.URLPath = "/uploads/QrCode/"
			tt.setupMocks(mockDB)

			result, err := NewEmployeeController(deps).QRCodesPrintView(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				mockDB.AssertExpectations(t)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(result.FileName, ".pdf"))
			assert.Equal(t, "/uploads/QrCode/", result.FilePath)
			assert.Equal(t, "https://api.example.com/uploads/QrCode/"+result.FileName, result.FullPath)

			info, err := os.Stat(filepath.Join(deps.Config.Reports.Dir, result.FileName))
			require.NoError(t, err)
			assert.Positive(t, info.Size())

			mockDB.AssertExpectations(t)
		})
	}
}

func TestEmployeeController_QRCodesPrintView_QueryError(t *testing.T) {
	mockDB := &MockDB{}
	deps := CreateTestDependencies(mockDB, &MockRedis{})
	mockDB.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, pgx.ErrTxClosed)

	_, err := NewEmployeeController(deps).QRCodesPrintView(context.Background(), &entity.QRPrintRequest{EmployeeIDs: "1", CopiesCount: 1})
	assert.ErrorIs(t, err, pgx.ErrTxClosed)
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		raw      string
		expected []uint64
	}{
		{raw: "1,2,3", expected: []uint64{1, 2, 3}},
		{raw: " 4 , 5 ", expected: []uint64{4, 5}},
		{raw: "0,abc,,7", expected: []uint64{7}},
		{raw: "", expected: nil},
		{raw: "-1", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseIDs(tt.raw))
		})
	}
}

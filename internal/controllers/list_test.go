package controllers

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/adamanr/workforce_service/internal/report"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEmployeeRows() []entity.EmployeeRow {
	first := entity.EmployeeRow{
		Employee:            CreateTestEmployee(),
		CompanyName:         StringPtr("Acme"),
		CompanyProjectTitle: StringPtr("Tower A"),
		SubconName:          StringPtr("Sub One"),
	}
	first.ProfileImagePath = StringPtr("/uploads/1.png")
	first.Address = StringPtr(`{"blockNumber":"12","streetName":"Jurong West"}`)
	first.PostalCode = StringPtr("640123")

	second := entity.EmployeeRow{Employee: CreateTestEmployee(), ProjectCompanyNickName: StringPtr("ACM")}
	second.ID = 2
	second.Name = StringPtr("Jane Roe")
	second.Site = nil
	second.WorkPermitExpiryDate = nil
	second.IsActive = 0

	return []entity.EmployeeRow{first, second}
}

func expectCounts(mockDB *MockDB, employees, machines int) {
	mockDB.On("QueryRow", mock.Anything, sqlContains("SELECT COUNT(*) FROM employees e LEFT JOIN companies cd ON cd.company_id = e.employee_company_id WHERE"), mock.Anything).
		Return(NewMockRow([]interface{}{employees}, nil))
	mockDB.On("QueryRow", mock.Anything, sqlContains("SELECT COUNT(*) FROM machines m"), mock.Anything).
		Return(NewMockRow([]interface{}{machines}, nil))
}

func expectEnrichment(mockDB *MockDB) {
	mockDB.On("QueryRow", mock.Anything, sqlContains("FROM employee_certificates"), mock.Anything).
		Return(NewMockRow([]interface{}{2, 2}, nil))
	mockDB.On("QueryRow", mock.Anything, sqlContains("FROM employee_safety_violations"), []interface{}{uint64(1)}).
		Return(NewMockRow([]interface{}{true}, nil))
	mockDB.On("QueryRow", mock.Anything, sqlContains("FROM employee_safety_violations"), []interface{}{uint64(2)}).
		Return(NewMockRow([]interface{}{false}, nil))
	expectSites(mockDB)
}

func TestEmployeeController_EmployeeList(t *testing.T) {
	t.Run("items with counters", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		expectCounts(mockDB, 5, 2)
		mockDB.On("Query", mock.Anything, sqlContains("FROM employees e LEFT JOIN companies cd"), mock.MatchedBy(func(args []interface{}) bool {
			return len(args) == 5 && args[3] == uint64(7) && args[4] == 1
		})).Return(StructRows(testEmployeeRows()...), nil).Once()
		expectEnrichment(mockDB)

		result, err := NewEmployeeController(deps).EmployeeList(context.Background(), companyAdmin, entity.ListParams{
			MaskStatus: IntPtr(1),
		})
		require.NoError(t, err)

		require.NotNil(t, result.UsedRecords)
		assert.Equal(t, 7, *result.UsedRecords)
		assert.Equal(t, 5, result.CompanyEmployeeCount)
		assert.Equal(t, 0, result.ProjectEmployeeCount)
		assert.Equal(t, 2, result.CompanyMetsCount)
		assert.Nil(t, result.EmployeeListCount)

		require.Len(t, result.EmployeeList, 2)
		first, second := result.EmployeeList[0], result.EmployeeList[1]

		assert.Equal(t, uint64(1), first.EmployeeID)
		assert.Equal(t, "SXXXX567Z", first.EmployeeFinNricNo)
		assert.Equal(t, "S1234567Z", first.FinNricNo)
		assert.Equal(t, "WXXX3456", first.EmployeeWorkPermitNo)
		assert.Equal(t, 1, first.ExpiryStatus)
		assert.Equal(t, 1, first.ApprovalStatus)
		assert.Equal(t, 1, first.SafetyViolationStatus)
		assert.Equal(t, "Alpha, Beta", first.SiteName)
		assert.Equal(t, "Tower A", first.DisplayName)
		assert.Equal(t, "https://api.example.com/uploads/1.png", first.ProfileImagePath)
		require.NotNil(t, first.EmployeeAddress)
		assert.Equal(t, "Jurong West", first.EmployeeAddress.StreetName)

		assert.Equal(t, uint64(2), second.EmployeeID)
		assert.Equal(t, 0, second.ExpiryStatus)
		assert.Equal(t, 0, second.SafetyViolationStatus)
		assert.Equal(t, "", second.SiteName)
		assert.Equal(t, "", second.ProfileImagePath)

		mockDB.AssertExpectations(t)
	})

	t.Run("count mode", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("QueryRow", mock.Anything, sqlContains("LEFT JOIN subcons sd"), mock.Anything).
			Return(NewMockRow([]interface{}{12}, nil)).Once()

		result, err := NewEmployeeController(deps).EmployeeList(context.Background(), superAdmin, entity.ListParams{
			Count: BoolPtr(true),
		})
		require.NoError(t, err)

		require.NotNil(t, result.EmployeeListCount)
		assert.Equal(t, 12, *result.EmployeeListCount)
		assert.Nil(t, result.EmployeeList)
		assert.Nil(t, result.UsedRecords)
		assert.Zero(t, result.CompanyEmployeeCount)

		mockDB.AssertExpectations(t)
	})

	t.Run("safety violation list is ordered by violation date", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("Query", mock.Anything, sqlContains("ORDER BY e.violation_modified_date DESC NULLS LAST"), mock.Anything).
			Return(StructRows[entity.EmployeeRow](), nil).Once()

		result, err := NewEmployeeController(deps).EmployeeList(context.Background(), superAdmin, entity.ListParams{
			OrderBy:               IntPtr(1),
			IsSafetyViolationList: IntPtr(1),
		})
		require.NoError(t, err)
		assert.Empty(t, result.EmployeeList)

		mockDB.AssertExpectations(t)
	})

	t.Run("project admin counters", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("QueryRow", mock.Anything, sqlContains("LEFT JOIN subcons sd"), mock.Anything).
			Return(NewMockRow([]interface{}{3}, nil)).Once()
		mockDB.On("QueryRow", mock.Anything, sqlContains("WHERE e.is_delete = $1 AND e.is_invalid = $2 AND e.is_temporary = $3 AND cd.project_id = $4"), mock.Anything).
			Return(NewMockRow([]interface{}{4}, nil)).Once()
		mockDB.On("QueryRow", mock.Anything, sqlContains("WHERE e.is_delete = $1 AND e.is_invalid = $2 AND e.is_temporary = $3 AND e.project_id = $4"), mock.Anything).
			Return(NewMockRow([]interface{}{6}, nil)).Once()
		mockDB.On("QueryRow", mock.Anything, sqlContains("FROM machines m LEFT JOIN companies cd ON cd.company_id = m.company_id WHERE m.is_delete = $1 AND cd.project_id = $2"), mock.Anything).
			Return(NewMockRow([]interface{}{1}, nil)).Once()
		mockDB.On("QueryRow", mock.Anything, sqlContains("WHERE m.is_delete = $1 AND m.project_id = $2"), mock.Anything).
			Return(NewMockRow([]interface{}{2}, nil)).Once()

		result, err := NewEmployeeController(deps).EmployeeList(context.Background(), projectAdmin, entity.ListParams{
			Count: BoolPtr(true),
		})
		require.NoError(t, err)

		assert.Equal(t, 4, result.CompanyEmployeeCount)
		assert.Equal(t, 6, result.ProjectEmployeeCount)
		assert.Equal(t, 1, result.CompanyMetsCount)
		assert.Equal(t, 2, result.ProjectMetsCount)
		require.NotNil(t, result.UsedRecords)
		assert.Equal(t, 5, *result.UsedRecords)

		mockDB.AssertExpectations(t)
	})
}

func TestEmployeeController_PrintSheet(t *testing.T) {
	t.Run("rows keep their order and the last company heads the sheet", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		rows := testEmployeeRows()
		third := rows[1]
		third.ID = 3
		third.CompanyName = StringPtr("Beta Pte")
		rows = append(rows, third)

		mockDB.On("Query", mock.Anything, mock.MatchedBy(func(sql string) bool {
			return strings.Contains(sql, "FROM employees e LEFT JOIN companies cd") &&
				!strings.Contains(sql, "employee_certificates") &&
				!strings.Contains(sql, "LEFT JOIN projects cp")
		}), mock.Anything).Return(StructRows(rows...), nil).Once()
		expectSites(mockDB)

		sheet, err := NewEmployeeController(deps).PrintSheet(context.Background(), companyAdmin, entity.ListParams{
			ApprovalStatus:   StringPtr("1"),
			MaskStatus:       IntPtr(1),
			AvailableColumns: StringPtr(`["sNo","employeeName","address"]`),
		})
		require.NoError(t, err)

		assert.Equal(t, "Beta Pte", sheet.CompanyName)
		assert.Equal(t, []string{"sNo", "employeeName", "address"}, sheet.Columns)
		require.Len(t, sheet.Rows, 3)

		for i, row := range sheet.Rows {
			assert.Equal(t, i+1, row.SNo)
		}

		first := sheet.Rows[0]
		assert.Equal(t, "SXXXX567Z", first.EmployeeFinNricNo)
		assert.Equal(t, "12, Jurong West 640123", first.Address)
		assert.Equal(t, "Active", first.IsActive)
		assert.Equal(t, "Acme", first.CompanyName)
		assert.Equal(t, "03/02/2024", first.WorkPermitExpiryDate)
		assert.Equal(t, 1, first.ExpiryStatus)
		assert.Equal(t, "Alpha, Beta", first.Site)

		second := sheet.Rows[1]
		assert.Equal(t, "InActive", second.IsActive)
		assert.Equal(t, "ACM", second.CompanyName)

		mockDB.AssertExpectations(t)
	})

	t.Run("project title heads a project admin sheet", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("Query", mock.Anything, sqlContains("FROM employees e LEFT JOIN companies cd"), mock.Anything).
			Return(StructRows[entity.EmployeeRow](), nil).Once()
		mockDB.On("QueryRow", mock.Anything, sqlContains("FROM projects"), []interface{}{uint64(11)}).
			Return(NewMockRow([]interface{}{"Tower A"}, nil)).Once()

		sheet, err := NewEmployeeController(deps).PrintSheet(context.Background(), projectAdmin, entity.ListParams{})
		require.NoError(t, err)

		assert.Equal(t, "Tower A", sheet.CompanyName)
		assert.Empty(t, sheet.Rows)

		mockDB.AssertExpectations(t)
	})

	t.Run("no rows and no project", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("Query", mock.Anything, sqlContains("FROM employees e LEFT JOIN companies cd"), mock.Anything).
			Return(StructRows[entity.EmployeeRow](), nil).Once()

		sheet, err := NewEmployeeController(deps).PrintSheet(context.Background(), superAdmin, entity.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, OwnEmployeeAdminName, sheet.CompanyName)
	})

	t.Run("invalid availableColumns", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		_, err := NewEmployeeController(deps).PrintSheet(context.Background(), superAdmin, entity.ListParams{
			AvailableColumns: StringPtr("sNo,employeeName"),
		})
		assert.ErrorIs(t, err, ErrInvalidAvailableColumns)

		mockDB.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("only unknown columns", func(t *testing.T) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		_, err := NewEmployeeController(deps).PrintSheet(context.Background(), companyAdmin, entity.ListParams{
			AvailableColumns: StringPtr(`["bogus"]`),
		})
		assert.ErrorIs(t, err, ErrInvalidAvailableColumns)

		mockDB.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEmployeeController_PrintAndExport(t *testing.T) {
	setup := func() (*MockDB, *EmployeeController) {
		mockDB := &MockDB{}
		deps := CreateTestDependencies(mockDB, &MockRedis{})

		mockDB.On("Query", mock.Anything, sqlContains("FROM employees e LEFT JOIN companies cd"), mock.Anything).
			Return(func() pgx.Rows { return StructRows(testEmployeeRows()...) }, nil)
		expectSites(mockDB)

		return mockDB, NewEmployeeController(deps)
	}

	t.Run("pdf", func(t *testing.T) {
		_, controller := setup()

		dataURL, err := controller.PrintEmployeeList(context.Background(), companyAdmin, entity.ListParams{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dataURL, report.PDFDataURLPrefix))
	})

	t.Run("xlsx", func(t *testing.T) {
		_, controller := setup()

		dataURL, err := controller.ExportEmployeeList(context.Background(), companyAdmin, entity.ListParams{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dataURL, report.XLSXDataURLPrefix))
	})
}

func TestAvailableColumns(t *testing.T) {
	columns, err := availableColumns(nil)
	assert.NoError(t, err)
	assert.Nil(t, columns)

	raw, _ := json.Marshal([]string{"employeeName", "site"})
	columns, err = availableColumns(StringPtr(string(raw)))
	assert.NoError(t, err)
	assert.Equal(t, []string{"employeeName", "site"}, columns)

	columns, err = availableColumns(StringPtr(`["bogus","site"]`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"bogus", "site"}, columns)

	_, err = availableColumns(StringPtr(`["bogus"]`))
	assert.Error(t, err)

	_, err = availableColumns(StringPtr("{"))
	assert.Error(t, err)
}

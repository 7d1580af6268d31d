package employee

import (
	"testing"
	"time"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "John Tan Ah Kow", TitleCase("jOHN tan AH kow"))
	assert.Equal(t, "Mary-jane O'neil", TitleCase("mary-JANE o'NEIL"))
	assert.Equal(t, "", TitleCase(""))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "05/03/1990", FormatDate(&d))
	assert.Equal(t, "", FormatDate(nil))

	west := d.In(time.FixedZone("UTC-5", -5*60*60))
	assert.Equal(t, "05/03/1990", FormatDate(&west))
}

func TestApprovalStatus(t *testing.T) {
	assert.Equal(t, 0, ApprovalStatus(0, 0))
	assert.Equal(t, 1, ApprovalStatus(3, 3))
	assert.Equal(t, 0, ApprovalStatus(3, 2))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name                          string
		project, companyProject, sub *string
		expected                      string
	}{
		{name: "own project wins", project: strPtr("Tower A"), companyProject: strPtr("Depot"), sub: strPtr("Acme"), expected: "Tower A"},
		{name: "company project next", project: strPtr(""), companyProject: strPtr("Depot"), sub: strPtr("Acme"), expected: "Depot"},
		{name: "subcontractor last", sub: strPtr("Acme"), expected: "Acme"},
		{name: "nothing", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.project, tt.companyProject, tt.sub))
		})
	}
}

func TestAddressLine(t *testing.T) {
	addr := &entity.Address{
		DormitoryName: "Westlite",
		BlockNumber:   "12",
		StreetName:    "Jurong Rd",
		UnitNumber:    "#03-11",
		City:          "Singapore",
	}

	assert.Equal(t, "Westlite 12, Jurong Rd #03-11, Singapore Singapore, 640123",
		AddressLine(addr, "Singapore", "640123"))
	assert.Equal(t, "640123", AddressLine(nil, "", "640123"))
	assert.Equal(t, "", AddressLine(&entity.Address{}, "", ""))
}

func TestParseAddress(t *testing.T) {
	assert.Nil(t, ParseAddress(nil))
	assert.Nil(t, ParseAddress(strPtr("not json")))

	addr := ParseAddress(strPtr(`{"streetName":"Jurong Rd","city":"Singapore"}`))
	if assert.NotNil(t, addr) {
		assert.Equal(t, "Jurong Rd", addr.StreetName)
		assert.Equal(t, "Singapore", addr.City)
	}

	encoded, err := EncodeAddress(addr)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"streetName":"Jurong Rd","city":"Singapore"}`, *encoded)
}

func TestSiteIDs(t *testing.T) {
	assert.Equal(t, []uint64{1, 4, 9}, SiteIDs(strPtr("1, 4,x,9,0")))
	assert.Nil(t, SiteIDs(nil))
	assert.Equal(t, "North, South", SiteNames([]entity.Site{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}}))
}

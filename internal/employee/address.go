package employee

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/adamanr/workforce_service/internal/entity"
)

// ParseAddress decodes the stored address JSON. A missing or malformed value
// yields nil.
func ParseAddress(raw *string) *entity.Address {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	var addr entity.Address
	if err := json.Unmarshal([]byte(*raw), &addr); err != nil {
		return nil
	}

	return &addr
}

// EncodeAddress is the inverse of ParseAddress.
func EncodeAddress(addr *entity.Address) (*string, error) {
	if addr == nil {
		return nil, nil
	}

	data, err := json.Marshal(addr)
	if err != nil {
		return nil, err
	}

	s := string(data)
	return &s, nil
}

// AddressLine renders an address as a single printable line.
func AddressLine(addr *entity.Address, addressCountry, postalCode string) string {
	var b strings.Builder

	part := func(value, sep string) {
		if value != "" {
			b.WriteString(value)
			b.WriteString(sep)
		}
	}

	if addr != nil {
		part(addr.DormitoryName, " ")
		part(addr.BlockNumber, ", ")
		part(addr.StreetName, " ")
		part(addr.UnitNumber, ", ")
		part(addr.City, " ")
		part(addr.State, " ")
	}
	part(addressCountry, ", ")
	part(postalCode, " ")

	return strings.TrimSpace(b.String())
}

// SiteIDs splits the comma-joined site list of an employee.
func SiteIDs(site *string) []uint64 {
	if site == nil {
		return nil
	}

	var ids []uint64
	for _, part := range strings.Split(*site, ",") {
		if id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}

	return ids
}

// SiteNames joins site names for display.
func SiteNames(sites []entity.Site) string {
	names := make([]string, 0, len(sites))
	for _, s := range sites {
		names = append(names, s.Name)
	}

	return strings.Join(names, ", ")
}

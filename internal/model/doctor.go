package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SlotList is an ordered list of time strings persisted as a JSON text
// blob in the availableSlots column and parsed back on read.
type SlotList []string

func (s SlotList) Value() (driver.Value, error) {
	if s == nil {
		s = SlotList{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode slots: %w", err)
	}
	return string(b), nil
}

func (s *SlotList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = SlotList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), s)
	case []byte:
		return json.Unmarshal(v, s)
	default:
		return fmt.Errorf("cannot scan %T into SlotList", src)
	}
}

type Doctor struct {
	ID             int64    `db:"id" json:"id"`
	Name           string   `db:"name" json:"name"`
	Specialty      string   `db:"specialty" json:"specialty"`
	Experience     int      `db:"experience" json:"experience"`
	Rating         float64  `db:"rating" json:"rating"`
	AvailableSlots SlotList `db:"availableSlots" json:"availableSlots"`
	Image          string   `db:"image" json:"image"`
	CreatedAt      string   `db:"createdAt" json:"-"`
}

// DoctorFilter narrows doctor listings. Specialty matches the specialty
// column alone; Search matches name or specialty. Both are substring
// matches and are AND'd when both are set.
type DoctorFilter struct {
	Specialty string
	Search    string
}

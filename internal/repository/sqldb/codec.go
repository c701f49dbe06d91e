package sqldb

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"wordy/internal/domain"
)

// nullDate scans a nullable DATE column
type nullDate struct {
	Date  domain.Date
	Valid bool
}

func (n *nullDate) Scan(src interface{}) error {
	if src == nil {
		n.Date, n.Valid = domain.Date{}, false
		return nil
	}
	n.Valid = true
	return n.Date.Scan(src)
}

func (n nullDate) Ptr() *domain.Date {
	if !n.Valid {
		return nil
	}
	d := n.Date
	return &d
}

func dateValue(d *domain.Date) driver.Value {
	if d == nil {
		return nil
	}
	return d.String()
}

func boolValue(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func boolPtr(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}

func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode column: %w", err)
	}
	return string(b), nil
}

func decodeJSON(s string, v interface{}) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("failed to decode column: %w", err)
	}
	return nil
}

package mysql

import (
	"database/sql"
	"encoding/json"
)

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// jsonList encodes a list attribute for a JSON column; nil stays NULL
func jsonList(v []string) (any, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// fromJSONList decodes a JSON column back into a list attribute
func fromJSONList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

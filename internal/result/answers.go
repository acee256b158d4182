package result

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerSheet maps a question id to the answer the user submitted, kept as sent.
type AnswerSheet map[string]string

// UnmarshalJSON accepts numeric and boolean answers and stores their literal text.
func (a *AnswerSheet) UnmarshalJSON(b []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("answers must be an object: %w", err)
	}
	if raw == nil {
		*a = nil
		return nil
	}

	sheet := make(AnswerSheet, len(raw))
	for id, v := range raw {
		switch answer := v.(type) {
		case nil:
			sheet[id] = ""
		case string:
			sheet[id] = answer
		case float64:
			sheet[id] = strconv.FormatFloat(answer, 'f', -1, 64)
		case bool:
			sheet[id] = strconv.FormatBool(answer)
		default:
			return fmt.Errorf("answer for %q must be a scalar", id)
		}
	}
	*a = sheet
	return nil
}

func (a AnswerSheet) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *AnswerSheet) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AnswerSheet", value)
	}

	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*a = m
	return nil
}

func (AnswerSheet) GormDataType() string {
	return "jsonb"
}

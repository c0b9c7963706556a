// internal/domain/homework/response.go
package homework

import "encoding/json"

// Review is the validated body of one homework-statuses response.
type Review struct {
	Homeworks []Homework
	// UpdatedAt is the server-reported update time, used as the lower
	// bound of the next fetch window.
	UpdatedAt int64
}

// Latest returns the most recent homework entry, or nil when the
// response carried none. An empty list is a normal outcome, not an
// error.
func (r *Review) Latest() *Homework {
	if len(r.Homeworks) == 0 {
		return nil
	}
	return &r.Homeworks[0]
}

// CheckResponse validates the raw response body against the API
// contract. The top level must be an object holding a "homeworks" list
// and an update timestamp under "current_date" (preferred) or
// "date_updated" (older variant of the schema).
func CheckResponse(raw []byte) (*Review, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, &TypeMismatchError{Field: "response", Cause: err}
	}
	if top == nil {
		return nil, &TypeMismatchError{Field: "response"}
	}

	homeworksRaw, ok := top["homeworks"]
	if !ok {
		return nil, &MissingFieldError{Field: "homeworks"}
	}

	dateField := "current_date"
	dateRaw, ok := top[dateField]
	if !ok {
		dateField = "date_updated"
		if dateRaw, ok = top[dateField]; !ok {
			return nil, &MissingFieldError{Field: "current_date"}
		}
	}

	review := Review{}
	if err := json.Unmarshal(dateRaw, &review.UpdatedAt); err != nil {
		return nil, &TypeMismatchError{Field: dateField, Cause: err}
	}
	if err := json.Unmarshal(homeworksRaw, &review.Homeworks); err != nil {
		return nil, &TypeMismatchError{Field: "homeworks", Cause: err}
	}

	return &review, nil
}

// internal/domain/homework/homework.go
package homework

import "fmt"

// Status is the review verdict code reported by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps each recognized status to its user-facing sentence.
// An unlisted status cannot be translated and must be rejected.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Known reports whether s is one of the recognized review statuses.
func (s Status) Known() bool {
	_, ok := verdicts[s]
	return ok
}

// Homework is one submission entry from the API response.
// Name and Status are pointers so an absent key can be told apart
// from an empty value.
type Homework struct {
	ID     int64   `json:"id"`
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// StatusChange is the translated outcome of one homework entry: the
// composed notification text plus the status used for duplicate
// suppression.
type StatusChange struct {
	Name    string
	Status  Status
	Message string
}

// ParseStatus extracts the name and status from a homework entry and
// composes the notification sentence.
func ParseStatus(hw Homework) (*StatusChange, error) {
	if hw.Name == nil {
		return nil, &MissingFieldError{Field: "homework_name"}
	}
	if hw.Status == nil {
		return nil, &MissingFieldError{Field: "status"}
	}

	status := Status(*hw.Status)
	verdict, ok := verdicts[status]
	if !ok {
		return nil, &UnknownStatusError{Status: *hw.Status}
	}

	return &StatusChange{
		Name:    *hw.Name,
		Status:  status,
		Message: fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", *hw.Name, verdict),
	}, nil
}

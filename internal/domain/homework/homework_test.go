package homework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseStatus_ComposesExactMessage(t *testing.T) {
	change, err := ParseStatus(Homework{Name: strPtr("hw1"), Status: strPtr("approved")})
	require.NoError(t, err)

	assert.Equal(t, "hw1", change.Name)
	assert.Equal(t, StatusApproved, change.Status)
	assert.Equal(t, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`, change.Message)
}

func TestParseStatus_AllVerdicts(t *testing.T) {
	cases := []struct {
		status  string
		verdict string
	}{
		{"approved", "Работа проверена: ревьюеру всё понравилось. Ура!"},
		{"reviewing", "Работа взята на проверку ревьюером."},
		{"rejected", "Работа проверена: у ревьюера есть замечания."},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			change, err := ParseStatus(Homework{Name: strPtr("final project"), Status: strPtr(tc.status)})
			require.NoError(t, err)
			assert.Contains(t, change.Message, `"final project"`)
			assert.Contains(t, change.Message, tc.verdict)
		})
	}
}

func TestParseStatus_UnknownStatusIsHardError(t *testing.T) {
	_, err := ParseStatus(Homework{Name: strPtr("hw1"), Status: strPtr("resubmitted")})
	require.Error(t, err)

	var unknownErr *UnknownStatusError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "resubmitted", unknownErr.Status)
}

func TestParseStatus_MissingFields(t *testing.T) {
	var missingErr *MissingFieldError

	_, err := ParseStatus(Homework{Status: strPtr("approved")})
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "homework_name", missingErr.Field)

	_, err = ParseStatus(Homework{Name: strPtr("hw1")})
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "status", missingErr.Field)
}

func TestStatusKnown(t *testing.T) {
	assert.True(t, StatusApproved.Known())
	assert.True(t, StatusReviewing.Known())
	assert.True(t, StatusRejected.Known())
	assert.False(t, Status("resubmitted").Known())
	assert.False(t, Status("").Known())
}

func TestCheckResponse_WellFormed(t *testing.T) {
	raw := []byte(`{"homeworks":[{"id":7,"homework_name":"hw1","status":"approved"}],"current_date":1000}`)

	review, err := CheckResponse(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, review.UpdatedAt)

	latest := review.Latest()
	require.NotNil(t, latest)
	require.NotNil(t, latest.Name)
	assert.Equal(t, "hw1", *latest.Name)
}

func TestCheckResponse_EmptyHomeworksIsNotAnError(t *testing.T) {
	review, err := CheckResponse([]byte(`{"homeworks":[],"current_date":1000}`))
	require.NoError(t, err)
	assert.Nil(t, review.Latest())
}

func TestCheckResponse_HomeworksNotAList(t *testing.T) {
	_, err := CheckResponse([]byte(`{"homeworks":"not-a-list","current_date":1000}`))
	require.Error(t, err)

	var mismatchErr *TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, "homeworks", mismatchErr.Field)
}

func TestCheckResponse_TopLevelNotAnObject(t *testing.T) {
	var mismatchErr *TypeMismatchError

	_, err := CheckResponse([]byte(`[{"homeworks":[]}]`))
	require.ErrorAs(t, err, &mismatchErr)

	_, err = CheckResponse([]byte(`null`))
	require.ErrorAs(t, err, &mismatchErr)
}

func TestCheckResponse_MissingFields(t *testing.T) {
	var missingErr *MissingFieldError

	_, err := CheckResponse([]byte(`{"current_date":1000}`))
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "homeworks", missingErr.Field)

	_, err = CheckResponse([]byte(`{"homeworks":[]}`))
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "current_date", missingErr.Field)
}

func TestCheckResponse_DateUpdatedFallback(t *testing.T) {
	review, err := CheckResponse([]byte(`{"homeworks":[],"date_updated":2000}`))
	require.NoError(t, err)
	assert.EqualValues(t, 2000, review.UpdatedAt)
}

func TestCheckResponse_DateNotANumber(t *testing.T) {
	_, err := CheckResponse([]byte(`{"homeworks":[],"current_date":"yesterday"}`))

	var mismatchErr *TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, "current_date", mismatchErr.Field)
}

package statuses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Practicum-HomeworkBot/internal/domain"
)

func TestCheckResponse_NotAnObject(t *testing.T) {
	svc := NewService()

	for _, response := range []any{nil, "string", 42.0, []any{}} {
		_, err := svc.CheckResponse(response)
		assert.ErrorIs(t, err, ErrUnexpectedType)
	}
}

func TestCheckResponse_NoHomeworksKey(t *testing.T) {
	svc := NewService()

	_, err := svc.CheckResponse(map[string]any{"form_date": 1000.0})
	assert.ErrorIs(t, err, ErrNoHomeworksKey)
}

func TestCheckResponse_HomeworksNotList(t *testing.T) {
	svc := NewService()

	_, err := svc.CheckResponse(map[string]any{"homeworks": map[string]any{}})
	assert.ErrorIs(t, err, ErrHomeworksNotList)
}

func TestCheckResponse_EmptyList(t *testing.T) {
	svc := NewService()

	homeworks, err := svc.CheckResponse(map[string]any{"homeworks": []any{}, "form_date": 1000.0})
	require.NoError(t, err)
	assert.Empty(t, homeworks)
}

func TestCheckResponse_ReturnsRecords(t *testing.T) {
	svc := NewService()

	homeworks, err := svc.CheckResponse(map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "approved"},
			map[string]any{"homework_name": "hw2", "status": "reviewing"},
		},
		"form_date": 1000.0,
	})
	require.NoError(t, err)
	require.Len(t, homeworks, 2)
	assert.Equal(t, "hw1", homeworks[0][domain.KeyHomeworkName])
	assert.Equal(t, "hw2", homeworks[1][domain.KeyHomeworkName])
}

func TestParseStatus_MissingName(t *testing.T) {
	svc := NewService()

	_, err := svc.ParseStatus(domain.Homework{"status": "approved"})
	assert.ErrorIs(t, err, ErrNoHomeworkName)
}

func TestParseStatus_MissingStatus(t *testing.T) {
	svc := NewService()

	_, err := svc.ParseStatus(domain.Homework{"homework_name": "hw1"})
	assert.ErrorIs(t, err, ErrNoStatus)
}

func TestParseStatus_UnknownStatus(t *testing.T) {
	svc := NewService()

	_, err := svc.ParseStatus(domain.Homework{"homework_name": "hw1", "status": "weird"})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseStatus_NilRecord(t *testing.T) {
	svc := NewService()

	// Пустой батч проходит через разбор как nil-запись
	_, err := svc.ParseStatus(nil)
	assert.ErrorIs(t, err, ErrNoHomeworkName)
}

func TestParseStatus_Verdicts(t *testing.T) {
	svc := NewService()

	tests := []struct {
		status  string
		message string
	}{
		{
			status:  "approved",
			message: `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			status:  "reviewing",
			message: `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`,
		},
		{
			status:  "rejected",
			message: `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			message, err := svc.ParseStatus(domain.Homework{
				"homework_name": "hw1",
				"status":        tt.status,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.message, message)
		})
	}
}

package practicum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeworkStatuses_Success(t *testing.T) {
	var gotAuth, gotFromDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFromDate = r.URL.Query().Get("from_date")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"homeworks": [{"homework_name": "hw1", "status": "approved"}], "form_date": 1000}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 5*time.Second)

	answer, err := client.HomeworkStatuses(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "OAuth test-token", gotAuth)
	assert.Equal(t, "42", gotFromDate)
	assert.Equal(t, int64(1000), answer.FormDate)

	body, ok := answer.Body.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, body, "homeworks")
}

func TestHomeworkStatuses_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // закрываем сразу, чтобы получить сетевую ошибку

	client := NewClient(server.URL, "test-token", time.Second)

	answer, err := client.HomeworkStatuses(context.Background(), 0)
	assert.Nil(t, answer)
	assert.ErrorIs(t, err, ErrRequest)
}

func TestHomeworkStatuses_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)

	answer, err := client.HomeworkStatuses(context.Background(), 0)
	assert.Nil(t, answer)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestHomeworkStatuses_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)

	answer, err := client.HomeworkStatuses(context.Background(), 0)
	assert.Nil(t, answer)
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestHomeworkStatuses_NoFormDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"homeworks": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)

	answer, err := client.HomeworkStatuses(context.Background(), 0)
	assert.Nil(t, answer)
	assert.ErrorIs(t, err, ErrNoFormDate)
}

func TestHomeworkStatuses_FormDateNotNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"homeworks": [], "form_date": "yesterday"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)

	answer, err := client.HomeworkStatuses(context.Background(), 0)
	assert.Nil(t, answer)
	assert.ErrorIs(t, err, ErrNoFormDate)
}

func TestHomeworkStatuses_NonObjectBody(t *testing.T) {
	// Тело-не-объект — задача валидатора, клиент отдаёт его как есть
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[1, 2, 3]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)

	answer, err := client.HomeworkStatuses(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), answer.FormDate)
	assert.IsType(t, []any{}, answer.Body)
}

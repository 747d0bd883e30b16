package shared

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Topic     string `json:"topic"      validate:"required"`
	WordCount int    `json:"word_count" validate:"omitempty,min=50,max=1000"`
}

type selfValidating struct{ err error }

func (s selfValidating) Validate() error { return s.err }

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{name: "valid json", requestBody: `{"topic": "the sea", "word_count": 150}`},
		{name: "invalid json", requestBody: `{"topic": "x",}`, wantErr: true, errContains: "invalid character"},
		{name: "empty body", requestBody: "", wantErr: true, errContains: "EOF"},
		{name: "wrong type", requestBody: `{"word_count": "many"}`, wantErr: true, errContains: "cannot unmarshal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var target sampleRequest
			err := DecodeJSON(req, &target)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sampleRequest{Topic: "the sea", WordCount: 150}, target)
		})
	}
}

func TestDecodeJSONBodyLimit(t *testing.T) {
	body := `{"topic": "` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))

	var target sampleRequest
	assert.Error(t, DecodeJSON(req, &target))
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&sampleRequest{Topic: "rain"}))
	assert.NoError(t, ValidateRequest(&sampleRequest{Topic: "rain", WordCount: 50}))

	err := ValidateRequest(&sampleRequest{WordCount: 10})
	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve, 2)
	assert.Equal(t, "topic", ve[0].Field(), "json names are reported")
	assert.Equal(t, "word_count", ve[1].Field())
	assert.Equal(t, "min", ve[1].Tag())

	custom := errors.New("custom failure")
	assert.Equal(t, custom, ValidateRequest(selfValidating{err: custom}))
}

package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "test", "age": 30}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test", "age": 30,}`, // trailing comma
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: "EOF",
		},
		{
			name:        "wrong type",
			requestBody: `{"name": 5}`,
			wantErr:     true,
			errContains: "cannot unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.requestBody))

			var target struct {
				Name string `json:"name"`
				Age  int    `json:"age"`
			}
			err := DecodeJSON(req, &target)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", target.Name)
			assert.Equal(t, 30, target.Age)
		})
	}
}

type colorRequest struct {
	Name  string  `json:"name"  validate:"required,max=5"`
	Color *string `json:"color" validate:"omitempty,rgbhex"`
}

type selfValidating struct{}

func (selfValidating) Validate() error { return errors.New("custom") }

func TestValidateRequest(t *testing.T) {
	color := func(s string) *string { return &s }

	tests := []struct {
		name      string
		req       interface{}
		wantField string
	}{
		{name: "valid", req: colorRequest{Name: "ok", Color: color("#A1b2C3")}},
		{name: "no color", req: colorRequest{Name: "ok"}},
		{name: "missing name", req: colorRequest{}, wantField: "name"},
		{name: "long name", req: colorRequest{Name: "toolong"}, wantField: "name"},
		{name: "short color", req: colorRequest{Name: "ok", Color: color("#FFF")}, wantField: "color"},
		{name: "named color", req: colorRequest{Name: "ok", Color: color("red")}, wantField: "color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tc.wantField, verrs[0].Field())
		})
	}

	assert.EqualError(t, ValidateRequest(selfValidating{}), "custom")
}

func TestMustRegisterValidation(t *testing.T) {
	v := validator.New()
	alwaysValid := func(fl validator.FieldLevel) bool { return true }

	assert.NotPanics(t, func() { mustRegisterValidation(v, "anything", alwaysValid) })
	assert.Panics(t, func() { mustRegisterValidation(v, "", alwaysValid) })
}

package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnaumov/person-api/internal/errs"
)

type samplePayload struct {
	ID        string `json:"id" validate:"required,uuid"`
	FirstName string `json:"first_name" validate:"required"`
	Avatar    string `json:"avatar" validate:"required,url"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

// statusPayload forces a specific HTTP status from Validate, the way
// the name-search rules do.
type statusPayload struct {
	Q string `query:"q"`
}

func (p *statusPayload) Validate() error {
	if IsDigits(p.Q) {
		return errs.NewUnprocessableEntityError("Invalid input parameter", []errs.FieldError{
			{Field: "q", Reason: "must not be numeric"},
		})
	}
	return nil
}

func newContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{
			desc: "valid payload passes",
			body: `{"id":"0dd63e57-0b5f-44bc-94ae-5c1b4947cb49",` +
				`"first_name":"Abdel","avatar":"http://example.com/a.png"}`,
		},
		{
			desc:       "json type mismatch surfaces the field",
			body:       `{"id":"0dd63e57-0b5f-44bc-94ae-5c1b4947cb49","first_name":123,"avatar":"http://example.com/a.png"}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"first_name"},
		},
		{
			desc:       "every missing field is reported",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"id", "first_name", "avatar"},
		},
		{
			desc:       "malformed uuid is reported",
			body:       `{"id":"not-a-uuid","first_name":"Abdel","avatar":"http://example.com/a.png"}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"id"},
		},
	}

	for i, tc := range testCases {
		c := newContext(t, http.MethodPost, "/person", tc.body)

		err := BindAndValidate(c, &samplePayload{})
		if tc.wantStatus == 0 {
			assert.NoError(t, err, "TEST[%d] %s", i, tc.desc)
			continue
		}

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, "TEST[%d] %s", i, tc.desc)
		assert.Equal(t, tc.wantStatus, httpErr.Status, "TEST[%d] %s", i, tc.desc)
		assert.Equal(t, errs.CodeValidation, httpErr.Code, "TEST[%d] %s", i, tc.desc)

		var gotFields []string
		for _, detail := range httpErr.Details {
			gotFields = append(gotFields, detail.Field)
		}
		assert.ElementsMatch(t, tc.wantFields, gotFields, "TEST[%d] %s", i, tc.desc)
	}
}

func TestBindAndValidate_HTTPErrorPassesThrough(t *testing.T) {
	c := newContext(t, http.MethodGet, "/name_search?q=123", "")

	err := BindAndValidate(c, &statusPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Details, 1)
	assert.Equal(t, "q", httpErr.Details[0].Field)
}

func TestBindAndValidate_InvalidJSON(t *testing.T) {
	c := newContext(t, http.MethodPost, "/person", `{"id":`)

	err := BindAndValidate(c, &samplePayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0dd63e57-0b5f-44bc-94ae-5c1b4947cb49"))
	assert.False(t, IsValidUUID("0dd63e57"))
	assert.False(t, IsValidUUID(""))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("123"))
	assert.True(t, IsDigits("١٢٣"), "non-ASCII digit runes count as digits")
	assert.False(t, IsDigits("12a"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("Abdel"))
}

func TestTrimmedEmpty(t *testing.T) {
	assert.True(t, TrimmedEmpty(""))
	assert.True(t, TrimmedEmpty("   "))
	assert.False(t, TrimmedEmpty(" a "))
}

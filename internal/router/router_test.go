package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnaumov/person-api/internal/config"
	"github.com/dnaumov/person-api/internal/handler"
	"github.com/dnaumov/person-api/internal/middleware"
	"github.com/dnaumov/person-api/internal/repository"
	"github.com/dnaumov/person-api/internal/server"
	"github.com/dnaumov/person-api/internal/service"
)

// errorBody is the uniform error envelope every failing request gets.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"details"`
}

// newTestAPI wires a full application stack against a fresh seeded
// store, with observability disabled and the rate limiter off.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	log := zerolog.Nop()

	return newTestAPIWithLogger(t, &log)
}

// newTestAPIWithLogger is newTestAPI with a caller-supplied logger,
// for tests that inspect log output.
func newTestAPIWithLogger(t *testing.T, log *zerolog.Logger) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        30,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	srv, err := server.New(cfg, log, nil)
	require.NoError(t, err)

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	require.NoError(t, err)

	return New(srv, middleware.NewMiddlewares(srv), handler.NewHandlers(srv, services))
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

const validPersonBody = `{
	"id": "b9e8b381-1f07-4a6e-b7a8-3a4486ab9e8b",
	"first_name": "Nora",
	"last_name": "Quinn",
	"graduation_year": 2001,
	"address": "12 Hill Road",
	"city": "Leeds",
	"zip": "LS1 4AP",
	"country": "United Kingdom",
	"avatar": "http://example.com/nora.png"
}`

func TestStatusEndpoint(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Welcome to the Person API Service", body["message"])
	assert.Equal(t, "test", body["environment"])
}

func TestNameSearch(t *testing.T) {
	e := newTestAPI(t)

	testCases := []struct {
		desc       string
		target     string
		wantStatus int
		wantNames  []string
		wantField  string
	}{
		{
			desc:       "exact first name",
			target:     "/name_search?q=Abdel",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Abdel"},
		},
		{
			desc:       "case-insensitive match",
			target:     "/name_search?q=abdel",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Abdel"},
		},
		{
			desc:       "substring matches last names too",
			target:     "/name_search?q=rr",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Ferdy"},
		},
		{
			desc:       "no match is an empty array, not an error",
			target:     "/name_search?q=Zzzzz",
			wantStatus: http.StatusOK,
			wantNames:  []string{},
		},
		{
			desc:       "numeric fragment is rejected",
			target:     "/name_search?q=123",
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "q",
		},
		{
			desc:       "missing fragment is rejected",
			target:     "/name_search",
			wantStatus: http.StatusBadRequest,
			wantField:  "q",
		},
	}

	for i, tc := range testCases {
		rec := doRequest(e, http.MethodGet, tc.target, "")
		require.Equal(t, tc.wantStatus, rec.Code, "TEST[%d] %s", i, tc.desc)

		if tc.wantStatus != http.StatusOK {
			body := decodeError(t, rec)
			assert.Equal(t, "validation_error", body.Error, "TEST[%d] %s", i, tc.desc)
			require.Len(t, body.Details, 1, "TEST[%d] %s", i, tc.desc)
			assert.Equal(t, tc.wantField, body.Details[0].Field, "TEST[%d] %s", i, tc.desc)
			continue
		}

		var matches []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches), "TEST[%d] %s", i, tc.desc)
		require.Len(t, matches, len(tc.wantNames), "TEST[%d] %s", i, tc.desc)

		for j, name := range tc.wantNames {
			assert.Equal(t, name, matches[j]["first_name"], "TEST[%d] %s", i, tc.desc)
		}
	}
}

func TestCreatePerson(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/person", validPersonBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "b9e8b381-1f07-4a6e-b7a8-3a4486ab9e8b", created["id"])
	assert.Equal(t, "Nora", created["first_name"])

	// The record is now searchable and counted.
	rec = doRequest(e, http.MethodGet, "/name_search?q=Nora", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	assert.Len(t, matches, 1)

	rec = doRequest(e, http.MethodGet, "/count", "")
	assert.JSONEq(t, `{"count": 6}`, rec.Body.String())
}

func TestCreatePerson_ZeroGraduationYear(t *testing.T) {
	e := newTestAPI(t)

	// 0 is a present, well-typed year and must not be treated as a
	// missing field.
	body := strings.Replace(validPersonBody, `"graduation_year": 2001`, `"graduation_year": 0`, 1)

	rec := doRequest(e, http.MethodPost, "/person", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, float64(0), created["graduation_year"])
}

func TestCreatePerson_DuplicateID(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/person", validPersonBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/person", validPersonBody)
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "conflict", body.Error)

	// The collision must not have changed the record set.
	rec = doRequest(e, http.MethodGet, "/count", "")
	assert.JSONEq(t, `{"count": 6}`, rec.Body.String())
}

func TestCreatePerson_Validation(t *testing.T) {
	e := newTestAPI(t)

	testCases := []struct {
		desc       string
		body       string
		wantFields []string
	}{
		{
			desc: "numeric value in a text field",
			body: strings.Replace(validPersonBody, `"Nora"`, `123`, 1),
			wantFields: []string{
				"first_name",
			},
		},
		{
			desc: "missing fields are all reported",
			body: `{"id": "b9e8b381-1f07-4a6e-b7a8-3a4486ab9e8b"}`,
			wantFields: []string{
				"first_name", "last_name", "graduation_year",
				"address", "city", "zip", "country", "avatar",
			},
		},
		{
			desc:       "malformed id",
			body:       strings.Replace(validPersonBody, "b9e8b381-1f07-4a6e-b7a8-3a4486ab9e8b", "not-a-uuid", 1),
			wantFields: []string{"id"},
		},
		{
			desc:       "avatar must be a url",
			body:       strings.Replace(validPersonBody, "http://example.com/nora.png", "not a url", 1),
			wantFields: []string{"avatar"},
		},
	}

	for i, tc := range testCases {
		rec := doRequest(e, http.MethodPost, "/person", tc.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "TEST[%d] %s", i, tc.desc)

		body := decodeError(t, rec)
		assert.Equal(t, "validation_error", body.Error, "TEST[%d] %s", i, tc.desc)

		var gotFields []string
		for _, detail := range body.Details {
			gotFields = append(gotFields, detail.Field)
		}
		assert.ElementsMatch(t, tc.wantFields, gotFields, "TEST[%d] %s", i, tc.desc)
	}

	// None of the rejected payloads made it into the store.
	rec := doRequest(e, http.MethodGet, "/count", "")
	assert.JSONEq(t, `{"count": 5}`, rec.Body.String())
}

func TestGetPerson(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/person/0dd63e57-0b5f-44bc-94ae-5c1b4947cb49", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var person map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &person))
	assert.Equal(t, "Abdel", person["first_name"])
	assert.Equal(t, "Duke", person["last_name"])

	rec = doRequest(e, http.MethodGet, "/person/b9e8b381-1f07-4a6e-b7a8-3a4486ab9e8b", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)

	rec = doRequest(e, http.MethodGet, "/person/not-a-uuid", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error)
}

func TestListPersons(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/person", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var persons []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &persons))
	require.Len(t, persons, 5)
	assert.Equal(t, "Tanya", persons[0]["first_name"])
	assert.Equal(t, "Corby", persons[4]["first_name"])
}

func TestDeletePerson(t *testing.T) {
	e := newTestAPI(t)

	const id = "3b58aade-8415-49dd-88db-8d7bce14932a"

	rec := doRequest(e, http.MethodDelete, "/person/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"message": "Person with ID %s deleted"}`, id), rec.Body.String())

	// A repeated delete of the same id is a 404, not a silent success.
	rec = doRequest(e, http.MethodDelete, "/person/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Error)
	assert.Equal(t, "Person not found", body.Message)

	rec = doRequest(e, http.MethodGet, "/count", "")
	assert.JSONEq(t, `{"count": 4}`, rec.Body.String())
}

func TestDeletePerson_InvalidIDs(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodDelete, "/person/b9e8b381-1f07-4a6e-b7a8-3a4486ab9e8b", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)

	rec = doRequest(e, http.MethodDelete, "/person/not-a-uuid", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error)
}

func TestUnknownRoute(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Error)
	assert.Equal(t, "API not found", body.Message)
}

func TestForcedFailureIsSanitized(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/test500", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "internal_error", body.Error)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
	assert.NotContains(t, rec.Body.String(), "forced failure")
}

func TestRequestLogCarriesSingleRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := newTestAPIWithLogger(t, &log)

	doRequest(e, http.MethodGet, "/", "")

	var apiLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, `"message":"API"`) {
			apiLine = line
			break
		}
	}

	require.NotEmpty(t, apiLine, "per-request log line missing")
	assert.Equal(t, 1, strings.Count(apiLine, `"request_id"`))
}

func TestNoContentEndpoint(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/no_content", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/minashiro/recruit-admin/internal/clients/auth"
	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

type memoryAncestors struct {
	advertisementCompanies map[string]string
}

func newMemoryAncestors() *memoryAncestors {
	return &memoryAncestors{advertisementCompanies: map[string]string{}}
}

func (m *memoryAncestors) RecordAdvertisementCompany(_ context.Context, advertisementID, companyID string) error {
	m.advertisementCompanies[advertisementID] = companyID
	return nil
}

func (m *memoryAncestors) RecordRequirementAncestors(_ context.Context, _, _, _ string) error {
	return nil
}

func (m *memoryAncestors) AdvertisementCompany(_ context.Context, advertisementID string) (string, error) {
	return m.advertisementCompanies[advertisementID], nil
}

func (m *memoryAncestors) RequirementAncestors(_ context.Context, _ string) (string, string, error) {
	return "", "", nil
}

func (m *memoryAncestors) ForgetAdvertisement(_ context.Context, advertisementID string) error {
	delete(m.advertisementCompanies, advertisementID)
	return nil
}

func (m *memoryAncestors) ForgetRequirement(_ context.Context, _ string) error {
	return nil
}

func newTestServer(mockClient *mockHTTPClient, ancestors provider.AncestorStore) (*Server, *auth.TokenStore) {

	backendClient := backend.NewClient("http://localhost:3000")
	backendClient.SetHTTPClient(mockClient)

	authClient := auth.NewClient("http://localhost:4000")
	authClient.SetHTTPClient(mockClient)

	tokens := auth.NewTokenStore()
	prov := provider.New(backendClient, ancestors, EventBus.New(), time.Minute)
	return NewServer(prov, authClient, tokens, 0), tokens
}

func Test_Gateway_GetOne_ReturnsRecordEnvelope(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://localhost:3000/api/companies/7/advertisements/101"
	})).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(`{"id": 101, "title": "新卒採用"}`)),
	}, nil)

	ancestors := newMemoryAncestors()
	ancestors.advertisementCompanies["101"] = "7"
	server, _ := newTestServer(mockClient, ancestors)

	req := httptest.NewRequest(http.MethodGet, "/admin/advertisements/101", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	assert.Contains(rec.Body.String(), `"id":"101"`)
	assert.Contains(rec.Body.String(), "新卒採用")
}

func Test_Gateway_GetOne_MissingAncestryMapsToConflict(t *testing.T) {

	assert := assert.New(t)

	server, _ := newTestServer(&mockHTTPClient{}, newMemoryAncestors())

	req := httptest.NewRequest(http.MethodGet, "/admin/requirements/42", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	assert.Equal(http.StatusConflict, rec.Code)
	assert.Contains(rec.Body.String(), "ancestry")
}

func Test_Gateway_Create_MissingCompanyIDMapsToBadRequest(t *testing.T) {

	assert := assert.New(t)

	server, _ := newTestServer(&mockHTTPClient{}, newMemoryAncestors())

	req := httptest.NewRequest(http.MethodPost, "/admin/advertisements",
		strings.NewReader(`{"title": "no company"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	assert.Equal(http.StatusBadRequest, rec.Code)
}

func Test_Gateway_Login_StoresSessionToken(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://localhost:4000/api/auth/google/login"
	})).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(`{"token": "session-token"}`)),
	}, nil)

	server, tokens := newTestServer(mockClient, newMemoryAncestors())

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"credential": "google-jwt"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	assert.Equal(http.StatusNoContent, rec.Code)
	assert.Equal("session-token", tokens.Token())
}


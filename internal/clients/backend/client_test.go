package backend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testBaseURL = "http://localhost:3000"

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func fixtureResponse(name string) (*http.Response, error) {
	file, err := os.ReadFile("testdata/" + name)

	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBuffer(file)),
	}, err
}

func emptyResponse(statusCode int) (*http.Response, error) {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBuffer(nil)),
	}, nil
}

func Test_BackendClient_GetAccounts_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == testBaseURL+"/api/admin/companies/accounts?"+
			"name=%E3%82%B9%E3%82%BA%E3%82%AD&page=1&per_page=10"
	})).Return(fixtureResponse("get_accounts.json"))

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)

	accounts, total, err := client.GetAccounts(context.Background(), "スズキ", 1, 10)
	assert.NoError(err)

	assert.Equal(37, total)
	assert.Len(accounts, 2)
	assert.Equal("11", accounts[0].ID())
	assert.Equal("スズキ商事株式会社", accounts[0].GetString("name"))
	assert.Equal("12", accounts[1].ID())
}

func Test_BackendClient_GetAdminAdvertisements_YearIsMandatory(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == testBaseURL+"/api/admin/advertisements?page=2&per_page=25&year=2028"
	})).Return(fixtureResponse("get_advertisements.json"))

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)

	advertisements, total, err := client.GetAdminAdvertisements(context.Background(), 2028, "", 2, 25)
	assert.NoError(err)
	assert.Equal(2, total)
	assert.Equal("101", advertisements[0].ID())
	assert.Equal("7", advertisements[0].GetString("company_id"))
}

func Test_BackendClient_GetAdvertisement_UsesNestedPath(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == testBaseURL+"/api/companies/7/advertisements/101"
	})).Return(fixtureResponse("get_advertisement.json"))

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)

	advertisement, err := client.GetAdvertisement(context.Background(), "7", "101")
	assert.NoError(err)
	assert.Equal("101", advertisement.ID())
	assert.Equal("2028年度 新卒総合職", advertisement.GetString("title"))
}

func Test_BackendClient_GetMasterList_DecodesBareArray(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == testBaseURL+"/api/list/industries"
	})).Return(fixtureResponse("get_master_list.json"))

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)

	industries, err := client.GetMasterList(context.Background(), "industries")
	assert.NoError(err)
	assert.Len(industries, 3)
	assert.Equal("3", industries[0].ID())
	assert.Equal("IT", industries[0].GetString("industry_name"))
}

func Test_BackendClient_BulkApprove_RepeatsQueryParameter(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPut &&
			req.URL.String() == testBaseURL+"/api/admin/advertisements/approval?"+
				"advertisement_ids=101&advertisement_ids=102"
	})).Return(emptyResponse(204))

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)

	err := client.BulkApproveAdvertisements(context.Background(), []string{"101", "102"})
	assert.NoError(err)
}

func Test_BackendClient_UpdateAccount_EmptyBodyYieldsNilRecord(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPut &&
			req.URL.String() == testBaseURL+"/api/admin/companies/11/accounts"
	})).Return(emptyResponse(200))

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)

	record, err := client.UpdateAccount(context.Background(), "11", Record{"name": "updated"})
	assert.NoError(err)
	assert.Nil(record)
}

func Test_BackendClient_ErrorStatusIncludesBody(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 422,
		Body:       io.NopCloser(bytes.NewBufferString(`{"error":"year is required"}`)),
	}, nil)

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)

	_, err := client.GetCompany(context.Background(), "7")
	assert.Error(err)
	assert.Contains(err.Error(), "422")
	assert.Contains(err.Error(), "year is required")
}

type staticTokenSource struct {
	token string
}

func (s *staticTokenSource) Token() string { return s.token }

func Test_BackendClient_SendsBearerToken(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Authorization") == "Bearer session-token"
	})).Return(fixtureResponse("get_advertisement.json"))

	client := NewClient(testBaseURL)
	client.SetHTTPClient(mockClient)
	client.SetTokenSource(&staticTokenSource{token: "session-token"})

	_, err := client.GetCompany(context.Background(), "7")
	assert.NoError(err)
}

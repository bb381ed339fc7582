package auth

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

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

func Test_AuthClient_Login_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != "http://localhost:4000/api/auth/google/login" {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(body))
		return string(body) == `{"provider":"google","credential":"google-jwt"}`
	})).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(`{"token": "session-token"}`)),
	}, nil)

	client := NewClient("http://localhost:4000")
	client.SetHTTPClient(mockClient)

	token, err := client.Login(context.Background(), "google-jwt")
	assert.NoError(err)
	assert.Equal("session-token", token)
}

func Test_AuthClient_Login_EmptyCredentialFailsBeforeAnyRequest(t *testing.T) {

	mockClient := &mockHTTPClient{}
	client := NewClient("http://localhost:4000")
	client.SetHTTPClient(mockClient)

	_, err := client.Login(context.Background(), "")
	assert.Error(t, err)
	mockClient.AssertNotCalled(t, "Do", mock.Anything)
}

func Test_AuthClient_Login_MissingTokenIsAnError(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
	}, nil)

	client := NewClient("http://localhost:4000")
	client.SetHTTPClient(mockClient)

	_, err := client.Login(context.Background(), "google-jwt")
	assert.ErrorContains(t, err, "no token")
}

func Test_TokenStore_SetAndClear(t *testing.T) {

	assert := assert.New(t)

	store := NewTokenStore()
	assert.Equal("", store.Token())

	store.SetToken("session-token")
	assert.Equal("session-token", store.Token())

	store.Clear()
	assert.Equal("", store.Token())
}

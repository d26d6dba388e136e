package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jerseystore/storefront-go/errors"
)

func TestUpdateUser_Success(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id_user":3,"name":"Ana Maria","email":"ana@example.com"}`))
	}))

	user, err := client.UpdateUser(context.Background(), 3, UpdateUserInput{Name: "Ana Maria"})
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", gotBody["name"])
	_, emailSent := gotBody["email"]
	assert.False(t, emailSent, "empty fields must be omitted from the patch")

	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "Ana Maria", user.Name)
}

func TestUpdateUser_NothingToUpdate(t *testing.T) {
	var requests int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.UpdateUser(context.Background(), 3, UpdateUserInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, 0, requests)
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := client.UpdateUser(context.Background(), 3, UpdateUserInput{Email: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestUpdatePassword_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/update-password/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Password updated successfully"}`))
	}))

	msg, err := client.UpdatePassword(context.Background(), 3, UpdatePasswordInput{Password: "newsecret"})
	require.NoError(t, err)
	assert.Equal(t, "Password updated successfully", msg)
}

func TestUpdatePassword_DefaultMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	msg, err := client.UpdatePassword(context.Background(), 3, UpdatePasswordInput{Password: "newsecret"})
	require.NoError(t, err)
	assert.Equal(t, "password updated", msg)
}

func TestUpdatePassword_TooShort(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_, err := client.UpdatePassword(context.Background(), 3, UpdatePasswordInput{Password: "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6")
}

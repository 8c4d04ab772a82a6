//go:build unit
// +build unit

package v1

import (
	"fmt"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

func testKeySet() *keysets.KeySet {
	return &keysets.KeySet{
		ID:              "1b4e28ba-2fa1-41d2-883f-0016d3cca427",
		Name:            "textbook",
		P:               "61",
		Q:               "53",
		N:               "3233",
		Phi:             "3120",
		E:               "17",
		D:               "2753",
		DateTimeCreated: time.Now(),
	}
}

func TestKeySetHandler_Create(t *testing.T) {
	service := new(MockKeySetService)
	r := setupRouter(t, service)

	service.On("Create", mock.Anything, "textbook", "61", "53", "17", "").Return(testKeySet(), nil)

	w := perform(r, "POST", "/keysets", `{"name":"textbook","p":"61","q":"53","e":"17"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	response := decode[KeySetResponse](t, w)
	assert.Equal(t, "2753", response.D)
	service.AssertExpectations(t)
}

func TestKeySetHandler_Create_Errors(t *testing.T) {
	service := new(MockKeySetService)
	r := setupRouter(t, service)

	w := perform(r, "POST", "/keysets", `{"p":"61","q":"53","e":"17"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.On("Create", mock.Anything, "bad", "61", "53", "17", "5").
		Return(nil, fmt.Errorf("%w: e=17, d=5", classical.ErrInconsistentKey))
	w = perform(r, "POST", "/keysets", `{"name":"bad","p":"61","q":"53","e":"17","d":"5"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestKeySetHandler_List(t *testing.T) {
	service := new(MockKeySetService)
	r := setupRouter(t, service)

	service.On("List", mock.Anything, mock.MatchedBy(func(q *keysets.KeySetQuery) bool {
		return q.Name == "textbook" && q.Limit == 5 && q.SortOrder == "asc"
	})).Return([]*keysets.KeySet{testKeySet()}, nil)

	w := perform(r, "GET", "/keysets?name=textbook&limit=5&sortOrder=asc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]KeySetResponse](t, w), 1)

	w = perform(r, "GET", "/keysets?limit=five", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, "GET", "/keysets?sortBy=d", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeySetHandler_GetAndDelete(t *testing.T) {
	service := new(MockKeySetService)
	r := setupRouter(t, service)
	keySet := testKeySet()

	service.On("GetByID", mock.Anything, keySet.ID).Return(keySet, nil)
	service.On("GetByID", mock.Anything, "missing").Return(nil, fmt.Errorf("%w: id missing", keysets.ErrNotFound))
	service.On("DeleteByID", mock.Anything, keySet.ID).Return(nil)

	w := perform(r, "GET", "/keysets/"+keySet.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, keySet.ID, decode[KeySetResponse](t, w).ID)

	w = perform(r, "GET", "/keysets/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, "DELETE", "/keysets/"+keySet.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestKeySetHandler_EncryptDecrypt(t *testing.T) {
	service := new(MockKeySetService)
	r := setupRouter(t, service)
	keySet := testKeySet()

	service.On("Encrypt", mock.Anything, keySet.ID, "65").
		Return(&classical.Transformation{Input: big.NewInt(65), Output: big.NewInt(2790)}, nil)
	service.On("Decrypt", mock.Anything, keySet.ID, "2790").
		Return(&classical.Transformation{Input: big.NewInt(2790), Output: big.NewInt(65)}, nil)

	w := perform(r, "POST", "/keysets/"+keySet.ID+"/encrypt", `{"value":"65"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2790", decode[RSATransformResponse](t, w).Output)

	w = perform(r, "POST", "/keysets/"+keySet.ID+"/decrypt", `{"value":"2790"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "65", decode[RSATransformResponse](t, w).Output)

	w = perform(r, "POST", "/keysets/"+keySet.ID+"/encrypt", `{"value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

// KeySetHandler defines the stored key set endpoints
type KeySetHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type keySetHandler struct {
	keySetService keysets.KeySetService
}

// NewKeySetHandler creates a new KeySetHandler
func NewKeySetHandler(keySetService keysets.KeySetService) KeySetHandler {
	return &keySetHandler{keySetService: keySetService}
}

// Create handles the POST request deriving and storing a key set
// @Summary Store a derived RSA key set
// @Tags KeySet
// @Accept json
// @Produce json
// @Param requestBody body CreateKeySetRequest true "name, p, q and e and/or d"
// @Success 201 {object} KeySetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keysets [post]
func (handler *keySetHandler) Create(ctx *gin.Context) {
	var request CreateKeySetRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	keySet, err := handler.keySetService.Create(ctx, request.Name, request.P, request.Q, request.E, request.D)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newKeySetResponse(keySet))
}

// List handles the GET request listing key sets with optional query parameters
// @Summary List key sets
// @Tags KeySet
// @Produce json
// @Param name query string false "Key set name"
// @Param dateTimeCreated query string false "Creation date lower bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "name or date_time_created"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeySetResponse
// @Failure 400 {object} ErrorResponse
// @Router /keysets [get]
func (handler *keySetHandler) List(ctx *gin.Context) {
	query := keysets.NewKeySetQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			abortBadRequest(ctx, "invalid dateTimeCreated: ", err)
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for param, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(param); len(raw) > 0 {
			value, err := strconv.Atoi(raw)
			if err != nil {
				abortBadRequest(ctx, fmt.Sprintf("invalid %s: ", param), err)
				return
			}
			*target = value
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortBadRequest(ctx, "", err)
		return
	}

	list, err := handler.keySetService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	listResponse := []KeySetResponse{}
	for _, keySet := range list {
		listResponse = append(listResponse, newKeySetResponse(keySet))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request retrieving a key set
// @Summary Retrieve a key set by ID
// @Tags KeySet
// @Produce json
// @Param id path string true "Key set ID"
// @Success 200 {object} KeySetResponse
// @Failure 404 {object} ErrorResponse
// @Router /keysets/{id} [get]
func (handler *keySetHandler) GetByID(ctx *gin.Context) {
	keySet, err := handler.keySetService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newKeySetResponse(keySet))
}

// DeleteByID handles the DELETE request removing a key set
// @Summary Delete a key set by ID
// @Tags KeySet
// @Produce json
// @Param id path string true "Key set ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keysets/{id} [delete]
func (handler *keySetHandler) DeleteByID(ctx *gin.Context) {
	keySetID := ctx.Param("id")
	if err := handler.keySetService.DeleteByID(ctx, keySetID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Encrypt handles the POST request encrypting with a stored key set
// @Summary Encrypt with a stored key set
// @Tags KeySet
// @Accept json
// @Produce json
// @Param id path string true "Key set ID"
// @Param requestBody body KeySetTransformRequest true "message"
// @Success 200 {object} RSATransformResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keysets/{id}/encrypt [post]
func (handler *keySetHandler) Encrypt(ctx *gin.Context) {
	var request KeySetTransformRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	result, err := handler.keySetService.Encrypt(ctx, ctx.Param("id"), request.Value)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRSATransformResponse(result))
}

// Decrypt handles the POST request decrypting with a stored key set
// @Summary Decrypt with a stored key set
// @Tags KeySet
// @Accept json
// @Produce json
// @Param id path string true "Key set ID"
// @Param requestBody body KeySetTransformRequest true "ciphertext"
// @Success 200 {object} RSATransformResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keysets/{id}/decrypt [post]
func (handler *keySetHandler) Decrypt(ctx *gin.Context) {
	var request KeySetTransformRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	result, err := handler.keySetService.Decrypt(ctx, ctx.Param("id"), request.Value)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRSATransformResponse(result))
}

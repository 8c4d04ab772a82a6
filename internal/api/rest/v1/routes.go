package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, engine classical.CipherEngine, keySetService keysets.KeySetService) {
	v1 := r.Group(BasePath)

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
	})

	// Cipher Routes
	cipherHandler := NewCipherHandler(engine)
	v1.POST("/rsa/parameters", cipherHandler.DeriveRSAParameters)
	v1.POST("/rsa/encrypt", cipherHandler.EncryptRSA)
	v1.POST("/rsa/decrypt", cipherHandler.DecryptRSA)
	v1.POST("/caesar/encrypt", cipherHandler.EncryptCaesar)
	v1.POST("/caesar/decrypt", cipherHandler.DecryptCaesar)
	v1.POST("/vigenere/encrypt", cipherHandler.EncryptVigenere)
	v1.POST("/vigenere/decrypt", cipherHandler.DecryptVigenere)
	v1.POST("/vigenere/table", cipherHandler.TraceVigenere)
	v1.POST("/polybius/encode", cipherHandler.EncodePolybius)
	v1.POST("/polybius/decode", cipherHandler.DecodePolybius)

	// Key Set Routes
	keySetHandler := NewKeySetHandler(keySetService)
	v1.POST("/keysets", keySetHandler.Create)
	v1.GET("/keysets", keySetHandler.List)
	v1.GET("/keysets/:id", keySetHandler.GetByID)
	v1.DELETE("/keysets/:id", keySetHandler.DeleteByID)
	v1.POST("/keysets/:id/encrypt", keySetHandler.Encrypt)
	v1.POST("/keysets/:id/decrypt", keySetHandler.Decrypt)
}

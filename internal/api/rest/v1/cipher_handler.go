package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
)

// CipherHandler defines the stateless cipher endpoints
type CipherHandler interface {
	DeriveRSAParameters(ctx *gin.Context)
	EncryptRSA(ctx *gin.Context)
	DecryptRSA(ctx *gin.Context)
	EncryptCaesar(ctx *gin.Context)
	DecryptCaesar(ctx *gin.Context)
	EncryptVigenere(ctx *gin.Context)
	DecryptVigenere(ctx *gin.Context)
	TraceVigenere(ctx *gin.Context)
	EncodePolybius(ctx *gin.Context)
	DecodePolybius(ctx *gin.Context)
}

type cipherHandler struct {
	engine classical.CipherEngine
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(engine classical.CipherEngine) CipherHandler {
	return &cipherHandler{engine: engine}
}

// DeriveRSAParameters handles the POST request deriving N, φ(N) and the missing exponent
// @Summary Derive RSA parameters
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSAParametersRequest true "p, q and e and/or d"
// @Success 200 {object} RSAParametersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /rsa/parameters [post]
func (h *cipherHandler) DeriveRSAParameters(ctx *gin.Context) {
	var request RSAParametersRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	params, err := h.engine.RSA().DeriveParameters(request.P, request.Q, request.E, request.D)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRSAParametersResponse(params))
}

// EncryptRSA handles the POST request computing message^e mod p*q
// @Summary Encrypt an integer with RSA
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSAEncryptRequest true "p, q, e and message"
// @Success 200 {object} RSATransformResponse
// @Failure 400 {object} ErrorResponse
// @Router /rsa/encrypt [post]
func (h *cipherHandler) EncryptRSA(ctx *gin.Context) {
	var request RSAEncryptRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	result, err := h.engine.RSA().Encrypt(request.P, request.Q, request.E, request.Message)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRSATransformResponse(result))
}

// DecryptRSA handles the POST request computing ciphertext^d mod p*q
// @Summary Decrypt an integer with RSA
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSADecryptRequest true "p, q, d and ciphertext"
// @Success 200 {object} RSATransformResponse
// @Failure 400 {object} ErrorResponse
// @Router /rsa/decrypt [post]
func (h *cipherHandler) DecryptRSA(ctx *gin.Context) {
	var request RSADecryptRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	result, err := h.engine.RSA().Decrypt(request.P, request.Q, request.D, request.Ciphertext)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRSATransformResponse(result))
}

// EncryptCaesar handles the POST request shifting text forward
// @Summary Caesar encryption
// @Tags Caesar
// @Accept json
// @Produce json
// @Param requestBody body CaesarRequest true "text, shift and alphabet"
// @Success 200 {object} TextResponse
// @Failure 400 {object} ErrorResponse
// @Router /caesar/encrypt [post]
func (h *cipherHandler) EncryptCaesar(ctx *gin.Context) {
	h.caesar(ctx, h.engine.Caesar().Encrypt)
}

// DecryptCaesar handles the POST request shifting text backward
// @Summary Caesar decryption
// @Tags Caesar
// @Accept json
// @Produce json
// @Param requestBody body CaesarRequest true "text, shift and alphabet"
// @Success 200 {object} TextResponse
// @Failure 400 {object} ErrorResponse
// @Router /caesar/decrypt [post]
func (h *cipherHandler) DecryptCaesar(ctx *gin.Context) {
	h.caesar(ctx, h.engine.Caesar().Decrypt)
}

func (h *cipherHandler) caesar(ctx *gin.Context, apply func(text, shift, kind string) (string, error)) {
	var request CaesarRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	result, err := apply(request.Text, request.Shift, request.Alphabet)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, TextResponse{Result: result})
}

// EncryptVigenere handles the POST request for Vigenère encryption
// @Summary Vigenère encryption
// @Tags Vigenere
// @Accept json
// @Produce json
// @Param requestBody body VigenereRequest true "text, key, rot and alphabet"
// @Success 200 {object} TextResponse
// @Failure 400 {object} ErrorResponse
// @Router /vigenere/encrypt [post]
func (h *cipherHandler) EncryptVigenere(ctx *gin.Context) {
	h.vigenere(ctx, h.engine.Vigenere().Encrypt)
}

// DecryptVigenere handles the POST request for Vigenère decryption
// @Summary Vigenère decryption
// @Tags Vigenere
// @Accept json
// @Produce json
// @Param requestBody body VigenereRequest true "text, key, rot and alphabet"
// @Success 200 {object} TextResponse
// @Failure 400 {object} ErrorResponse
// @Router /vigenere/decrypt [post]
func (h *cipherHandler) DecryptVigenere(ctx *gin.Context) {
	h.vigenere(ctx, h.engine.Vigenere().Decrypt)
}

func (h *cipherHandler) vigenere(ctx *gin.Context, apply func(text, key, rot, kind string) (string, error)) {
	var request VigenereRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	result, err := apply(request.Text, request.Key, request.Rot, request.Alphabet)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, TextResponse{Result: result})
}

// TraceVigenere handles the POST request returning the per-character encryption table
// @Summary Vigenère computation table
// @Tags Vigenere
// @Accept json
// @Produce json
// @Param requestBody body VigenereRequest true "text, key, rot and alphabet"
// @Success 200 {object} VigenereTraceResponse
// @Failure 400 {object} ErrorResponse
// @Router /vigenere/table [post]
func (h *cipherHandler) TraceVigenere(ctx *gin.Context) {
	var request VigenereRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	trace, err := h.engine.Vigenere().Trace(request.Text, request.Key, request.Rot, request.Alphabet)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, VigenereTraceResponse{
		Rotation: trace.Rotation,
		Alphabet: trace.Alphabet,
		Rows:     trace.Rows,
		TSV:      classical.FormatTraceTSV(trace.Rows),
	})
}

// EncodePolybius handles the POST request for Polybius encoding
// @Summary Polybius square encoding
// @Tags Polybius
// @Accept json
// @Produce json
// @Param requestBody body PolybiusRequest true "text and alphabet"
// @Success 200 {object} TextResponse
// @Failure 400 {object} ErrorResponse
// @Router /polybius/encode [post]
func (h *cipherHandler) EncodePolybius(ctx *gin.Context) {
	h.polybius(ctx, h.engine.Polybius().Encode)
}

// DecodePolybius handles the POST request for Polybius decoding
// @Summary Polybius square decoding
// @Tags Polybius
// @Accept json
// @Produce json
// @Param requestBody body PolybiusRequest true "tokens and alphabet"
// @Success 200 {object} TextResponse
// @Failure 400 {object} ErrorResponse
// @Router /polybius/decode [post]
func (h *cipherHandler) DecodePolybius(ctx *gin.Context) {
	h.polybius(ctx, h.engine.Polybius().Decode)
}

func (h *cipherHandler) polybius(ctx *gin.Context, apply func(text, kind string) (string, error)) {
	var request PolybiusRequest
	if !bind(ctx, &request, request.Validate) {
		return
	}

	result, err := apply(request.Text, request.Alphabet)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, TextResponse{Result: result})
}

// bind decodes the JSON body into request and runs validate, writing a 400 on failure.
func bind(ctx *gin.Context, request interface{}, validate func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		abortBadRequest(ctx, "invalid request body: ", err)
		return false
	}
	if err := validate(); err != nil {
		abortBadRequest(ctx, "", err)
		return false
	}
	return true
}

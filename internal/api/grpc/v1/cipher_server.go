package v1

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

// cipherServer handles gRPC requests for the stateless ciphers
type cipherServer struct {
	engine classical.CipherEngine
}

// NewCipherServer creates a new instance of the Cipher service.
func NewCipherServer(engine classical.CipherEngine) (CipherServer, error) {
	if engine == nil {
		return nil, errors.New("cipher engine is required")
	}
	return &cipherServer{engine: engine}, nil
}

// DeriveRSAParameters derives N, φ(N) and the missing exponent
func (s *cipherServer) DeriveRSAParameters(_ context.Context, req *RSAParametersRequest) (*RSAParametersResponse, error) {
	params, err := s.engine.RSA().DeriveParameters(req.P, req.Q, req.E, req.D)
	if err != nil {
		return nil, toStatus(err)
	}
	return &RSAParametersResponse{
		P:      params.P.String(),
		Q:      params.Q.String(),
		N:      params.N.String(),
		Phi:    params.Phi.String(),
		E:      params.E.String(),
		D:      params.D.String(),
		Report: params.Report(),
	}, nil
}

// EncryptRSA computes message^e mod p*q
func (s *cipherServer) EncryptRSA(_ context.Context, req *RSAEncryptRequest) (*RSATransformResponse, error) {
	result, err := s.engine.RSA().Encrypt(req.P, req.Q, req.E, req.Message)
	if err != nil {
		return nil, toStatus(err)
	}
	return transformResponse(result), nil
}

// DecryptRSA computes ciphertext^d mod p*q
func (s *cipherServer) DecryptRSA(_ context.Context, req *RSADecryptRequest) (*RSATransformResponse, error) {
	result, err := s.engine.RSA().Decrypt(req.P, req.Q, req.D, req.Ciphertext)
	if err != nil {
		return nil, toStatus(err)
	}
	return transformResponse(result), nil
}

// EncryptCaesar shifts text forward
func (s *cipherServer) EncryptCaesar(_ context.Context, req *CaesarRequest) (*TextResponse, error) {
	return textResponse(s.engine.Caesar().Encrypt(req.Text, req.Shift, alphabetOrDefault(req.Alphabet)))
}

// DecryptCaesar shifts text backward
func (s *cipherServer) DecryptCaesar(_ context.Context, req *CaesarRequest) (*TextResponse, error) {
	return textResponse(s.engine.Caesar().Decrypt(req.Text, req.Shift, alphabetOrDefault(req.Alphabet)))
}

// EncryptVigenere applies the Vigenère cipher
func (s *cipherServer) EncryptVigenere(_ context.Context, req *VigenereRequest) (*TextResponse, error) {
	return textResponse(s.engine.Vigenere().Encrypt(req.Text, req.Key, req.Rot, alphabetOrDefault(req.Alphabet)))
}

// DecryptVigenere reverses the Vigenère cipher
func (s *cipherServer) DecryptVigenere(_ context.Context, req *VigenereRequest) (*TextResponse, error) {
	return textResponse(s.engine.Vigenere().Decrypt(req.Text, req.Key, req.Rot, alphabetOrDefault(req.Alphabet)))
}

// TraceVigenere returns the per-character encryption table
func (s *cipherServer) TraceVigenere(_ context.Context, req *VigenereRequest) (*VigenereTraceResponse, error) {
	trace, err := s.engine.Vigenere().Trace(req.Text, req.Key, req.Rot, alphabetOrDefault(req.Alphabet))
	if err != nil {
		return nil, toStatus(err)
	}
	return &VigenereTraceResponse{
		Rotation: trace.Rotation,
		Alphabet: trace.Alphabet,
		Rows:     trace.Rows,
		TSV:      classical.FormatTraceTSV(trace.Rows),
	}, nil
}

// EncodePolybius encodes text with the Polybius square
func (s *cipherServer) EncodePolybius(_ context.Context, req *PolybiusRequest) (*TextResponse, error) {
	return textResponse(s.engine.Polybius().Encode(req.Text, alphabetOrDefault(req.Alphabet)))
}

// DecodePolybius decodes whitespace separated tokens
func (s *cipherServer) DecodePolybius(_ context.Context, req *PolybiusRequest) (*TextResponse, error) {
	return textResponse(s.engine.Polybius().Decode(req.Text, alphabetOrDefault(req.Alphabet)))
}

func textResponse(result string, err error) (*TextResponse, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return &TextResponse{Result: result}, nil
}

func transformResponse(t *classical.Transformation) *RSATransformResponse {
	response := &RSATransformResponse{
		Input:  t.Input.String(),
		Output: t.Output.String(),
	}
	if t.Warning != nil {
		response.Warning = t.Warning.String()
	}
	return response
}

func alphabetOrDefault(kind string) string {
	if kind == "" {
		return classical.AlphabetEnglish
	}
	return kind
}

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, keysets.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, classical.ErrInvalidInput), errors.Is(err, classical.ErrInvalidKey):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, classical.ErrNoInverse), errors.Is(err, classical.ErrInconsistentKey):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// LoggingInterceptor logs every unary call with its duration and resulting status code.
func LoggingInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		if err != nil {
			log.Warn("%s failed after %s: %s", info.FullMethod, time.Since(start), code)
		} else {
			log.Info("%s completed in %s", info.FullMethod, time.Since(start))
		}
		return resp, err
	}
}

//go:build unit
// +build unit

package v1

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/QmFkLVBp/cryptology/internal/infrastructure/cryptography"
	"github.com/QmFkLVBp/cryptology/internal/pkg/testutil"
)

func setupCipherClient(t *testing.T) *CipherClient {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	engine, err := cryptography.NewCipherEngine(logger)
	require.NoError(t, err)
	server, err := NewCipherServer(engine)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger)))
	RegisterCipherServer(s, server)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewCipherClient(conn)
}

func TestCipherServer_RSA(t *testing.T) {
	client := setupCipherClient(t)
	ctx := context.Background()

	params, err := client.DeriveRSAParameters(ctx, &RSAParametersRequest{P: "61", Q: "53", E: "17"})
	require.NoError(t, err)
	assert.Equal(t, "2753", params.D)
	assert.Equal(t, "3233", params.N)

	encrypted, err := client.EncryptRSA(ctx, &RSAEncryptRequest{P: "61", Q: "53", E: "17", Message: "65"})
	require.NoError(t, err)
	assert.Equal(t, "2790", encrypted.Output)
	assert.Empty(t, encrypted.Warning)

	decrypted, err := client.DecryptRSA(ctx, &RSADecryptRequest{P: "61", Q: "53", D: "2753", Ciphertext: "2790"})
	require.NoError(t, err)
	assert.Equal(t, "65", decrypted.Output)

	normalized, err := client.EncryptRSA(ctx, &RSAEncryptRequest{P: "61", Q: "53", E: "17", Message: "3298"})
	require.NoError(t, err)
	assert.NotEmpty(t, normalized.Warning)
	assert.Equal(t, "65", normalized.Input)
}

func TestCipherServer_ErrorCodes(t *testing.T) {
	client := setupCipherClient(t)
	ctx := context.Background()

	_, err := client.DeriveRSAParameters(ctx, &RSAParametersRequest{P: "61", Q: "53"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.DeriveRSAParameters(ctx, &RSAParametersRequest{P: "61", Q: "53", E: "17", D: "5"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.EncryptVigenere(ctx, &VigenereRequest{Text: "HELLO"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.EncodePolybius(ctx, &PolybiusRequest{Text: "HELLO", Alphabet: "XX"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCipherServer_TextCiphers(t *testing.T) {
	client := setupCipherClient(t)
	ctx := context.Background()

	caesar, err := client.EncryptCaesar(ctx, &CaesarRequest{Text: "Hello, World!", Shift: "3"})
	require.NoError(t, err)
	assert.Equal(t, "Khoor, Zruog!", caesar.Result)

	plain, err := client.DecryptCaesar(ctx, &CaesarRequest{Text: caesar.Result, Shift: "3", Alphabet: "EN"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", plain.Result)

	vigenere, err := client.EncryptVigenere(ctx, &VigenereRequest{Text: "ATTACKATDAWN", Key: "LEMON"})
	require.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", vigenere.Result)

	back, err := client.DecryptVigenere(ctx, &VigenereRequest{Text: vigenere.Result, Key: "LEMON"})
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", back.Result)

	trace, err := client.TraceVigenere(ctx, &VigenereRequest{Text: "Hi!", Key: "k"})
	require.NoError(t, err)
	require.Len(t, trace.Rows, 3)
	assert.Equal(t, "R", trace.Rows[0].Encrypted)
	assert.True(t, trace.Rows[2].Skipped())

	encoded, err := client.EncodePolybius(ctx, &PolybiusRequest{Text: "Я", Alphabet: "UA"})
	require.NoError(t, err)
	assert.Equal(t, "63", encoded.Result)

	decoded, err := client.DecodePolybius(ctx, &PolybiusRequest{Text: "23 15 31 31 34"})
	require.NoError(t, err)
	assert.Equal(t, "HELLO", decoded.Result)
}

func TestNewCipherServer_RequiresEngine(t *testing.T) {
	_, err := NewCipherServer(nil)
	assert.Error(t, err)
}

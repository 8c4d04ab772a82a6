package v1

import (
	"context"

	"google.golang.org/grpc"
)

// CipherClient is a thin client for the cryptology.v1.Cipher service using the JSON codec.
type CipherClient struct {
	cc grpc.ClientConnInterface
}

// NewCipherClient creates a client over an established connection
func NewCipherClient(cc grpc.ClientConnInterface) *CipherClient {
	return &CipherClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, fullMethod string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DeriveRSAParameters calls the remote DeriveRSAParameters method
func (c *CipherClient) DeriveRSAParameters(ctx context.Context, in *RSAParametersRequest, opts ...grpc.CallOption) (*RSAParametersResponse, error) {
	return invoke[RSAParametersResponse](ctx, c.cc, "/"+ServiceName+"/DeriveRSAParameters", in, opts)
}

// EncryptRSA calls the remote EncryptRSA method
func (c *CipherClient) EncryptRSA(ctx context.Context, in *RSAEncryptRequest, opts ...grpc.CallOption) (*RSATransformResponse, error) {
	return invoke[RSATransformResponse](ctx, c.cc, "/"+ServiceName+"/EncryptRSA", in, opts)
}

// DecryptRSA calls the remote DecryptRSA method
func (c *CipherClient) DecryptRSA(ctx context.Context, in *RSADecryptRequest, opts ...grpc.CallOption) (*RSATransformResponse, error) {
	return invoke[RSATransformResponse](ctx, c.cc, "/"+ServiceName+"/DecryptRSA", in, opts)
}

// EncryptCaesar calls the remote EncryptCaesar method
func (c *CipherClient) EncryptCaesar(ctx context.Context, in *CaesarRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	return invoke[TextResponse](ctx, c.cc, "/"+ServiceName+"/EncryptCaesar", in, opts)
}

// DecryptCaesar calls the remote DecryptCaesar method
func (c *CipherClient) DecryptCaesar(ctx context.Context, in *CaesarRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	return invoke[TextResponse](ctx, c.cc, "/"+ServiceName+"/DecryptCaesar", in, opts)
}

// EncryptVigenere calls the remote EncryptVigenere method
func (c *CipherClient) EncryptVigenere(ctx context.Context, in *VigenereRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	return invoke[TextResponse](ctx, c.cc, "/"+ServiceName+"/EncryptVigenere", in, opts)
}

// DecryptVigenere calls the remote DecryptVigenere method
func (c *CipherClient) DecryptVigenere(ctx context.Context, in *VigenereRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	return invoke[TextResponse](ctx, c.cc, "/"+ServiceName+"/DecryptVigenere", in, opts)
}

// TraceVigenere calls the remote TraceVigenere method
func (c *CipherClient) TraceVigenere(ctx context.Context, in *VigenereRequest, opts ...grpc.CallOption) (*VigenereTraceResponse, error) {
	return invoke[VigenereTraceResponse](ctx, c.cc, "/"+ServiceName+"/TraceVigenere", in, opts)
}

// EncodePolybius calls the remote EncodePolybius method
func (c *CipherClient) EncodePolybius(ctx context.Context, in *PolybiusRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	return invoke[TextResponse](ctx, c.cc, "/"+ServiceName+"/EncodePolybius", in, opts)
}

// DecodePolybius calls the remote DecodePolybius method
func (c *CipherClient) DecodePolybius(ctx context.Context, in *PolybiusRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	return invoke[TextResponse](ctx, c.cc, "/"+ServiceName+"/DecodePolybius", in, opts)
}

// KeySetClient is a thin client for the cryptology.v1.KeySets service using the JSON codec.
type KeySetClient struct {
	cc grpc.ClientConnInterface
}

// NewKeySetClient creates a client over an established connection
func NewKeySetClient(cc grpc.ClientConnInterface) *KeySetClient {
	return &KeySetClient{cc: cc}
}

func (c *KeySetClient) call(method string) string {
	return "/" + KeySetServiceName + "/" + method
}

// Create calls the remote Create method
func (c *KeySetClient) Create(ctx context.Context, in *CreateKeySetRequest, opts ...grpc.CallOption) (*KeySetResponse, error) {
	return invoke[KeySetResponse](ctx, c.cc, c.call("Create"), in, opts)
}

// List calls the remote List method
func (c *KeySetClient) List(ctx context.Context, in *ListKeySetsRequest, opts ...grpc.CallOption) (*ListKeySetsResponse, error) {
	return invoke[ListKeySetsResponse](ctx, c.cc, c.call("List"), in, opts)
}

// GetByID calls the remote GetByID method
func (c *KeySetClient) GetByID(ctx context.Context, in *KeySetIDRequest, opts ...grpc.CallOption) (*KeySetResponse, error) {
	return invoke[KeySetResponse](ctx, c.cc, c.call("GetByID"), in, opts)
}

// DeleteByID calls the remote DeleteByID method
func (c *KeySetClient) DeleteByID(ctx context.Context, in *KeySetIDRequest, opts ...grpc.CallOption) (*DeleteKeySetResponse, error) {
	return invoke[DeleteKeySetResponse](ctx, c.cc, c.call("DeleteByID"), in, opts)
}

// Encrypt calls the remote Encrypt method
func (c *KeySetClient) Encrypt(ctx context.Context, in *KeySetTransformRequest, opts ...grpc.CallOption) (*RSATransformResponse, error) {
	return invoke[RSATransformResponse](ctx, c.cc, c.call("Encrypt"), in, opts)
}

// Decrypt calls the remote Decrypt method
func (c *KeySetClient) Decrypt(ctx context.Context, in *KeySetTransformRequest, opts ...grpc.CallOption) (*RSATransformResponse, error) {
	return invoke[RSATransformResponse](ctx, c.cc, c.call("Decrypt"), in, opts)
}

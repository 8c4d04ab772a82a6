package v1

import (
	"context"

	"google.golang.org/grpc"
)

// Fully qualified gRPC service names.
const (
	ServiceName       = "cryptology.v1.Cipher"
	KeySetServiceName = "cryptology.v1.KeySets"
)

// CipherServer is the server API for the cryptology.v1.Cipher service.
type CipherServer interface {
	DeriveRSAParameters(context.Context, *RSAParametersRequest) (*RSAParametersResponse, error)
	EncryptRSA(context.Context, *RSAEncryptRequest) (*RSATransformResponse, error)
	DecryptRSA(context.Context, *RSADecryptRequest) (*RSATransformResponse, error)
	EncryptCaesar(context.Context, *CaesarRequest) (*TextResponse, error)
	DecryptCaesar(context.Context, *CaesarRequest) (*TextResponse, error)
	EncryptVigenere(context.Context, *VigenereRequest) (*TextResponse, error)
	DecryptVigenere(context.Context, *VigenereRequest) (*TextResponse, error)
	TraceVigenere(context.Context, *VigenereRequest) (*VigenereTraceResponse, error)
	EncodePolybius(context.Context, *PolybiusRequest) (*TextResponse, error)
	DecodePolybius(context.Context, *PolybiusRequest) (*TextResponse, error)
}

// KeySetServer is the server API for the cryptology.v1.KeySets service.
type KeySetServer interface {
	Create(context.Context, *CreateKeySetRequest) (*KeySetResponse, error)
	List(context.Context, *ListKeySetsRequest) (*ListKeySetsResponse, error)
	GetByID(context.Context, *KeySetIDRequest) (*KeySetResponse, error)
	DeleteByID(context.Context, *KeySetIDRequest) (*DeleteKeySetResponse, error)
	Encrypt(context.Context, *KeySetTransformRequest) (*RSATransformResponse, error)
	Decrypt(context.Context, *KeySetTransformRequest) (*RSATransformResponse, error)
}

// RegisterCipherServer registers srv on s.
func RegisterCipherServer(s grpc.ServiceRegistrar, srv CipherServer) {
	s.RegisterService(&cipherServiceDesc, srv)
}

// RegisterKeySetServer registers srv on s.
func RegisterKeySetServer(s grpc.ServiceRegistrar, srv KeySetServer) {
	s.RegisterService(&keySetServiceDesc, srv)
}

var cipherServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CipherServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ServiceName, "DeriveRSAParameters", CipherServer.DeriveRSAParameters),
		unary(ServiceName, "EncryptRSA", CipherServer.EncryptRSA),
		unary(ServiceName, "DecryptRSA", CipherServer.DecryptRSA),
		unary(ServiceName, "EncryptCaesar", CipherServer.EncryptCaesar),
		unary(ServiceName, "DecryptCaesar", CipherServer.DecryptCaesar),
		unary(ServiceName, "EncryptVigenere", CipherServer.EncryptVigenere),
		unary(ServiceName, "DecryptVigenere", CipherServer.DecryptVigenere),
		unary(ServiceName, "TraceVigenere", CipherServer.TraceVigenere),
		unary(ServiceName, "EncodePolybius", CipherServer.EncodePolybius),
		unary(ServiceName, "DecodePolybius", CipherServer.DecodePolybius),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cryptology/v1/cipher",
}

var keySetServiceDesc = grpc.ServiceDesc{
	ServiceName: KeySetServiceName,
	HandlerType: (*KeySetServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(KeySetServiceName, "Create", KeySetServer.Create),
		unary(KeySetServiceName, "List", KeySetServer.List),
		unary(KeySetServiceName, "GetByID", KeySetServer.GetByID),
		unary(KeySetServiceName, "DeleteByID", KeySetServer.DeleteByID),
		unary(KeySetServiceName, "Encrypt", KeySetServer.Encrypt),
		unary(KeySetServiceName, "Decrypt", KeySetServer.Decrypt),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cryptology/v1/keysets",
}

func unary[S, Req, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + service + "/" + method,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "companion.api.v1alpha1.CompanionService"

// Method names
const (
	MethodImportCharacter = "ImportCharacter"
	MethodExportCharacter = "ExportCharacter"
	MethodProjectSheet    = "ProjectSheet"
	MethodGetCharacter    = "GetCharacter"
	MethodListCharacters  = "ListCharacters"
	MethodDeleteCharacter = "DeleteCharacter"
	MethodResolveItem     = "ResolveItem"
)

// CompanionServiceServer is the server API for the companion service.
// Every payload is a structpb.Struct document.
type CompanionServiceServer interface {
	ImportCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ProjectSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(CompanionServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(CompanionServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CompanionServiceDesc describes the companion service for grpc.Server.RegisterService
var CompanionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CompanionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodImportCharacter, CompanionServiceServer.ImportCharacter),
		unaryMethod(MethodExportCharacter, CompanionServiceServer.ExportCharacter),
		unaryMethod(MethodProjectSheet, CompanionServiceServer.ProjectSheet),
		unaryMethod(MethodGetCharacter, CompanionServiceServer.GetCharacter),
		unaryMethod(MethodListCharacters, CompanionServiceServer.ListCharacters),
		unaryMethod(MethodDeleteCharacter, CompanionServiceServer.DeleteCharacter),
		unaryMethod(MethodResolveItem, CompanionServiceServer.ResolveItem),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "companion/api/v1alpha1/companion.proto",
}

// RegisterCompanionServiceServer registers the handler on a gRPC server
func RegisterCompanionServiceServer(s grpc.ServiceRegistrar, srv CompanionServiceServer) {
	s.RegisterService(&CompanionServiceDesc, srv)
}

// CompanionServiceClient calls the companion service
type CompanionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCompanionServiceClient wraps a client connection
func NewCompanionServiceClient(cc grpc.ClientConnInterface) *CompanionServiceClient {
	return &CompanionServiceClient{cc: cc}
}

// Call invokes a unary method by name
func (c *CompanionServiceClient) Call(
	ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

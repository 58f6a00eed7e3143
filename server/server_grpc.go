// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified name of the OrderedMap service.
const ServiceName = "ordmap.OrderedMap"

// OrderedMapClient is the client API for OrderedMap service.
type OrderedMapClient interface {
	Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Remove(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Lookup(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Contains(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Size(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Height(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Balance(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type orderedMapClient struct {
	cc grpc.ClientConnInterface
}

// NewOrderedMapClient creates a new client for OrderedMap service.
func NewOrderedMapClient(cc grpc.ClientConnInterface) OrderedMapClient {
	return &orderedMapClient{cc}
}

// invoke calls the given method of OrderedMap service and decodes the reply
// into out.
func invoke[T proto.Message](ctx context.Context, cc grpc.ClientConnInterface, method string, in proto.Message, out T, opts ...grpc.CallOption) (T, error) {
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *orderedMapClient) Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, "Insert", in, new(emptypb.Empty), opts...)
}

func (c *orderedMapClient) Remove(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, "Remove", in, new(emptypb.Empty), opts...)
}

func (c *orderedMapClient) Lookup(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke(ctx, c.cc, "Lookup", in, new(wrapperspb.StringValue), opts...)
}

func (c *orderedMapClient) Contains(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke(ctx, c.cc, "Contains", in, new(wrapperspb.BoolValue), opts...)
}

func (c *orderedMapClient) Size(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke(ctx, c.cc, "Size", in, new(wrapperspb.Int64Value), opts...)
}

func (c *orderedMapClient) Height(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke(ctx, c.cc, "Height", in, new(wrapperspb.Int64Value), opts...)
}

func (c *orderedMapClient) Balance(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke(ctx, c.cc, "Balance", in, new(wrapperspb.Int64Value), opts...)
}

func (c *orderedMapClient) Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, "Clear", in, new(emptypb.Empty), opts...)
}

// OrderedMapServer is the server API for OrderedMap service.
// All implementations must embed UnimplementedOrderedMapServer
// for forward compatibility.
type OrderedMapServer interface {
	Insert(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Remove(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	Lookup(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Contains(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	Size(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Height(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Balance(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Clear(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// UnimplementedOrderedMapServer must be embedded to have forward compatible implementations.
type UnimplementedOrderedMapServer struct {
}

func (UnimplementedOrderedMapServer) Insert(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedOrderedMapServer) Remove(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedOrderedMapServer) Lookup(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Lookup not implemented")
}
func (UnimplementedOrderedMapServer) Contains(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Contains not implemented")
}
func (UnimplementedOrderedMapServer) Size(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Size not implemented")
}
func (UnimplementedOrderedMapServer) Height(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Height not implemented")
}
func (UnimplementedOrderedMapServer) Balance(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Balance not implemented")
}
func (UnimplementedOrderedMapServer) Clear(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}

// RegisterOrderedMapServer registers the given implementation of OrderedMap
// service with the given registrar.
func RegisterOrderedMapServer(s grpc.ServiceRegistrar, srv OrderedMapServer) {
	s.RegisterService(&OrderedMap_ServiceDesc, srv)
}

// unary describes a unary method of OrderedMap service that decodes its
// request with newRequest and dispatches it to call.
func unary[Req, Resp proto.Message](method string, newRequest func() Req, call func(OrderedMapServer, context.Context, Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newRequest()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(OrderedMapServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + method,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(OrderedMapServer), ctx, req.(Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func newStruct() *structpb.Struct            { return new(structpb.Struct) }
func newStringValue() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newEmpty() *emptypb.Empty                { return new(emptypb.Empty) }

// OrderedMap_ServiceDesc is the grpc.ServiceDesc for OrderedMap service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy).
var OrderedMap_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrderedMapServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Insert", newStruct, OrderedMapServer.Insert),
		unary("Remove", newStringValue, OrderedMapServer.Remove),
		unary("Lookup", newStringValue, OrderedMapServer.Lookup),
		unary("Contains", newStringValue, OrderedMapServer.Contains),
		unary("Size", newEmpty, OrderedMapServer.Size),
		unary("Height", newEmpty, OrderedMapServer.Height),
		unary("Balance", newEmpty, OrderedMapServer.Balance),
		unary("Clear", newEmpty, OrderedMapServer.Clear),
	},
	Streams: []grpc.StreamDesc{},
}

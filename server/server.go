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

// Package server exposes a single ordered map over gRPC.  The service carries
// string keys and values in protobuf well-known types, so it needs no
// generated code on either side.  Since the map itself is not safe for
// concurrent use, every call is serialized on the map instance.
package server

import (
	"context"
	"errors"
	"sync"

	"github.com/9rum/ordmap/ordmap"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Field names of the entry carried by an Insert request.
const (
	KeyField   = "key"
	ValueField = "value"
)

// NewEntry creates an Insert request for the given key-value pair.
func NewEntry(key, value string) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			KeyField:   structpb.NewStringValue(key),
			ValueField: structpb.NewStringValue(value),
		},
	}
}

// orderedMapServer implements the server API for OrderedMap service.
type orderedMapServer struct {
	UnimplementedOrderedMapServer
	mu sync.Mutex
	m  *ordmap.Tree[string, string]
}

// NewOrderedMapServer creates a new server holding an empty map with the
// given rebalancing policy.
func NewOrderedMapServer(policy ordmap.Policy) OrderedMapServer {
	return &orderedMapServer{
		m: ordmap.New[string, string](policy, ordmap.Ordered[string]()),
	}
}

// Insert adds the key-value pair in the given entry to the map.
func (s *orderedMapServer) Insert(ctx context.Context, in *structpb.Struct) (*empty.Empty, error) {
	key, err := field(in, KeyField)
	if err != nil {
		return nil, err
	}
	value, err := field(in, ValueField)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("Insert called with key: %q", key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.m.Insert(key, value); err != nil {
		return nil, toStatus("Insert", err)
	}
	return new(empty.Empty), nil
}

// field extracts the string field with the given name from the entry.
func field(in *structpb.Struct, name string) (string, error) {
	v, ok := in.GetFields()[name]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "missing field %q", name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "field %q is not a string", name)
	}
	return s.StringValue, nil
}

// Remove removes the entry with the given key from the map.
func (s *orderedMapServer) Remove(ctx context.Context, in *wrapperspb.StringValue) (*empty.Empty, error) {
	glog.V(1).Infof("Remove called with key: %q", in.GetValue())

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.m.Remove(in.GetValue()); err != nil {
		return nil, toStatus("Remove", err)
	}
	return new(empty.Empty), nil
}

// Lookup returns a copy of the value associated with the given key.
func (s *orderedMapServer) Lookup(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	glog.V(1).Infof("Lookup called with key: %q", in.GetValue())

	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.m.Lookup(in.GetValue())
	if err != nil {
		return nil, toStatus("Lookup", err)
	}
	return wrapperspb.String(*v), nil
}

// Contains tests whether the given key is present in the map.
func (s *orderedMapServer) Contains(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return wrapperspb.Bool(s.m.Contains(in.GetValue())), nil
}

// Size returns the number of entries currently in the map.
func (s *orderedMapServer) Size(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return wrapperspb.Int64(int64(s.m.Size())), nil
}

// Height returns the height of the map, which is -1 for an empty map.
func (s *orderedMapServer) Height(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return wrapperspb.Int64(int64(s.m.Height())), nil
}

// Balance returns the balance factor at the root of the map.
func (s *orderedMapServer) Balance(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return wrapperspb.Int64(int64(s.m.Balance())), nil
}

// Clear removes all entries from the map.
func (s *orderedMapServer) Clear(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Clear called")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.Clear()
	return new(empty.Empty), nil
}

// toStatus converts an error returned by the map into a gRPC status.
func toStatus(method string, err error) error {
	glog.V(1).Infof("%s failed: %v", method, err)

	switch {
	case errors.Is(err, ordmap.ErrDuplicateKey):
		return status.Error(codes.AlreadyExists, err.Error())
	// must precede ErrMissingKey, which errors of an empty map also match
	case errors.Is(err, ordmap.ErrEmptyMap):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ordmap.ErrMissingKey):
		return status.Error(codes.NotFound, err.Error())
	default:
		glog.Warningf("%s failed unexpectedly: %v", method, err)
		return status.Error(codes.Internal, err.Error())
	}
}

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
	"fmt"
	"net"
	"testing"

	"github.com/9rum/ordmap/ordmap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// dial starts an in-process server holding a map with the given policy and
// returns a client connected to it.
func dial(t *testing.T, policy ordmap.Policy) OrderedMapClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	RegisterOrderedMapServer(server, NewOrderedMapServer(policy))
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewOrderedMapClient(conn)
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, status.Code(err), "unexpected error: %v", err)
}

func TestOrderedMapServer(t *testing.T) {
	for _, policy := range []ordmap.Policy{ordmap.HeightBalanced, ordmap.RootInsertion, ordmap.Randomized} {
		policy := policy
		t.Run(policy.String(), func(t *testing.T) {
			ctx := context.Background()
			c := dial(t, policy)

			for i := 1; i <= 7; i++ {
				_, err := c.Insert(ctx, NewEntry(fmt.Sprint(i), fmt.Sprintf("v%d", i)))
				require.NoError(t, err)
			}

			size, err := c.Size(ctx, new(emptypb.Empty))
			require.NoError(t, err)
			require.EqualValues(t, 7, size.GetValue())

			v, err := c.Lookup(ctx, wrapperspb.String("3"))
			require.NoError(t, err)
			require.Equal(t, "v3", v.GetValue())

			ok, err := c.Contains(ctx, wrapperspb.String("8"))
			require.NoError(t, err)
			require.False(t, ok.GetValue())

			_, err = c.Remove(ctx, wrapperspb.String("3"))
			require.NoError(t, err)
			ok, err = c.Contains(ctx, wrapperspb.String("3"))
			require.NoError(t, err)
			require.False(t, ok.GetValue())

			_, err = c.Clear(ctx, new(emptypb.Empty))
			require.NoError(t, err)
			height, err := c.Height(ctx, new(emptypb.Empty))
			require.NoError(t, err)
			require.EqualValues(t, -1, height.GetValue())
		})
	}
}

func TestOrderedMapServerHeightBalanced(t *testing.T) {
	ctx := context.Background()
	c := dial(t, ordmap.HeightBalanced)

	for i := 1; i <= 7; i++ {
		_, err := c.Insert(ctx, NewEntry(fmt.Sprint(i), ""))
		require.NoError(t, err)
	}
	height, err := c.Height(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.EqualValues(t, 2, height.GetValue())

	balance, err := c.Balance(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.Zero(t, balance.GetValue())
}

func TestOrderedMapServerErrors(t *testing.T) {
	ctx := context.Background()
	c := dial(t, ordmap.HeightBalanced)

	_, err := c.Remove(ctx, wrapperspb.String("5"))
	requireCode(t, err, codes.FailedPrecondition)
	_, err = c.Lookup(ctx, wrapperspb.String("5"))
	requireCode(t, err, codes.FailedPrecondition)

	_, err = c.Insert(ctx, NewEntry("5", "five"))
	require.NoError(t, err)
	_, err = c.Insert(ctx, NewEntry("5", "again"))
	requireCode(t, err, codes.AlreadyExists)

	_, err = c.Remove(ctx, wrapperspb.String("6"))
	requireCode(t, err, codes.NotFound)
	_, err = c.Lookup(ctx, wrapperspb.String("6"))
	requireCode(t, err, codes.NotFound)

	// the failed insertion left the original value in place
	v, err := c.Lookup(ctx, wrapperspb.String("5"))
	require.NoError(t, err)
	require.Equal(t, "five", v.GetValue())
}

func TestOrderedMapServerInvalidArgument(t *testing.T) {
	ctx := context.Background()
	c := dial(t, ordmap.HeightBalanced)

	_, err := c.Insert(ctx, &structpb.Struct{})
	requireCode(t, err, codes.InvalidArgument)

	_, err = c.Insert(ctx, &structpb.Struct{
		Fields: map[string]*structpb.Value{
			KeyField:   structpb.NewNumberValue(1),
			ValueField: structpb.NewStringValue("one"),
		},
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = c.Insert(ctx, &structpb.Struct{
		Fields: map[string]*structpb.Value{
			KeyField: structpb.NewStringValue("1"),
		},
	})
	requireCode(t, err, codes.InvalidArgument)

	size, err := c.Size(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.Zero(t, size.GetValue())
}

func TestOrderedMapServerConcurrentClients(t *testing.T) {
	const (
		clients = 8
		keys    = 128
	)
	ctx := context.Background()
	c := dial(t, ordmap.Randomized)

	g, gctx := errgroup.WithContext(ctx)
	for client := 0; client < clients; client++ {
		client := client
		g.Go(func() error {
			for key := 0; key < keys; key++ {
				if _, err := c.Insert(gctx, NewEntry(fmt.Sprintf("%d/%d", client, key), "")); err != nil {
					return err
				}
			}
			for key := 0; key < keys; key += 2 {
				if _, err := c.Remove(gctx, wrapperspb.String(fmt.Sprintf("%d/%d", client, key))); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	size, err := c.Size(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.EqualValues(t, clients*keys/2, size.GetValue())
}

func TestUnimplementedOrderedMapServer(t *testing.T) {
	var s UnimplementedOrderedMapServer
	_, err := s.Insert(context.Background(), NewEntry("k", "v"))
	requireCode(t, err, codes.Unimplemented)
}

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

// Package main implements the ordered map server. The server holds a single
// map whose rebalancing policy is chosen at startup, and stops gracefully on
// an interrupt or termination signal.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/9rum/ordmap/ordmap"
	"github.com/9rum/ordmap/server"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	kind := flag.String("policy", ordmap.HeightBalanced.String(), "The rebalancing policy: avl, root or random")
	flag.Parse()
	defer glog.Flush()

	policy, err := ordmap.ParsePolicy(*kind)
	if err != nil {
		glog.Fatalf("invalid policy: %v", err)
	}

	if err = serve(*port, policy); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port int, policy ordmap.Policy) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer(policy)
	glog.Infof("server listening at %v with policy %s", lis.Addr(), policy)

	return server.Serve(lis)
}

func newServer(policy ordmap.Policy) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func(done <-chan os.Signal, s *grpc.Server) {
		sig := <-done
		glog.Infof("received %v, shutting down", sig)
		s.GracefulStop()
	}(done, s)

	server.RegisterOrderedMapServer(s, server.NewOrderedMapServer(policy))

	return s
}

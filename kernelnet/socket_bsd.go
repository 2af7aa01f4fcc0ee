// Copyright 2026 Seclink Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package kernelnet

import (
	"golang.org/x/sys/unix"

	"github.com/seclink/seclink/pkg/private/serrors"
)

// routeSocket is the raw routing socket shared by the event receiver and
// the query/command paths.
type routeSocket struct {
	fd int
}

// openRouteSocket creates a raw routing socket to communicate with the
// kernel.
func openRouteSocket() (RouteSocket, error) {
	fd, err := unix.Socket(unix.AF_ROUTE, unix.SOCK_RAW, unix.AF_UNSPEC)
	if err != nil {
		return nil, serrors.Wrap("opening routing socket", err)
	}
	return &routeSocket{fd: fd}, nil
}

func (s *routeSocket) Recv(buf []byte) (int, error) {
	l, err := unix.Read(s.fd, buf)
	if err != nil {
		return 0, err
	}
	return l, nil
}

func (s *routeSocket) Send(msg []byte) error {
	l, err := unix.Write(s.fd, msg)
	if err != nil {
		return err
	}
	if l != len(msg) {
		return serrors.New("short write on routing socket",
			"written", l, "msglen", len(msg))
	}
	return nil
}

func (s *routeSocket) CloseRead() error {
	return unix.Shutdown(s.fd, unix.SHUT_RD)
}

func (s *routeSocket) Close() error {
	return unix.Close(s.fd)
}

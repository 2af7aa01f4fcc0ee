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

//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd)

package kernelnet

import (
	"github.com/seclink/seclink/pkg/private/serrors"
)

// openRouteSocket is only available on BSD-family kernels. Other platforms
// must inject a RouteSocket.
func openRouteSocket() (RouteSocket, error) {
	return nil, serrors.New("routing sockets not supported on this platform")
}

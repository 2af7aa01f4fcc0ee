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

// Package tundev manages the tunnel devices carrying virtual IPs.
package tundev

import (
	"net/netip"
)

// Device is an opaque handle to a kernel tunnel device.
type Device interface {
	// Up activates the device.
	Up() error
	// SetAddress assigns ip/prefixLen to the device.
	SetAddress(ip netip.Addr, prefixLen int) error
	// Name returns the kernel name of the device.
	Name() string
	// Address returns the address assigned with SetAddress.
	Address() (netip.Addr, bool)
	// Close destroys the device. The kernel reports the removal of its
	// addresses through the routing socket.
	Close() error
}

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

package tundev

import (
	"fmt"
	"net/netip"
	"os/exec"

	"github.com/songgao/water"

	"github.com/seclink/seclink/pkg/private/serrors"
)

type tun struct {
	ifce *water.Interface
	addr netip.Addr
}

// New creates a utun device.
func New() (Device, error) {
	ifce, err := water.New(water.Config{DeviceType: water.TUN})
	if err != nil {
		return nil, serrors.Wrap("creating tun device", err)
	}
	return &tun{ifce: ifce}, nil
}

func (t *tun) Up() error {
	return ifconfig(t.Name(), "up")
}

func (t *tun) SetAddress(ip netip.Addr, prefixLen int) error {
	cidr := fmt.Sprintf("%s/%d", ip, prefixLen)
	var err error
	if ip.Is4() {
		// Point-to-point devices need a peer address, use the address
		// itself.
		err = ifconfig(t.Name(), "inet", cidr, ip.String(), "alias")
	} else {
		err = ifconfig(t.Name(), "inet6", cidr)
	}
	if err != nil {
		return err
	}
	t.addr = ip
	return nil
}

func (t *tun) Name() string {
	return t.ifce.Name()
}

func (t *tun) Address() (netip.Addr, bool) {
	return t.addr, t.addr.IsValid()
}

func (t *tun) Close() error {
	return t.ifce.Close()
}

func ifconfig(args ...string) error {
	out, err := exec.Command("ifconfig", args...).CombinedOutput()
	if err != nil {
		return serrors.Wrap("configuring tun device", err,
			"args", args, "output", string(out))
	}
	return nil
}

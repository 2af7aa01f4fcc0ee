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

package kernelnet

import (
	"net"
	"net/netip"

	"github.com/seclink/seclink/kernelnet/rtmsg"
	"github.com/seclink/seclink/pkg/private/serrors"
)

// osSystem implements SystemAPI on top of the net package.
type osSystem struct{}

func (osSystem) InterfaceAddrs() ([]SystemInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, serrors.Wrap("listing interfaces", err)
	}
	sis := make([]SystemInterface, 0, len(ifaces))
	for _, ifi := range ifaces {
		si := SystemInterface{
			Index: ifi.Index,
			Name:  ifi.Name,
			Flags: ifaceFlagWord(ifi.Flags),
		}
		addrs, err := ifi.Addrs()
		if err != nil {
			return nil, serrors.Wrap("listing addresses", err,
				"interface", ifi.Name)
		}
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			ip, ok := netip.AddrFromSlice(ipnet.IP)
			if !ok {
				continue
			}
			si.Addrs = append(si.Addrs, ip.Unmap())
		}
		sis = append(sis, si)
	}
	return sis, nil
}

func (osSystem) NameByIndex(index int) (string, error) {
	ifi, err := net.InterfaceByIndex(index)
	if err != nil {
		return "", serrors.Wrap("resolving interface index", err,
			"index", index)
	}
	return ifi.Name, nil
}

// ifaceFlagWord converts net package flags to the kernel's flag word.
func ifaceFlagWord(flags net.Flags) int {
	var word int
	if flags&net.FlagUp != 0 {
		word |= rtmsg.IfFlagUp
	}
	if flags&net.FlagLoopback != 0 {
		word |= rtmsg.IfFlagLoopback
	}
	return word
}

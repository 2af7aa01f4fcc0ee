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
	"net/netip"

	"github.com/seclink/seclink/kernelnet/rtmsg"
)

// AddRoute installs a static route. gw, src and ifname are optional, pass
// the zero Addr or empty string to omit them.
func (n *Net) AddRoute(dst netip.Addr, prefixLen int, gw, src netip.Addr,
	ifname string) Status {

	return n.manageRoute(rtmsg.TypeAdd, dst, prefixLen, gw, src, ifname)
}

// DelRoute removes a static route previously installed with AddRoute.
func (n *Net) DelRoute(dst netip.Addr, prefixLen int, gw, src netip.Addr,
	ifname string) Status {

	return n.manageRoute(rtmsg.TypeDelete, dst, prefixLen, gw, src, ifname)
}

func (n *Net) manageRoute(op int, dst netip.Addr, prefixLen int,
	gw, src netip.Addr, ifname string) Status {

	if !dst.IsValid() {
		return StatusFailed
	}
	if ifname == "" && src.IsValid() {
		ifname, _ = n.InterfaceName(src)
	}

	if prefixLen == 0 {
		// The kernel special-cases the all-zero route, install two half
		// routes instead.
		if st := n.manageRoute(op, topHalf(dst), 1, gw, src, ifname); st != StatusOK {
			return st
		}
		prefixLen = 1
	}

	flags := rtmsg.FlagUp | rtmsg.FlagStatic
	family := rtmsg.AfInet
	if dst.Is6() {
		family = rtmsg.AfInet6
	}
	if prefixLen == dst.BitLen() {
		flags |= rtmsg.FlagHost | rtmsg.FlagGateway
	}

	b := rtmsg.NewBuilder(op, flags, n.pid, int(n.seq.Add(1)))
	b.AddAddr(rtmsg.RoleDst, dst)
	if gw.IsValid() {
		b.AddAddr(rtmsg.RoleGateway, gw)
	}
	if flags&rtmsg.FlagHost == 0 {
		b.AddNetmask(rtmsg.RoleNetmask, family, prefixLen)
	}
	if ifname != "" {
		b.AddLinkName(rtmsg.RoleIfp, ifname)
	}
	msg, err := b.Bytes()
	if err != nil {
		n.logger.Error("building route message failed", "err", err)
		return StatusFailed
	}

	if err := n.sock.Send(msg); err != nil {
		verb := "adding"
		if op == rtmsg.TypeDelete {
			verb = "deleting"
		}
		n.logger.Error(verb+" route failed",
			"dst", dst, "prefixlen", prefixLen, "err", err)
		return StatusFailed
	}
	return StatusOK
}

// topHalf returns dst with its top bit set, the destination of the upper
// half route replacing a default route.
func topHalf(dst netip.Addr) netip.Addr {
	if dst.Is4() {
		raw := dst.As4()
		raw[0] |= 0x80
		return netip.AddrFrom4(raw)
	}
	raw := dst.As16()
	raw[0] |= 0x80
	return netip.AddrFrom16(raw)
}

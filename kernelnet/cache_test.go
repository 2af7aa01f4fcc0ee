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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclink/seclink/kernelnet/rtmsg"
)

var (
	regularIP   = netip.MustParseAddr("10.1.0.5")
	regular6IP  = netip.MustParseAddr("fd00::5")
	linkLocalIP = netip.MustParseAddr("fe80::1")
	virtualIP   = netip.MustParseAddr("10.99.0.2")
	ignoredIP   = netip.MustParseAddr("172.16.0.1")
	loopbackIP  = netip.MustParseAddr("127.0.0.1")
	downIP      = netip.MustParseAddr("192.168.3.1")
)

// filterCache builds a cache covering every interface and address class the
// enumeration filter distinguishes.
func filterCache() *cache {
	c := &cache{}
	c.init()

	eth := &ifaceEntry{index: 3, name: "eth0", flags: rtmsg.IfFlagUp, usable: true}
	c.insert(eth)
	c.addAddr(eth, regularIP)
	c.addAddr(eth, regular6IP)
	c.addAddr(eth, linkLocalIP)

	tun := &ifaceEntry{index: 7, name: "utun3", flags: rtmsg.IfFlagUp, usable: true}
	c.insert(tun)
	vip := c.addAddr(tun, virtualIP)
	vip.virtual = true
	c.unindex(vip)

	ign := &ifaceEntry{index: 4, name: "ppp0", flags: rtmsg.IfFlagUp}
	c.insert(ign)
	c.addAddr(ign, ignoredIP)

	lo := &ifaceEntry{
		index:  1,
		name:   "lo0",
		flags:  rtmsg.IfFlagUp | rtmsg.IfFlagLoopback,
		usable: true,
	}
	c.insert(lo)
	c.addAddr(lo, loopbackIP)

	down := &ifaceEntry{index: 5, name: "em1", usable: true}
	c.insert(down)
	c.addAddr(down, downIP)

	return c
}

func TestCacheAddresses(t *testing.T) {
	c := filterCache()
	for name, tc := range map[string]struct {
		which AddrFlags
		want  []netip.Addr
	}{
		"regular": {
			which: RegularAddrs,
			want:  []netip.Addr{regularIP, regular6IP},
		},
		"virtual": {
			which: VirtualAddrs,
			want:  []netip.Addr{virtualIP},
		},
		"regular and virtual": {
			which: RegularAddrs | VirtualAddrs,
			want:  []netip.Addr{regularIP, regular6IP, virtualIP},
		},
		"with ignored": {
			which: RegularAddrs | IgnoredIfaces,
			want:  []netip.Addr{regularIP, regular6IP, ignoredIP},
		},
		"with loopback": {
			which: RegularAddrs | LoopbackIfaces,
			want:  []netip.Addr{regularIP, regular6IP, loopbackIP},
		},
		"with down": {
			which: RegularAddrs | DownIfaces,
			want:  []netip.Addr{regularIP, regular6IP, downIP},
		},
		"everything": {
			which: RegularAddrs | VirtualAddrs | IgnoredIfaces |
				LoopbackIfaces | DownIfaces,
			want: []netip.Addr{regularIP, regular6IP, virtualIP,
				ignoredIP, loopbackIP, downIP},
		},
		"none": {
			which: 0,
			want:  nil,
		},
	} {
		t.Run(name, func(t *testing.T) {
			// Link-local addresses never show up, whatever the selection.
			got := c.addresses(tc.which)
			assert.NotContains(t, got, linkLocalIP)
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestCacheMatchSkipsVirtual(t *testing.T) {
	c := filterCache()

	// Reverse lookups only see regular addresses.
	assert.NotNil(t, c.match(regularIP, ifaceUpAndUsable))
	assert.Nil(t, c.match(virtualIP, ifaceUpAndUsable))
	// Visibility scans see both.
	assert.True(t, c.contains(regularIP, ifaceUp))
	assert.True(t, c.contains(virtualIP, ifaceUp))
	assert.False(t, c.contains(downIP, ifaceUp))
}

func TestCacheMatchPolicy(t *testing.T) {
	c := filterCache()

	// The ignored interface's address is local but never matches the
	// usability policy.
	assert.NotNil(t, c.match(ignoredIP, ifaceUp))
	assert.Nil(t, c.match(ignoredIP, ifaceUpAndUsable))
	assert.Nil(t, c.match(downIP, ifaceUp))
}

func TestCacheSharedAddress(t *testing.T) {
	c := &cache{}
	c.init()
	ip := netip.MustParseAddr("10.1.0.5")

	a := &ifaceEntry{index: 3, name: "eth0", flags: rtmsg.IfFlagUp, usable: true}
	b := &ifaceEntry{index: 4, name: "eth1", usable: true}
	c.insert(a)
	c.insert(b)
	addrA := c.addAddr(a, ip)
	c.addAddr(b, ip)

	// With eth1 down only eth0 matches.
	e := c.match(ip, ifaceUpAndUsable)
	require.NotNil(t, e)
	assert.Equal(t, "eth0", e.iface.name)

	// Removing eth0's record leaves eth1's intact.
	c.removeAddr(a, addrA)
	assert.Nil(t, c.match(ip, ifaceUpAndUsable))
	require.Len(t, c.index[ip], 1)
	assert.Equal(t, "eth1", c.index[ip][0].iface.name)

	// Dropping the last record clears the index slot.
	c.removeAddr(b, b.findAddr(ip))
	assert.NotContains(t, c.index, ip)
}

func TestCacheClearAddrs(t *testing.T) {
	c := filterCache()
	eth := c.byName("eth0")
	require.NotNil(t, eth)

	c.clearAddrs(eth)
	assert.Empty(t, eth.addrs)
	assert.NotContains(t, c.index, regularIP)
	assert.NotContains(t, c.index, regular6IP)
	// Other interfaces keep their entries.
	assert.NotNil(t, c.match(ignoredIP, ifaceUp))
}

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

// addrEntry is one address installed on an interface. virtual marks
// addresses this backend assigned to a tunnel device.
type addrEntry struct {
	ip      netip.Addr
	virtual bool
}

// ifaceEntry is the cached state of one interface. usable is decided once by
// the external policy predicate and never re-evaluated.
type ifaceEntry struct {
	index  int
	name   string
	flags  int
	usable bool
	addrs  []*addrEntry
}

func (e *ifaceEntry) up() bool {
	return e.flags&rtmsg.IfFlagUp != 0
}

func (e *ifaceEntry) loopback() bool {
	return e.flags&rtmsg.IfFlagLoopback != 0
}

func (e *ifaceEntry) findAddr(ip netip.Addr) *addrEntry {
	for _, addr := range e.addrs {
		if addr.ip == ip {
			return addr
		}
	}
	return nil
}

// mapEntry is one reverse-index entry, identified by the exact address
// record it indexes. The same IP may be indexed once per interface carrying
// it.
type mapEntry struct {
	iface *ifaceEntry
	addr  *addrEntry
}

func ifaceUp(e *ifaceEntry) bool {
	return e.up()
}

func ifaceUpAndUsable(e *ifaceEntry) bool {
	return e.up() && e.usable
}

// cache holds the ordered interface list and the reverse index from IP to
// interface. It is not synchronized, callers serialize through the owning
// Net's lock.
type cache struct {
	ifaces []*ifaceEntry
	index  map[netip.Addr][]*mapEntry
}

func (c *cache) init() {
	c.index = make(map[netip.Addr][]*mapEntry)
}

func (c *cache) insert(iface *ifaceEntry) {
	c.ifaces = append(c.ifaces, iface)
}

func (c *cache) byIndex(index int) *ifaceEntry {
	for _, iface := range c.ifaces {
		if iface.index == index {
			return iface
		}
	}
	return nil
}

func (c *cache) byName(name string) *ifaceEntry {
	for _, iface := range c.ifaces {
		if iface.name == name {
			return iface
		}
	}
	return nil
}

// addAddr appends a regular address record to iface and indexes it. Callers
// must have checked that iface does not already carry ip.
func (c *cache) addAddr(iface *ifaceEntry, ip netip.Addr) *addrEntry {
	addr := &addrEntry{ip: ip}
	iface.addrs = append(iface.addrs, addr)
	c.index[ip] = append(c.index[ip], &mapEntry{iface: iface, addr: addr})
	return addr
}

// removeAddr drops the address record from iface and from the reverse index.
func (c *cache) removeAddr(iface *ifaceEntry, addr *addrEntry) {
	for i, a := range iface.addrs {
		if a == addr {
			iface.addrs = append(iface.addrs[:i], iface.addrs[i+1:]...)
			break
		}
	}
	c.unindex(addr)
}

func (c *cache) unindex(addr *addrEntry) {
	entries := c.index[addr.ip]
	for i, e := range entries {
		if e.addr == addr {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(entries) == 0 {
		delete(c.index, addr.ip)
	} else {
		c.index[addr.ip] = entries
	}
}

// clearAddrs drops all address records of iface, used before repopulation.
func (c *cache) clearAddrs(iface *ifaceEntry) {
	for _, addr := range iface.addrs {
		c.unindex(addr)
	}
	iface.addrs = nil
}

// contains reports whether any interface satisfying the matcher carries ip,
// virtual or not. Unlike match it scans the address lists instead of the
// reverse index, which never holds virtual addresses.
func (c *cache) contains(ip netip.Addr, matcher func(*ifaceEntry) bool) bool {
	for _, iface := range c.ifaces {
		if !matcher(iface) {
			continue
		}
		if iface.findAddr(ip) != nil {
			return true
		}
	}
	return false
}

// match returns a reverse-index entry for ip whose interface satisfies the
// matcher, or nil.
func (c *cache) match(ip netip.Addr, matcher func(*ifaceEntry) bool) *mapEntry {
	for _, e := range c.index[ip] {
		if matcher(e.iface) {
			return e
		}
	}
	return nil
}

// addresses materializes the filtered address list under the caller's read
// lock.
func (c *cache) addresses(which AddrFlags) []netip.Addr {
	var ips []netip.Addr
	for _, iface := range c.ifaces {
		if which&IgnoredIfaces == 0 && !iface.usable {
			continue
		}
		if which&LoopbackIfaces == 0 && iface.loopback() {
			continue
		}
		if which&DownIfaces == 0 && !iface.up() {
			continue
		}
		for _, addr := range iface.addrs {
			if which&VirtualAddrs == 0 && addr.virtual {
				continue
			}
			if which&RegularAddrs == 0 && !addr.virtual {
				continue
			}
			if addr.ip.Is6() && addr.ip.IsLinkLocalUnicast() {
				// Unusable scope.
				continue
			}
			ips = append(ips, addr.ip)
		}
	}
	return ips
}

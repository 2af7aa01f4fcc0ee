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
)

// AddIP installs vip on a newly created tunnel device and waits until the
// kernel's address event made it visible in the cache. A negative prefixLen
// installs a host prefix. The interface hint is not needed on this backend,
// the tunnel device determines the interface.
func (n *Net) AddIP(vip netip.Addr, prefixLen int, _ string) Status {
	dev, err := n.newDevice()
	if err != nil {
		n.logger.Error("creating tun device failed", "err", err)
		return StatusFailed
	}
	if prefixLen < 0 {
		prefixLen = vip.BitLen()
	}
	if err := dev.Up(); err != nil {
		n.logger.Error("activating tun device failed",
			"interface", dev.Name(), "err", err)
		dev.Close()
		return StatusFailed
	}
	if err := dev.SetAddress(vip, prefixLen); err != nil {
		n.logger.Error("assigning virtual IP failed",
			"vip", vip, "interface", dev.Name(), "err", err)
		dev.Close()
		return StatusFailed
	}

	// Wait until the address appears.
	timeout := false
	n.mux.Lock()
	for !timeout && !n.visible(vip) {
		timeout = n.condWaitTimeout(n.replyTimeout)
	}
	n.mux.Unlock()
	if timeout {
		n.logger.Info("virtual IP did not appear",
			"vip", vip, "interface", dev.Name())
		dev.Close()
		return StatusFailed
	}

	n.lock.Lock()
	n.tuns = append(n.tuns, dev)
	if iface := n.cache.byName(dev.Name()); iface != nil {
		if addr := iface.findAddr(vip); addr != nil && !addr.virtual {
			addr.virtual = true
			// The receiver indexed the address as regular before the flag
			// was set, drop the entry so reverse lookups skip virtual IPs.
			n.cache.unindex(addr)
		}
	}
	// Notify while holding the lock, preventing another thread from
	// deleting the tun device concurrently. Listeners must be quick.
	n.calls.TunCreated(dev)
	n.lock.Unlock()
	n.metrics.virtualIPAdded()

	return StatusOK
}

// DelIP removes the virtual IP by destroying its tunnel device. With wait
// set, DelIP blocks until the kernel's address event removed the address
// from the cache.
func (n *Net) DelIP(vip netip.Addr, _ int, wait bool) Status {
	found := false
	n.lock.Lock()
	for i, dev := range n.tuns {
		addr, ok := dev.Address()
		if !ok || addr != vip {
			continue
		}
		n.tuns = append(n.tuns[:i], n.tuns[i+1:]...)
		n.calls.TunRemoved(dev)
		if err := dev.Close(); err != nil {
			n.logger.Error("closing tun device failed",
				"vip", vip, "err", err)
		}
		found = true
		break
	}
	n.lock.Unlock()

	if !found {
		return StatusNotFound
	}
	n.metrics.virtualIPRemoved()

	if wait {
		// Wait until the address disappears.
		timeout := false
		n.mux.Lock()
		for !timeout && n.visible(vip) {
			timeout = n.condWaitTimeout(n.replyTimeout)
		}
		n.mux.Unlock()
		if timeout {
			n.logger.Info("virtual IP did not disappear from tun",
				"vip", vip)
			return StatusFailed
		}
	}
	return StatusOK
}

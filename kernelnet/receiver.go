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
	"errors"
	"time"

	"golang.org/x/sys/unix"

	"github.com/seclink/seclink/kernelnet/rtmsg"
)

// isTransient reports whether a receive error only asks for a retry.
func isTransient(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN)
}

// run is the event receiver. It reads one routing message at a time from the
// shared socket until the socket is closed by Destroy.
func (n *Net) run() {
	defer close(n.done)
	buf := make([]byte, rtmsg.MaxMsgLen)
	for {
		l, err := n.sock.Recv(buf)
		select {
		case <-n.stop:
			return
		default:
		}
		if err != nil {
			if isTransient(err) {
				continue
			}
			n.logger.Error("unable to receive from routing socket",
				"err", err)
			select {
			case <-time.After(time.Second):
			case <-n.stop:
				return
			}
			continue
		}
		n.handle(buf[:l])
	}
}

// handle validates and dispatches one routing message, then wakes any waiter
// under the broker mutex.
func (n *Net) handle(buf []byte) {
	n.metrics.event()
	h, err := rtmsg.Parse(buf)
	if err != nil {
		n.logger.Debug("received invalid routing message", "err", err)
		n.metrics.eventDropped()
		return
	}
	var hdrlen int
	switch h.Type() {
	case rtmsg.TypeNewAddr, rtmsg.TypeDelAddr:
		hdrlen = rtmsg.HdrLenIfAddr
	case rtmsg.TypeIfInfo:
		hdrlen = rtmsg.HdrLenIfInfo
	case rtmsg.TypeAdd, rtmsg.TypeDelete, rtmsg.TypeGet:
		hdrlen = rtmsg.HdrLenRoute
	default:
		return
	}
	if h.Len() < hdrlen {
		n.logger.Debug("ignoring short routing message",
			"type", h.Type(), "msglen", h.Len())
		n.metrics.eventDropped()
		return
	}
	msg := buf[:h.Len()]
	switch h.Type() {
	case rtmsg.TypeNewAddr:
		n.processAddr(msg, false)
	case rtmsg.TypeDelAddr:
		n.processAddr(msg, true)
	case rtmsg.TypeIfInfo:
		n.processLink(msg)
	case rtmsg.TypeAdd, rtmsg.TypeDelete:
		// Route changes by other processes are observed and ignored.
	}

	n.mux.Lock()
	if len(msg) >= rtmsg.HdrLenRoute && h.Pid() == n.pid && h.Seq() == n.waitingSeq {
		// The message someone is waiting for, deliver.
		n.reply = append(n.reply[:0], msg...)
	}
	// Signal on any event, AddIP/DelIP might wait for it.
	n.cond.Broadcast()
	n.mux.Unlock()
}

// processAddr applies an address-change message to the cache and arms a roam
// event if the usable address set changed.
func (n *Net) processAddr(buf []byte, del bool) {
	h := rtmsg.IfAddrHeader(buf)
	sa, ok := rtmsg.Find(buf, rtmsg.HdrLenIfAddr, h.Addrs(), rtmsg.RoleIfa)
	if !ok {
		return
	}
	ip, ok := rtmsg.ParseAddr(sa)
	if !ok {
		return
	}

	roam := false
	n.lock.Lock()
	if iface := n.cache.byIndex(h.Index()); iface != nil {
		changed := false
		addr := iface.findAddr(ip)
		switch {
		case addr != nil && del:
			if !addr.virtual && iface.usable {
				changed = true
				n.logger.Info("address disappeared",
					"addr", ip, "interface", iface.name)
			}
			n.cache.removeAddr(iface, addr)
		case addr == nil && !del:
			changed = true
			n.cache.addAddr(iface, ip)
			if iface.usable {
				n.logger.Info("address appeared",
					"addr", ip, "interface", iface.name)
			}
		}
		roam = changed && iface.up() && iface.usable
	}
	n.lock.Unlock()

	if roam {
		n.fireRoam(true)
	}
}

// processLink applies a link-state message. Every message for a known
// interface overwrites its flags and repopulates its addresses from a fresh
// OS query, since the kernel does not emit per-address events for all state
// transitions. Only transitions of a usable interface into or out of UP roam.
func (n *Net) processLink(buf []byte) {
	h := rtmsg.IfInfoHeader(buf)

	roam := false
	n.lock.Lock()
	if iface := n.cache.byIndex(h.Index()); iface != nil {
		if iface.usable {
			switch {
			case !iface.up() && h.Flags()&rtmsg.IfFlagUp != 0:
				roam = true
				n.logger.Info("interface activated", "interface", iface.name)
			case iface.up() && h.Flags()&rtmsg.IfFlagUp == 0:
				roam = true
				n.logger.Info("interface deactivated", "interface", iface.name)
			}
		}
		iface.flags = h.Flags()
		n.repopulate(iface)
	} else if name, err := n.system.NameByIndex(h.Index()); err == nil {
		n.logger.Info("interface appeared", "interface", name)
		iface := &ifaceEntry{
			index:  h.Index(),
			name:   name,
			flags:  h.Flags(),
			usable: n.calls.IsInterfaceUsable(name),
		}
		n.repopulate(iface)
		n.cache.insert(iface)
	}
	n.lock.Unlock()

	if roam {
		n.fireRoam(true)
	}
}

// repopulate replaces all addresses of iface with the current OS-reported
// set for its name. Addresses that were flagged virtual keep the flag and stay
// out of the reverse index. The caller holds the write lock.
func (n *Net) repopulate(iface *ifaceEntry) {
	var virtual []*addrEntry
	for _, addr := range iface.addrs {
		if addr.virtual {
			virtual = append(virtual, addr)
		}
	}
	n.cache.clearAddrs(iface)
	ifs, err := n.system.InterfaceAddrs()
	if err != nil {
		n.logger.Error("repopulating interface failed",
			"interface", iface.name, "err", err)
		return
	}
	for _, si := range ifs {
		if si.Name != iface.name {
			continue
		}
		for _, ip := range si.Addrs {
			addr := n.cache.addAddr(iface, ip)
			for _, v := range virtual {
				if v.ip == ip {
					addr.virtual = true
					n.cache.unindex(addr)
				}
			}
		}
	}
}

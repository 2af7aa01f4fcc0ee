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
	"time"

	"github.com/seclink/seclink/kernelnet/rtmsg"
)

// SourceAddr returns the local address the kernel selects as source for
// packets towards dest. hint restricts the lookup to routes with that
// source, pass the zero Addr for none.
func (n *Net) SourceAddr(dest, hint netip.Addr) (netip.Addr, bool) {
	return n.getRoute(false, dest, hint)
}

// Nexthop returns the gateway towards dest as reported by the kernel's
// routing table. For direct routes the destination itself is returned.
func (n *Net) Nexthop(dest, hint netip.Addr) (netip.Addr, bool) {
	return n.getRoute(true, dest, hint)
}

// getRoute issues a route query and waits for the correlated reply. Only one
// query is in flight at a time, the waiting-sequence slot serializes
// callers.
func (n *Net) getRoute(nexthop bool, dest, src netip.Addr) (netip.Addr, bool) {
	seq := int(n.seq.Add(1))
	b := rtmsg.NewBuilder(rtmsg.TypeGet, 0, n.pid, seq)
	b.AddAddr(rtmsg.RoleDst, dest)
	if !nexthop {
		// An empty IFP makes the kernel report the source address.
		b.AddLinkName(rtmsg.RoleIfp, "")
	}
	if src.IsValid() {
		b.AddAddr(rtmsg.RoleIfa, src)
	}
	msg, err := b.Bytes()
	if err != nil {
		n.logger.Error("building route query failed", "err", err)
		return netip.Addr{}, false
	}
	n.metrics.routeQuery()

	n.mux.Lock()
	defer n.mux.Unlock()
	for n.waitingSeq != 0 {
		n.cond.Wait()
	}
	n.waitingSeq = seq

	var result netip.Addr
	if err := n.sock.Send(msg); err == nil {
		for {
			if len(n.reply) >= rtmsg.HdrLenRoute &&
				rtmsg.Header(n.reply).Seq() == seq {
				result = routeAnswer(n.reply, nexthop)
				break
			}
			if n.condWaitTimeout(n.replyTimeout) {
				n.metrics.routeQueryTimeout()
				break
			}
		}
	} else {
		n.logger.Error("route lookup failed", "err", err)
	}
	// Signal completion of the query to a waiting thread.
	n.waitingSeq = 0
	n.cond.Signal()
	return result, result.IsValid()
}

// routeAnswer extracts the answer host from a route reply. The first
// sockaddr whose role matches the query kind wins.
func routeAnswer(reply []byte, nexthop bool) netip.Addr {
	h := rtmsg.Header(reply)
	it := rtmsg.IterAddrs(reply, rtmsg.HdrLenRoute, h.Addrs())
	for {
		role, sa, ok := it.Next()
		if !ok {
			return netip.Addr{}
		}
		var match bool
		switch {
		case nexthop && role == rtmsg.RoleGateway:
			match = true
		case nexthop && role == rtmsg.RoleDst && h.Flags()&rtmsg.FlagHost != 0:
			// Probably a cloned direct route, the destination is the hop.
			match = true
		case !nexthop && role == rtmsg.RoleIfa:
			match = true
		}
		if match {
			ip, _ := rtmsg.ParseAddr(sa)
			return ip
		}
	}
}

// condWaitTimeout waits on the condition variable for at most d. It returns
// true if the wait timed out, false for any other wake-up. The caller holds
// the broker mutex and must re-check its predicate, broadcasts are used
// liberally.
func (n *Net) condWaitTimeout(d time.Duration) bool {
	timedOut := false
	t := time.AfterFunc(d, func() {
		n.mux.Lock()
		timedOut = true
		n.cond.Broadcast()
		n.mux.Unlock()
	})
	n.cond.Wait()
	t.Stop()
	return timedOut
}

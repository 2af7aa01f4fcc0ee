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

// Package rtmsg encodes and decodes the messages exchanged with the kernel
// over a raw routing socket. A message is a fixed header followed by a packed
// sequence of variable-length sockaddrs; which sockaddrs are present is
// indicated by a bitmask in the header, in role order. Sockaddrs carry a
// self-declared length byte which is honoured throughout, the kernel emits
// truncated sockaddrs for netmasks.
package rtmsg

import (
	"encoding/binary"
	"net/netip"

	"github.com/seclink/seclink/pkg/private/serrors"
)

// Version is the routing message version understood by this codec. Messages
// carrying any other version byte must be dropped.
const Version = 5

// Message types dispatched by the event receiver.
const (
	TypeAdd     = 0x1 // add a route
	TypeDelete  = 0x2 // delete a route
	TypeGet     = 0x4 // query the routing table, kernel replies in kind
	TypeNewAddr = 0xc // address added to an interface
	TypeDelAddr = 0xd // address removed from an interface
	TypeIfInfo  = 0xe // interface link state change
)

// Role identifies the position of a sockaddr in a routing message. The
// header's address bitmask has bit i set iff the sockaddr for role i is
// present; sockaddrs appear in role order.
type Role int

// The well-known sockaddr roles.
const (
	RoleDst Role = iota
	RoleGateway
	RoleNetmask
	RoleGenmask
	RoleIfp
	RoleIfa
	RoleAuthor
	RoleBrd

	// NumRoles is the number of well-known roles (RTAX_MAX).
	NumRoles
)

// Bit returns the bitmask bit for the role.
func (r Role) Bit() int {
	return 1 << r
}

// Route flags used when programming and interpreting routes.
const (
	FlagUp      = 0x1
	FlagGateway = 0x2
	FlagHost    = 0x4
	FlagStatic  = 0x800
)

// Interface flags mirrored from the kernel's flag word.
const (
	IfFlagUp       = 0x1
	IfFlagLoopback = 0x8
)

// Address families as used inside sockaddrs.
const (
	AfInet  = 2
	AfLink  = 18
	AfInet6 = 30
)

// Fixed header sizes. The route header carries the originator pid and the
// sequence number used for request/reply correlation; the interface headers
// only share the msglen/version/type prefix with it.
const (
	HdrLenRoute  = 92
	HdrLenIfAddr = 20
	HdrLenIfInfo = 112

	// MinHdrLen is the common prefix every message must cover: length,
	// version, type and the flags word of the route header view.
	MinHdrLen = 12

	// MaxSockaddrLen bounds a single sockaddr (sockaddr_storage).
	MaxSockaddrLen = 128

	// MaxMsgLen bounds a full message: route header plus one maximum-size
	// sockaddr per role.
	MaxMsgLen = HdrLenRoute + int(NumRoles)*MaxSockaddrLen
)

// byteOrder is the host byte order; routing messages are native-endian.
var byteOrder = binary.NativeEndian

// Header is a view over the route header (rt_msghdr) of a message buffer.
// All field accessors are bounds-safe only after a successful Parse.
type Header []byte

// Parse validates the common prefix of a routing message: the buffer must
// cover the minimal header, the self-declared length must not exceed the
// received bytes, and the version must match.
func Parse(buf []byte) (Header, error) {
	if len(buf) < MinHdrLen {
		return nil, serrors.New("message shorter than header prefix", "len", len(buf))
	}
	h := Header(buf)
	if h.Len() < MinHdrLen || h.Len() > len(buf) {
		return nil, serrors.New("message length field invalid",
			"msglen", h.Len(), "received", len(buf))
	}
	if h.Version() != Version {
		return nil, serrors.New("unsupported message version",
			"version", h.Version(), "expected", Version)
	}
	return h, nil
}

// Len returns the message's self-declared total length.
func (h Header) Len() int {
	return int(byteOrder.Uint16(h[0:2]))
}

// Version returns the message version byte.
func (h Header) Version() int {
	return int(h[2])
}

// Type returns the message type.
func (h Header) Type() int {
	return int(h[3])
}

// Flags returns the route flags word.
func (h Header) Flags() int {
	return int(int32(byteOrder.Uint32(h[8:12])))
}

// Addrs returns the sockaddr role bitmask of the route header view.
func (h Header) Addrs() int {
	return int(int32(byteOrder.Uint32(h[12:16])))
}

// Pid returns the pid of the message originator.
func (h Header) Pid() int {
	return int(int32(byteOrder.Uint32(h[16:20])))
}

// Seq returns the sequence number.
func (h Header) Seq() int {
	return int(int32(byteOrder.Uint32(h[20:24])))
}

// IfAddrHeader is a view over an address-change (ifa_msghdr) message.
type IfAddrHeader []byte

// Addrs returns the sockaddr role bitmask.
func (h IfAddrHeader) Addrs() int {
	return int(int32(byteOrder.Uint32(h[4:8])))
}

// Index returns the interface index the address change refers to.
func (h IfAddrHeader) Index() int {
	return int(byteOrder.Uint16(h[12:14]))
}

// IfInfoHeader is a view over a link-change (if_msghdr) message.
type IfInfoHeader []byte

// Addrs returns the sockaddr role bitmask.
func (h IfInfoHeader) Addrs() int {
	return int(int32(byteOrder.Uint32(h[4:8])))
}

// Flags returns the interface flag word.
func (h IfInfoHeader) Flags() int {
	return int(int32(byteOrder.Uint32(h[8:12])))
}

// Index returns the interface index.
func (h IfInfoHeader) Index() int {
	return int(byteOrder.Uint16(h[12:14]))
}

// Iter walks the (role, sockaddr) pairs following a fixed header. The
// iteration stops when the remaining bytes are smaller than the next
// sockaddr's self-declared length; malformed tails truncate silently.
type Iter struct {
	addrs     int
	remaining []byte
	role      Role
}

// IterAddrs creates an iterator over the sockaddrs of the message in buf.
// hdrlen is the fixed-header length of the message's concrete type and addrs
// its role bitmask. The full buffer length is bounded by the message's
// self-declared length, which the caller has validated via Parse.
func IterAddrs(buf []byte, hdrlen int, addrs int) *Iter {
	if hdrlen > len(buf) {
		return &Iter{}
	}
	return &Iter{
		addrs:     addrs,
		remaining: buf[hdrlen:],
	}
}

// Next returns the next (role, raw sockaddr) pair. The returned slice aliases
// the message buffer. ok is false when the sequence is exhausted.
func (it *Iter) Next() (Role, []byte, bool) {
	for it.role < NumRoles {
		role := it.role
		if it.addrs&role.Bit() == 0 {
			it.role++
			continue
		}
		if len(it.remaining) < 1 {
			return 0, nil, false
		}
		saLen := int(it.remaining[0])
		if saLen == 0 || saLen > len(it.remaining) {
			return 0, nil, false
		}
		sa := it.remaining[:saLen]
		it.remaining = it.remaining[saLen:]
		it.role++
		return role, sa, true
	}
	return 0, nil, false
}

// Find returns the raw sockaddr stored under the given role, if present.
func Find(buf []byte, hdrlen int, addrs int, role Role) ([]byte, bool) {
	it := IterAddrs(buf, hdrlen, addrs)
	for {
		r, sa, ok := it.Next()
		if !ok {
			return nil, false
		}
		if r == role {
			return sa, true
		}
	}
}

// ParseAddr extracts the IP address from a raw sockaddr_in/sockaddr_in6.
// Sockaddrs truncated below their nominal size are zero-extended, matching
// the kernel's behavior for netmasks.
func ParseAddr(sa []byte) (netip.Addr, bool) {
	if len(sa) < 2 {
		return netip.Addr{}, false
	}
	switch int(sa[1]) {
	case AfInet:
		var raw [4]byte
		copyField(raw[:], sa, 4)
		return netip.AddrFrom4(raw), true
	case AfInet6:
		var raw [16]byte
		copyField(raw[:], sa, 8)
		return netip.AddrFrom16(raw), true
	}
	return netip.Addr{}, false
}

// MaskBits counts the leading one bits of a netmask sockaddr for the given
// family. Truncated netmask sockaddrs are zero-extended, so a short sockaddr
// yields the prefix length its present bytes encode.
func MaskBits(sa []byte, family int) (int, bool) {
	var raw []byte
	switch family {
	case AfInet:
		var b [4]byte
		copyField(b[:], sa, 4)
		raw = b[:]
	case AfInet6:
		var b [16]byte
		copyField(b[:], sa, 8)
		raw = b[:]
	default:
		return 0, false
	}
	bits := 0
	for _, octet := range raw {
		if octet == 0xff {
			bits += 8
			continue
		}
		for mask := byte(0x80); mask != 0 && octet&mask != 0; mask >>= 1 {
			bits++
		}
		break
	}
	return bits, true
}

// ParseLinkName extracts the interface name from a raw sockaddr_dl.
func ParseLinkName(sa []byte) (string, bool) {
	if len(sa) < 6 || int(sa[1]) != AfLink {
		return "", false
	}
	nlen := int(sa[5])
	if 8+nlen > len(sa) {
		return "", false
	}
	return string(sa[8 : 8+nlen]), true
}

// copyField copies into dst the bytes of sa starting at off, zero-extending
// if sa's self-declared length ends early.
func copyField(dst []byte, sa []byte, off int) {
	for i := range dst {
		if off+i < len(sa) {
			dst[i] = sa[off+i]
		} else {
			dst[i] = 0
		}
	}
}

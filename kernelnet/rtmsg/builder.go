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

package rtmsg

import (
	"net/netip"

	"github.com/seclink/seclink/pkg/private/serrors"
)

// Sockaddr sizes as emitted by the builder.
const (
	sockaddrInLen   = 16
	sockaddrIn6Len  = 28
	sockaddrDataLen = 12 // name bytes available in a sockaddr_dl
	sockaddrDlLen   = 20
)

// Builder assembles a route message: a route header followed by sockaddrs
// appended in role order. Sockaddrs must be added in strictly increasing role
// order; the header's length and role bitmask are kept consistent on every
// append.
type Builder struct {
	buf      []byte
	lastRole Role
	err      error
}

// NewBuilder creates a route message of the given type. The flags word, pid
// and seq are stored in the header so the kernel's reply can be correlated.
func NewBuilder(msgType, flags, pid, seq int) *Builder {
	buf := make([]byte, HdrLenRoute, MaxMsgLen)
	byteOrder.PutUint16(buf[0:2], uint16(HdrLenRoute))
	buf[2] = Version
	buf[3] = byte(msgType)
	byteOrder.PutUint32(buf[8:12], uint32(int32(flags)))
	byteOrder.PutUint32(buf[16:20], uint32(int32(pid)))
	byteOrder.PutUint32(buf[20:24], uint32(int32(seq)))
	return &Builder{buf: buf, lastRole: -1}
}

// AddAddr appends a sockaddr_in or sockaddr_in6 carrying addr under the given
// role.
func (b *Builder) AddAddr(role Role, addr netip.Addr) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case addr.Is4():
		sa := make([]byte, sockaddrInLen)
		sa[0] = sockaddrInLen
		sa[1] = AfInet
		raw := addr.As4()
		copy(sa[4:8], raw[:])
		b.append(role, sa)
	case addr.Is6():
		sa := make([]byte, sockaddrIn6Len)
		sa[0] = sockaddrIn6Len
		sa[1] = AfInet6
		raw := addr.As16()
		copy(sa[8:24], raw[:])
		b.append(role, sa)
	default:
		b.err = serrors.New("invalid address", "role", int(role))
	}
	return b
}

// AddNetmask appends a full-length netmask sockaddr for the address family
// with the topmost prefixLen bits set.
func (b *Builder) AddNetmask(role Role, family, prefixLen int) *Builder {
	if b.err != nil {
		return b
	}
	var sa []byte
	var off, bits int
	switch family {
	case AfInet:
		sa = make([]byte, sockaddrInLen)
		sa[0] = sockaddrInLen
		off, bits = 4, 32
	case AfInet6:
		sa = make([]byte, sockaddrIn6Len)
		sa[0] = sockaddrIn6Len
		off, bits = 8, 128
	default:
		b.err = serrors.New("unsupported netmask family", "family", family)
		return b
	}
	if prefixLen < 0 || prefixLen > bits {
		b.err = serrors.New("prefix length out of range",
			"prefixlen", prefixLen, "bits", bits)
		return b
	}
	sa[1] = byte(family)
	for i := 0; i < prefixLen; i++ {
		sa[off+i/8] |= 0x80 >> (i % 8)
	}
	b.append(role, sa)
	return b
}

// AddLinkName appends a sockaddr_dl carrying an interface name under the
// given role. An empty name yields an empty sockaddr_dl, which asks the
// kernel to fill in the interface on replies.
func (b *Builder) AddLinkName(role Role, name string) *Builder {
	if b.err != nil {
		return b
	}
	if len(name) > sockaddrDataLen {
		b.err = serrors.New("interface name too long", "name", name)
		return b
	}
	sa := make([]byte, sockaddrDlLen)
	sa[0] = sockaddrDlLen
	sa[1] = AfLink
	sa[5] = byte(len(name)) // sdl_nlen
	copy(sa[8:], name)
	b.append(role, sa)
	return b
}

func (b *Builder) append(role Role, sa []byte) {
	if role <= b.lastRole || role >= NumRoles {
		b.err = serrors.New("sockaddr role out of order", "role", int(role))
		return
	}
	b.lastRole = role
	b.buf = append(b.buf, sa...)
	byteOrder.PutUint16(b.buf[0:2], uint16(len(b.buf)))
	addrs := byteOrder.Uint32(b.buf[12:16])
	byteOrder.PutUint32(b.buf[12:16], addrs|uint32(role.Bit()))
}

// Bytes returns the assembled message, or an error if any append failed.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.buf, nil
}

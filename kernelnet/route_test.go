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
	"github.com/seclink/seclink/pkg/private/serrors"
)

func TestAddRouteNet(t *testing.T) {
	tn := newTestNet(t, nil)
	dst := netip.MustParseAddr("10.9.0.0")
	gw := netip.MustParseAddr("10.1.0.1")

	st := tn.AddRoute(dst, 24, gw, netip.Addr{}, "eth0")
	require.Equal(t, StatusOK, st)

	sent := tn.sock.sentMsgs()
	require.Len(t, sent, 1)
	h, parts := parseRoute(t, sent[0])
	assert.Equal(t, rtmsg.TypeAdd, h.Type())
	assert.Equal(t, rtmsg.FlagUp|rtmsg.FlagStatic, h.Flags())

	got, ok := rtmsg.ParseAddr(parts[rtmsg.RoleDst])
	require.True(t, ok)
	assert.Equal(t, dst, got)
	got, ok = rtmsg.ParseAddr(parts[rtmsg.RoleGateway])
	require.True(t, ok)
	assert.Equal(t, gw, got)
	bits, ok := rtmsg.MaskBits(parts[rtmsg.RoleNetmask], rtmsg.AfInet)
	require.True(t, ok)
	assert.Equal(t, 24, bits)
	name, ok := rtmsg.ParseLinkName(parts[rtmsg.RoleIfp])
	require.True(t, ok)
	assert.Equal(t, "eth0", name)
}

func TestAddRouteHost(t *testing.T) {
	tn := newTestNet(t, nil)
	dst := netip.MustParseAddr("10.9.0.1")
	gw := netip.MustParseAddr("10.1.0.1")

	st := tn.AddRoute(dst, 32, gw, netip.Addr{}, "eth0")
	require.Equal(t, StatusOK, st)

	sent := tn.sock.sentMsgs()
	require.Len(t, sent, 1)
	h, parts := parseRoute(t, sent[0])
	assert.Equal(t,
		rtmsg.FlagUp|rtmsg.FlagStatic|rtmsg.FlagHost|rtmsg.FlagGateway,
		h.Flags())
	// Host routes carry no netmask.
	assert.NotContains(t, parts, rtmsg.RoleNetmask)
}

func TestAddRouteDefaultSplit(t *testing.T) {
	for name, tc := range map[string]struct {
		dst, gw  netip.Addr
		family   int
		topHalf  netip.Addr
		maskBits int
	}{
		"ipv4": {
			dst:     netip.MustParseAddr("0.0.0.0"),
			gw:      netip.MustParseAddr("10.1.0.1"),
			family:  rtmsg.AfInet,
			topHalf: netip.MustParseAddr("128.0.0.0"),
		},
		"ipv6": {
			dst:     netip.MustParseAddr("::"),
			gw:      netip.MustParseAddr("fd00::1"),
			family:  rtmsg.AfInet6,
			topHalf: netip.MustParseAddr("8000::"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			tn := newTestNet(t, nil)
			st := tn.AddRoute(tc.dst, 0, tc.gw, netip.Addr{}, "eth0")
			require.Equal(t, StatusOK, st)

			// The all-zero route is installed as two half routes, upper
			// half first.
			sent := tn.sock.sentMsgs()
			require.Len(t, sent, 2)
			for i, wantDst := range []netip.Addr{tc.topHalf, tc.dst} {
				h, parts := parseRoute(t, sent[i])
				assert.Equal(t, rtmsg.FlagUp|rtmsg.FlagStatic, h.Flags())
				got, ok := rtmsg.ParseAddr(parts[rtmsg.RoleDst])
				require.True(t, ok)
				assert.Equal(t, wantDst, got)
				bits, ok := rtmsg.MaskBits(parts[rtmsg.RoleNetmask], tc.family)
				require.True(t, ok)
				assert.Equal(t, 1, bits)
			}
		})
	}
}

func TestDelRoute(t *testing.T) {
	tn := newTestNet(t, nil)

	st := tn.DelRoute(netip.MustParseAddr("10.9.0.0"), 24,
		netip.MustParseAddr("10.1.0.1"), netip.Addr{}, "eth0")
	require.Equal(t, StatusOK, st)

	sent := tn.sock.sentMsgs()
	require.Len(t, sent, 1)
	h, _ := parseRoute(t, sent[0])
	assert.Equal(t, rtmsg.TypeDelete, h.Type())
}

func TestRouteIfnameFromSource(t *testing.T) {
	src := netip.MustParseAddr("10.1.0.5")
	tn := newTestNet(t, func(cfg *Config) {
		cfg.System.(*fakeSystem).set(eth0(src))
	})

	st := tn.AddRoute(netip.MustParseAddr("10.9.0.0"), 24,
		netip.MustParseAddr("10.1.0.1"), src, "")
	require.Equal(t, StatusOK, st)

	sent := tn.sock.sentMsgs()
	require.Len(t, sent, 1)
	_, parts := parseRoute(t, sent[0])
	name, ok := rtmsg.ParseLinkName(parts[rtmsg.RoleIfp])
	require.True(t, ok)
	assert.Equal(t, "eth0", name)
}

func TestRouteFailures(t *testing.T) {
	t.Run("invalid destination", func(t *testing.T) {
		tn := newTestNet(t, nil)
		st := tn.AddRoute(netip.Addr{}, 24,
			netip.MustParseAddr("10.1.0.1"), netip.Addr{}, "eth0")
		assert.Equal(t, StatusFailed, st)
		assert.Empty(t, tn.sock.sentMsgs())
	})
	t.Run("send fails", func(t *testing.T) {
		tn := newTestNet(t, nil)
		tn.sock.failSends(serrors.New("network is down"))
		st := tn.AddRoute(netip.MustParseAddr("10.9.0.0"), 24,
			netip.MustParseAddr("10.1.0.1"), netip.Addr{}, "eth0")
		assert.Equal(t, StatusFailed, st)
	})
	t.Run("prefix out of range", func(t *testing.T) {
		tn := newTestNet(t, nil)
		st := tn.AddRoute(netip.MustParseAddr("10.9.0.0"), 64,
			netip.MustParseAddr("10.1.0.1"), netip.Addr{}, "eth0")
		assert.Equal(t, StatusFailed, st)
		assert.Empty(t, tn.sock.sentMsgs())
	})
}

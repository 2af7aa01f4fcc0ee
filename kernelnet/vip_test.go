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
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclink/seclink/kernelnet/rtmsg"
	"github.com/seclink/seclink/kernelnet/tundev"
	"github.com/seclink/seclink/kernelnet/tundev/mock_tundev"
	"github.com/seclink/seclink/pkg/private/serrors"
)

const tunIndex = 7

// newVIPNet builds a Net whose device factory hands out dev and simulates
// the kernel events a tunnel device triggers: on address assignment the
// interface appears with its address, on close the address is withdrawn.
func newVIPNet(t *testing.T, dev *fakeDevice) *testNet {
	t.Helper()
	tn := newTestNet(t, func(cfg *Config) {
		cfg.NewDevice = func() (tundev.Device, error) {
			return dev, nil
		}
	})
	dev.onSetAddress = func(ip netip.Addr, _ int) {
		tn.sys.add(SystemInterface{
			Index: tunIndex,
			Name:  dev.name,
			Flags: rtmsg.IfFlagUp,
			Addrs: []netip.Addr{ip},
		})
		tn.sock.inject(linkMsg(tunIndex, rtmsg.IfFlagUp))
	}
	dev.onClose = func() {
		if addr, ok := dev.Address(); ok {
			tn.sock.inject(addrMsg(rtmsg.TypeDelAddr, tunIndex, addr))
		}
	}
	return tn
}

func TestAddIP(t *testing.T) {
	dev := &fakeDevice{name: "utun3"}
	tn := newVIPNet(t, dev)
	vip := netip.MustParseAddr("10.99.0.2")

	st := tn.AddIP(vip, -1, "")
	require.Equal(t, StatusOK, st)
	assert.Equal(t, 32, dev.prefixLen)
	assert.True(t, dev.up)
	assert.Equal(t, []tundev.Device{dev}, tn.calls.created)

	// The virtual IP shows up only under the virtual selector and never in
	// name lookups.
	assert.Equal(t, []netip.Addr{vip}, tn.Addresses(VirtualAddrs))
	assert.Empty(t, tn.Addresses(RegularAddrs))
	_, ok := tn.InterfaceName(vip)
	assert.False(t, ok)

	checkCacheInvariants(t, tn.Net)
}

func TestAddDelIP(t *testing.T) {
	dev := &fakeDevice{name: "utun3"}
	tn := newVIPNet(t, dev)
	vip := netip.MustParseAddr("10.99.0.2")

	require.Equal(t, StatusOK, tn.AddIP(vip, 32, ""))
	require.Equal(t, StatusOK, tn.DelIP(vip, 32, true))

	assert.True(t, dev.isClosed())
	assert.Equal(t, []tundev.Device{dev}, tn.calls.removed)
	assert.Empty(t, tn.Addresses(VirtualAddrs))
	checkCacheInvariants(t, tn.Net)
}

func TestDelIPNoWait(t *testing.T) {
	dev := &fakeDevice{name: "utun3"}
	tn := newVIPNet(t, dev)
	vip := netip.MustParseAddr("10.99.0.2")

	require.Equal(t, StatusOK, tn.AddIP(vip, 32, ""))
	require.Equal(t, StatusOK, tn.DelIP(vip, 32, false))
	assert.True(t, dev.isClosed())
}

func TestDelIPUnknown(t *testing.T) {
	tn := newTestNet(t, nil)
	st := tn.DelIP(netip.MustParseAddr("10.99.0.2"), 32, false)
	assert.Equal(t, StatusNotFound, st)
}

func TestAddIPv6(t *testing.T) {
	dev := &fakeDevice{name: "utun3"}
	tn := newVIPNet(t, dev)
	vip := netip.MustParseAddr("fd00:aa::2")

	st := tn.AddIP(vip, -1, "")
	require.Equal(t, StatusOK, st)
	assert.Equal(t, 128, dev.prefixLen)
	assert.Equal(t, []netip.Addr{vip}, tn.Addresses(VirtualAddrs))
}

func TestAddIPFailures(t *testing.T) {
	vip := netip.MustParseAddr("10.99.0.2")

	t.Run("device creation fails", func(t *testing.T) {
		tn := newTestNet(t, func(cfg *Config) {
			cfg.NewDevice = func() (tundev.Device, error) {
				return nil, serrors.New("out of tun devices")
			}
		})
		assert.Equal(t, StatusFailed, tn.AddIP(vip, 32, ""))
	})
	t.Run("activation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dev := mock_tundev.NewMockDevice(ctrl)
		dev.EXPECT().Name().Return("utun3").AnyTimes()
		dev.EXPECT().Up().Return(serrors.New("device busy"))
		dev.EXPECT().Close()
		tn := newTestNet(t, func(cfg *Config) {
			cfg.NewDevice = func() (tundev.Device, error) { return dev, nil }
		})
		assert.Equal(t, StatusFailed, tn.AddIP(vip, 32, ""))
	})
	t.Run("address assignment fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dev := mock_tundev.NewMockDevice(ctrl)
		dev.EXPECT().Name().Return("utun3").AnyTimes()
		dev.EXPECT().Up()
		dev.EXPECT().SetAddress(vip, 32).Return(serrors.New("address in use"))
		dev.EXPECT().Close()
		tn := newTestNet(t, func(cfg *Config) {
			cfg.NewDevice = func() (tundev.Device, error) { return dev, nil }
		})
		assert.Equal(t, StatusFailed, tn.AddIP(vip, 32, ""))
	})
	t.Run("address never appears", func(t *testing.T) {
		dev := &fakeDevice{name: "utun3"}
		tn := newTestNet(t, func(cfg *Config) {
			cfg.NewDevice = func() (tundev.Device, error) { return dev, nil }
		})
		tn.replyTimeout = 10 * time.Millisecond
		assert.Equal(t, StatusFailed, tn.AddIP(vip, 32, ""))
		assert.True(t, dev.isClosed())
		assert.Empty(t, tn.calls.created)
	})
}

func TestDestroyClosesTunnels(t *testing.T) {
	dev := &fakeDevice{name: "utun3"}
	tn := newVIPNet(t, dev)
	require.Equal(t, StatusOK, tn.AddIP(netip.MustParseAddr("10.99.0.2"), 32, ""))

	tn.Destroy()
	assert.True(t, dev.isClosed())
}

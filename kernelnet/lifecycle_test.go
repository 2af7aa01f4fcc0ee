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

package kernelnet_test

import (
	"net"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclink/seclink/kernelnet"
	"github.com/seclink/seclink/kernelnet/mock_kernelnet"
	"github.com/seclink/seclink/kernelnet/rtmsg"
)

func TestLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ip := netip.MustParseAddr("10.1.0.5")
	closed := make(chan struct{})

	sock := mock_kernelnet.NewMockRouteSocket(ctrl)
	sock.EXPECT().Recv(gomock.Any()).DoAndReturn(func([]byte) (int, error) {
		<-closed
		return 0, net.ErrClosed
	}).AnyTimes()
	sock.EXPECT().Close().DoAndReturn(func() error {
		close(closed)
		return nil
	})

	calls := mock_kernelnet.NewMockCallbacks(ctrl)
	calls.EXPECT().IsInterfaceUsable("eth0").Return(true)
	calls.EXPECT().IsInterfaceUsable("ppp0").Return(false)

	system := mock_kernelnet.NewMockSystemAPI(ctrl)
	system.EXPECT().InterfaceAddrs().Return([]kernelnet.SystemInterface{
		{
			Index: 3,
			Name:  "eth0",
			Flags: rtmsg.IfFlagUp,
			Addrs: []netip.Addr{ip},
		},
		{
			Index: 4,
			Name:  "ppp0",
			Flags: rtmsg.IfFlagUp,
			Addrs: []netip.Addr{netip.MustParseAddr("172.16.0.1")},
		},
	}, nil)

	n, err := kernelnet.New(kernelnet.Config{
		Callbacks: calls,
		Socket:    sock,
		System:    system,
	})
	require.NoError(t, err)

	assert.Equal(t, kernelnet.FeatureRequireExcludeRoute, n.Features())

	name, ok := n.InterfaceName(ip)
	require.True(t, ok)
	assert.Equal(t, "eth0", name)

	assert.Equal(t, []netip.Addr{ip}, n.Addresses(kernelnet.RegularAddrs))

	n.Destroy()
}

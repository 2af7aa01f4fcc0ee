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

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclink/seclink/kernelnet"
	"github.com/seclink/seclink/kernelnet/mock_kernelnet"
	"github.com/seclink/seclink/pkg/log"
)

func newAPITest(t *testing.T) (*mock_kernelnet.MockNetwork, *httptest.Server) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	network := mock_kernelnet.NewMockNetwork(ctrl)
	a := &api{
		network: network,
		calls:   &daemonCallbacks{logger: log.Discard()},
	}
	server := httptest.NewServer(a.handler())
	t.Cleanup(server.Close)
	return network, server
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf [4096]byte
	n, _ := resp.Body.Read(buf[:])
	return resp, buf[:n]
}

func do(t *testing.T, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestAPIAddresses(t *testing.T) {
	network, server := newAPITest(t)
	network.EXPECT().Addresses(kernelnet.RegularAddrs).Return([]netip.Addr{
		netip.MustParseAddr("10.1.0.5"),
	})
	network.EXPECT().
		Addresses(kernelnet.RegularAddrs | kernelnet.VirtualAddrs).
		Return([]netip.Addr{
			netip.MustParseAddr("10.1.0.5"),
			netip.MustParseAddr("10.99.0.2"),
		})

	resp, body := get(t, server.URL+"/addresses")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var addrs []string
	require.NoError(t, json.Unmarshal(body, &addrs))
	assert.Empty(t, cmp.Diff([]string{"10.1.0.5"}, addrs))

	resp, body = get(t, server.URL+"/addresses?virtual=true")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &addrs))
	assert.Empty(t, cmp.Diff([]string{"10.1.0.5", "10.99.0.2"}, addrs))
}

func TestAPIQueries(t *testing.T) {
	network, server := newAPITest(t)
	dest := netip.MustParseAddr("192.0.2.1")
	network.EXPECT().SourceAddr(dest, netip.Addr{}).
		Return(netip.MustParseAddr("10.1.0.5"), true)
	network.EXPECT().Nexthop(dest, netip.Addr{}).
		Return(netip.Addr{}, false)

	resp, body := get(t, server.URL+"/source?dest=192.0.2.1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ip string
	require.NoError(t, json.Unmarshal(body, &ip))
	assert.Equal(t, "10.1.0.5", ip)

	resp, _ = get(t, server.URL+"/nexthop?dest=192.0.2.1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, server.URL+"/source?dest=not-an-ip")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIVIPs(t *testing.T) {
	network, server := newAPITest(t)
	vip := netip.MustParseAddr("10.99.0.2")
	network.EXPECT().AddIP(vip, 32, "").Return(kernelnet.StatusOK)
	network.EXPECT().DelIP(vip, -1, true).Return(kernelnet.StatusNotFound)

	resp := do(t, http.MethodPut, server.URL+"/vips/10.99.0.2?prefixlen=32")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodDelete, server.URL+"/vips/10.99.0.2?wait=true")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIRoutes(t *testing.T) {
	network, server := newAPITest(t)
	network.EXPECT().AddRoute(
		netip.MustParseAddr("10.9.0.0"), 24,
		netip.MustParseAddr("10.1.0.1"), netip.Addr{}, "eth0",
	).Return(kernelnet.StatusOK)
	network.EXPECT().DelRoute(
		netip.MustParseAddr("10.9.0.0"), 24,
		netip.MustParseAddr("10.1.0.1"), netip.Addr{}, "",
	).Return(kernelnet.StatusFailed)

	resp := do(t, http.MethodPut,
		server.URL+"/routes?dst=10.9.0.0&prefixlen=24&gw=10.1.0.1&ifname=eth0")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodDelete,
		server.URL+"/routes?dst=10.9.0.0&prefixlen=24&gw=10.1.0.1")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = do(t, http.MethodPut, server.URL+"/routes?dst=10.9.0.0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

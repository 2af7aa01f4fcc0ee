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

// Package kernelnet tracks the host's network state on BSD-family kernels
// and programs routes through the raw routing socket. It keeps a live cache
// of interfaces and their addresses fed by kernel events, answers source
// address and next-hop queries, manages tunnel devices for virtual IPs, and
// emits debounced roam notifications when connectivity changes.
package kernelnet

import (
	"net/netip"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/seclink/seclink/kernelnet/tundev"
	"github.com/seclink/seclink/pkg/log"
	"github.com/seclink/seclink/pkg/private/serrors"
)

// Status is the coarse result of a kernel operation.
type Status int

const (
	StatusOK Status = iota
	StatusFailed
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusNotFound:
		return "not found"
	}
	return "unknown"
}

// Features advertised by this backend.
type Features int

const (
	// FeatureRequireExcludeRoute indicates that the IKE layer must install
	// an explicit exclude route for IKE traffic.
	FeatureRequireExcludeRoute Features = 1 << iota
)

// AddrFlags selects which addresses an enumeration returns.
type AddrFlags int

const (
	// RegularAddrs includes addresses configured by the operating system.
	RegularAddrs AddrFlags = 1 << iota
	// VirtualAddrs includes virtual IPs installed by this backend.
	VirtualAddrs
	// IgnoredIfaces includes interfaces excluded by the usability policy.
	IgnoredIfaces
	// LoopbackIfaces includes loopback interfaces.
	LoopbackIfaces
	// DownIfaces includes interfaces that are not up.
	DownIfaces
)

// Network is the upward API consumed by the daemon's kernel-interface
// facade.
type Network interface {
	Features() Features
	InterfaceName(ip netip.Addr) (string, bool)
	Addresses(which AddrFlags) []netip.Addr
	SourceAddr(dest, hint netip.Addr) (netip.Addr, bool)
	Nexthop(dest, hint netip.Addr) (netip.Addr, bool)
	AddIP(vip netip.Addr, prefixLen int, ifaceHint string) Status
	DelIP(vip netip.Addr, prefixLen int, wait bool) Status
	AddRoute(dst netip.Addr, prefixLen int, gw, src netip.Addr, ifname string) Status
	DelRoute(dst netip.Addr, prefixLen int, gw, src netip.Addr, ifname string) Status
	Destroy()
}

// Callbacks is the facade through which the backend talks to the rest of the
// daemon. Implementations must be quick. IsInterfaceUsable and the tunnel
// notifications are invoked with the cache lock held and must not call back
// into the backend; Roam runs from the delayed job handed to the scheduler.
type Callbacks interface {
	// IsInterfaceUsable decides once per interface whether it participates
	// in address enumeration and roam tracking.
	IsInterfaceUsable(name string) bool
	// Roam signals that connectivity changed. The backend passes
	// addressChanged=true for address changes and link-state changes alike.
	Roam(addressChanged bool)
	// TunCreated is invoked after a virtual IP's tunnel device is fully set
	// up and visible.
	TunCreated(dev tundev.Device)
	// TunRemoved is invoked right before a tunnel device is destroyed.
	TunRemoved(dev tundev.Device)
}

// RouteSocket abstracts the raw routing socket shared by the event receiver
// and the query/command paths.
type RouteSocket interface {
	// Recv blocks until the next routing message and copies it into buf.
	Recv(buf []byte) (int, error)
	// Send writes a full routing message. A short write is an error.
	Send(msg []byte) error
	// CloseRead shuts down the read side, Recv fails afterwards.
	CloseRead() error
	Close() error
}

// SystemInterface is one interface with its addresses as reported by the
// operating system.
type SystemInterface struct {
	Index int
	Name  string
	Flags int
	Addrs []netip.Addr
}

// SystemAPI provides the OS interface enumeration used for the initial scan
// and for repopulation on link changes.
type SystemAPI interface {
	InterfaceAddrs() ([]SystemInterface, error)
	NameByIndex(index int) (string, error)
}

const (
	replyTimeout = time.Second
	roamDelay    = 100 * time.Millisecond
)

// Config configures a Net. Callbacks is mandatory, every other field has a
// working default.
type Config struct {
	Callbacks Callbacks
	// Socket is the routing socket to use. If nil, a raw routing socket is
	// opened.
	Socket RouteSocket
	// System is the OS enumeration to use. If nil, the net package is used.
	System SystemAPI
	// NewDevice creates tunnel devices for virtual IPs. If nil, the
	// platform TUN driver is used.
	NewDevice func() (tundev.Device, error)
	// WithoutEvents disables the event receiver. The read side of the
	// socket is shut down and the cache stays static after the initial
	// scan.
	WithoutEvents bool
	// TimeNow and Schedule drive the roam debouncer. If nil, the system
	// clock and timers are used.
	TimeNow  func() time.Time
	Schedule func(d time.Duration, f func())
	Metrics  *Metrics
	Logger   log.Logger
}

// Net is the BSD routing socket backend. It implements Network.
type Net struct {
	calls     Callbacks
	sock      RouteSocket
	system    SystemAPI
	newDevice func() (tundev.Device, error)
	metrics   *Metrics
	logger    log.Logger
	pid       int

	// lock guards the interface cache, the reverse index and the tunnel
	// list.
	lock  sync.RWMutex
	cache cache
	tuns  []tundev.Device

	// mux is the broker mutex. It guards waitingSeq and reply and is the
	// monitor for cond, which the receiver broadcasts on every message.
	mux        sync.Mutex
	cond       *sync.Cond
	waitingSeq int
	reply      []byte
	seq        atomic.Int32

	// lastRoam is only touched by the event goroutine.
	lastRoam time.Time

	replyTimeout time.Duration
	roamDelay    time.Duration
	timeNow      func() time.Time
	schedule     func(d time.Duration, f func())

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

var _ Network = (*Net)(nil)

// New opens the routing socket, performs the initial interface scan and
// starts the event receiver. The returned Net must be released with Destroy.
func New(cfg Config) (*Net, error) {
	if cfg.Callbacks == nil {
		return nil, serrors.New("no callbacks given")
	}
	n := &Net{
		calls:        cfg.Callbacks,
		sock:         cfg.Socket,
		system:       cfg.System,
		newDevice:    cfg.NewDevice,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		pid:          os.Getpid(),
		replyTimeout: replyTimeout,
		roamDelay:    roamDelay,
		timeNow:      cfg.TimeNow,
		schedule:     cfg.Schedule,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	n.cond = sync.NewCond(&n.mux)
	n.cache.init()
	if n.timeNow == nil {
		n.timeNow = time.Now
	}
	if n.schedule == nil {
		n.schedule = func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		}
	}
	if n.logger == nil {
		n.logger = log.Root()
	}
	if n.system == nil {
		n.system = osSystem{}
	}
	if n.newDevice == nil {
		n.newDevice = tundev.New
	}
	if n.sock == nil {
		sock, err := openRouteSocket()
		if err != nil {
			return nil, serrors.Wrap("creating routing socket", err)
		}
		n.sock = sock
	}
	if cfg.WithoutEvents {
		// No event receiver, the cache stays static after the scan.
		if err := n.sock.CloseRead(); err != nil {
			n.logger.Error("closing read end of routing socket failed",
				"err", err)
		}
		close(n.done)
	} else {
		go func() {
			defer log.HandlePanic()
			n.run()
		}()
	}
	if err := n.initAddressList(); err != nil {
		n.Destroy()
		return nil, serrors.Wrap("getting interface list", err)
	}
	return n, nil
}

// Features returns the feature set of this backend.
func (n *Net) Features() Features {
	return FeatureRequireExcludeRoute
}

// InterfaceName returns the name of the interface carrying ip. Interfaces
// excluded by the usability policy or down interfaces never match.
func (n *Net) InterfaceName(ip netip.Addr) (string, bool) {
	if !ip.IsValid() || ip.IsUnspecified() {
		return "", false
	}
	n.lock.RLock()
	defer n.lock.RUnlock()
	if e := n.cache.match(ip, ifaceUpAndUsable); e != nil {
		n.logger.Debug("address is on interface",
			"addr", ip, "interface", e.iface.name)
		return e.iface.name, true
	}
	// Maybe it is installed on an ignored interface.
	if e := n.cache.match(ip, ifaceUp); e == nil {
		n.logger.Debug("address not local or interface down", "addr", ip)
	}
	return "", false
}

// Addresses returns the local addresses matching the given selection. IPv6
// link-local addresses are never included.
func (n *Net) Addresses(which AddrFlags) []netip.Addr {
	n.lock.RLock()
	defer n.lock.RUnlock()
	return n.cache.addresses(which)
}

// visible reports whether ip is present on any interface that is up,
// including virtual addresses. The caller must not hold the cache lock.
func (n *Net) visible(ip netip.Addr) bool {
	n.lock.RLock()
	defer n.lock.RUnlock()
	return n.cache.contains(ip, ifaceUp)
}

// initAddressList populates the cache from a fresh OS scan.
func (n *Net) initAddressList() error {
	ifs, err := n.system.InterfaceAddrs()
	if err != nil {
		return err
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	for _, si := range ifs {
		iface := n.cache.byName(si.Name)
		if iface == nil {
			iface = &ifaceEntry{
				index:  si.Index,
				name:   si.Name,
				flags:  si.Flags,
				usable: n.calls.IsInterfaceUsable(si.Name),
			}
			n.cache.insert(iface)
		}
		for _, ip := range si.Addrs {
			n.cache.addAddr(iface, ip)
		}
	}
	if n.logger.Enabled(log.LevelDebug) {
		n.logger.Debug("known interfaces and IP addresses:")
		for _, iface := range n.cache.ifaces {
			if !iface.usable || !iface.up() {
				continue
			}
			n.logger.Debug("interface", "name", iface.name)
			for _, addr := range iface.addrs {
				n.logger.Debug("address", "addr", addr.ip)
			}
		}
	}
	return nil
}

// Destroy stops the event receiver, closes the routing socket and releases
// all tunnel devices.
func (n *Net) Destroy() {
	n.stopOnce.Do(func() {
		close(n.stop)
	})
	if n.sock != nil {
		if err := n.sock.Close(); err != nil {
			n.logger.Error("closing routing socket failed", "err", err)
		}
	}
	<-n.done
	n.lock.Lock()
	tuns := n.tuns
	n.tuns = nil
	n.lock.Unlock()
	for _, dev := range tuns {
		if err := dev.Close(); err != nil {
			n.logger.Error("closing tun device failed",
				"interface", dev.Name(), "err", err)
		}
	}
}

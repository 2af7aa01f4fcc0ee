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
	"path"
	"sync/atomic"

	"github.com/seclink/seclink/kernelnet/tundev"
	"github.com/seclink/seclink/pkg/log"
)

// daemonCallbacks connects the kernel backend to the daemon: it applies the
// configured interface-usability policy and counts roam events for the API.
type daemonCallbacks struct {
	ignorePatterns []string
	logger         log.Logger
	roams          atomic.Int64
}

func (c *daemonCallbacks) IsInterfaceUsable(name string) bool {
	for _, pattern := range c.ignorePatterns {
		// Patterns are validated at config load.
		if ok, _ := path.Match(pattern, name); ok {
			return false
		}
	}
	return true
}

func (c *daemonCallbacks) Roam(addressChanged bool) {
	c.roams.Add(1)
	c.logger.Info("connectivity changed", "address_changed", addressChanged)
}

func (c *daemonCallbacks) TunCreated(dev tundev.Device) {
	c.logger.Info("tunnel device created", "interface", dev.Name())
}

func (c *daemonCallbacks) TunRemoved(dev tundev.Device) {
	c.logger.Info("tunnel device removed", "interface", dev.Name())
}

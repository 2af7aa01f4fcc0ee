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

// fireRoam schedules a delayed roam notification and fires only one for
// multiple calls within the delay window. Otherwise a flapping interface
// would create too many events. Only the event goroutine calls this.
func (n *Net) fireRoam(addressChanged bool) {
	now := n.timeNow()
	if !now.After(n.lastRoam) {
		return
	}
	n.lastRoam = now.Add(n.roamDelay)
	n.metrics.roamScheduled()
	n.schedule(n.roamDelay, func() {
		n.calls.Roam(addressChanged)
	})
}

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
	"net/netip"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/seclink/seclink/kernelnet"
)

// api exposes the kernel backend's state and operations over HTTP.
type api struct {
	network kernelnet.Network
	calls   *daemonCallbacks
}

func (a *api) handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
	}))
	r.Get("/status", a.status)
	r.Get("/addresses", a.addresses)
	r.Get("/source", a.source)
	r.Get("/nexthop", a.nexthop)
	r.Put("/vips/{vip}", a.addVIP)
	r.Delete("/vips/{vip}", a.delVIP)
	r.Put("/routes", a.addRoute)
	r.Delete("/routes", a.delRoute)
	return r
}

func (a *api) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"roam_events": a.calls.roams.Load(),
		"features":    int(a.network.Features()),
	})
}

func (a *api) addresses(w http.ResponseWriter, r *http.Request) {
	which := kernelnet.RegularAddrs
	q := r.URL.Query()
	if q.Get("virtual") == "true" {
		which |= kernelnet.VirtualAddrs
	}
	if q.Get("all") == "true" {
		which |= kernelnet.IgnoredIfaces | kernelnet.LoopbackIfaces |
			kernelnet.DownIfaces
	}
	addrs := a.network.Addresses(which)
	out := make([]string, 0, len(addrs))
	for _, ip := range addrs {
		out = append(out, ip.String())
	}
	writeJSON(w, out)
}

func (a *api) source(w http.ResponseWriter, r *http.Request) {
	a.query(w, r, a.network.SourceAddr)
}

func (a *api) nexthop(w http.ResponseWriter, r *http.Request) {
	a.query(w, r, a.network.Nexthop)
}

func (a *api) query(w http.ResponseWriter, r *http.Request,
	f func(dest, hint netip.Addr) (netip.Addr, bool)) {

	dest, err := netip.ParseAddr(r.URL.Query().Get("dest"))
	if err != nil {
		http.Error(w, "invalid destination", http.StatusBadRequest)
		return
	}
	var hint netip.Addr
	if h := r.URL.Query().Get("hint"); h != "" {
		if hint, err = netip.ParseAddr(h); err != nil {
			http.Error(w, "invalid hint", http.StatusBadRequest)
			return
		}
	}
	ip, ok := f(dest, hint)
	if !ok {
		http.Error(w, "no route", http.StatusNotFound)
		return
	}
	writeJSON(w, ip.String())
}

func (a *api) addVIP(w http.ResponseWriter, r *http.Request) {
	vip, err := netip.ParseAddr(chi.URLParam(r, "vip"))
	if err != nil {
		http.Error(w, "invalid virtual IP", http.StatusBadRequest)
		return
	}
	prefixLen := -1
	if p := r.URL.Query().Get("prefixlen"); p != "" {
		if prefixLen, err = strconv.Atoi(p); err != nil {
			http.Error(w, "invalid prefix length", http.StatusBadRequest)
			return
		}
	}
	writeStatus(w, a.network.AddIP(vip, prefixLen, ""))
}

func (a *api) delVIP(w http.ResponseWriter, r *http.Request) {
	vip, err := netip.ParseAddr(chi.URLParam(r, "vip"))
	if err != nil {
		http.Error(w, "invalid virtual IP", http.StatusBadRequest)
		return
	}
	wait := r.URL.Query().Get("wait") == "true"
	writeStatus(w, a.network.DelIP(vip, -1, wait))
}

func (a *api) addRoute(w http.ResponseWriter, r *http.Request) {
	a.route(w, r, a.network.AddRoute)
}

func (a *api) delRoute(w http.ResponseWriter, r *http.Request) {
	a.route(w, r, a.network.DelRoute)
}

func (a *api) route(w http.ResponseWriter, r *http.Request,
	f func(dst netip.Addr, prefixLen int, gw, src netip.Addr,
		ifname string) kernelnet.Status) {

	q := r.URL.Query()
	dst, err := netip.ParseAddr(q.Get("dst"))
	if err != nil {
		http.Error(w, "invalid destination", http.StatusBadRequest)
		return
	}
	prefixLen, err := strconv.Atoi(q.Get("prefixlen"))
	if err != nil {
		http.Error(w, "invalid prefix length", http.StatusBadRequest)
		return
	}
	var gw, src netip.Addr
	if g := q.Get("gw"); g != "" {
		if gw, err = netip.ParseAddr(g); err != nil {
			http.Error(w, "invalid gateway", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("src"); s != "" {
		if src, err = netip.ParseAddr(s); err != nil {
			http.Error(w, "invalid source", http.StatusBadRequest)
			return
		}
	}
	writeStatus(w, f(dst, prefixLen, gw, src, q.Get("ifname")))
}

func writeStatus(w http.ResponseWriter, st kernelnet.Status) {
	switch st {
	case kernelnet.StatusOK:
		writeJSON(w, "ok")
	case kernelnet.StatusNotFound:
		http.Error(w, st.String(), http.StatusNotFound)
	default:
		http.Error(w, st.String(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	_ = enc.Encode(v)
}

// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.


package visualizer

import (
	"fmt"
	"net/http"

	"github.com/Fantom-foundation/rv/logger"
	"github.com/Fantom-foundation/rv/scenario"
	"github.com/Fantom-foundation/rv/utils"
)

// HTML references for the rendered pages.
const chartsRef = "charts"
const familiesRef = "families"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>` + PageTitle + `</title>
  </head>
  <body>
    <h1>` + PageTitle + `</h1>
    <ul>
    <li> <h3> <a href="/` + chartsRef + `"> Distribution Charts </a> </h3> </li>
    <li> <h3> <a href="/` + familiesRef + `"> Distribution Families </a> </h3> </li>
    </ul>
</body>
</html>
`

// NewHandler returns the handler serving the index, the charts of vars and the family graph.
func NewHandler(vars []scenario.Named, cfg *utils.Config, log logger.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, MainHtml)
	})
	mux.HandleFunc("/"+chartsRef, func(w http.ResponseWriter, r *http.Request) {
		if err := WritePage(w, vars, cfg); err != nil {
			log.Errorf("cannot render charts; %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	mux.HandleFunc("/"+familiesRef, func(w http.ResponseWriter, r *http.Request) {
		txt, err := RenderFamilyGraph()
		if err != nil {
			log.Errorf("cannot render family graph; %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, txt)
	})
	return mux
}

// FireUpWeb fires up a new web-server for data visualisation; it blocks until the server fails.
func FireUpWeb(vars []scenario.Named, cfg *utils.Config, log logger.Logger) error {
	log.Noticef("Serving charts on http://localhost:%v/", cfg.Port)
	return http.ListenAndServe(":"+cfg.Port, NewHandler(vars, cfg, log))
}

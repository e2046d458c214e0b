// This file is part of Gopherbrick.
//
// Gopherbrick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbrick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbrick.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopherbrick/logger"
)

// Address the stats server listens on.
const Address = "localhost:12600"

var (
	crit sync.Mutex
	mgr  *statsview.ViewManager
)

// Launch starts the stats server in a new goroutine. Calling Launch() again
// only reports where the charts can be found.
func Launch(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()

	if mgr == nil {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr = statsview.New()
		go mgr.Start()
		logger.Logf(logger.Allow, "statsview", "serving on %s", Address)
	}

	fmt.Fprintf(output, "runtime charts at http://%s/debug/statsview\n", Address)
}

// Available returns true because the server is compiled in.
func Available() bool {
	return true
}

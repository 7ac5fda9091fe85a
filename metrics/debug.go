package metrics

import (
	"expvar"
	"net/http"
	"strings"

	"code.cloudfoundry.org/debugserver"
	"code.cloudfoundry.org/lager/v3"

	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

func StartDebugServer(address string, sink *lager.ReconfigurableSink, metrics Metrics) (ifrit.Process, error) {
	publish("numCPUS", metrics.NumCPU)
	publish("numGoRoutines", metrics.NumGoroutine)
	publish("activeWorkers", metrics.ActiveWorkers)
	publish("completedWorkers", metrics.CompletedWorkers)
	publish("totalMemory", metrics.TotalMemory)

	server := http_server.New(address, handler(sink))
	p := ifrit.Invoke(server)
	select {
	case <-p.Ready():
	case err := <-p.Wait():
		return nil, err
	}
	return p, nil
}

// expvar panics on duplicate names, and the set is process-wide.
func publish(name string, metric func() int) {
	if expvar.Get(name) != nil {
		return
	}

	expvar.Publish(name, expvar.Func(func() interface{} {
		return metric()
	}))
}

func handler(sink *lager.ReconfigurableSink) http.Handler {
	pprofHandler := debugserver.Handler(sink)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/debug/vars") {
			http.DefaultServeMux.ServeHTTP(w, r)
			return
		}
		pprofHandler.ServeHTTP(w, r)
	})
}

// Command echoserver is a minimal HTTP target for exercising benchmark
// definitions by hand: point a phase's httpRequest steps at it instead of a
// real service under test.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	http.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("echoserver listening on %s\n", *addr)
	fmt.Println("endpoints: GET /ping, GET /health")
	log.Fatal(http.ListenAndServe(*addr, nil))
}

//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

const sessionCookie = "dtek-session"

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Println("Usage: testserver [options] <shutdowns-page.html> <home-num.json>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	pagePath, dataPath := args[0], args[1]
	for _, p := range []string{pagePath, dataPath} {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			log.Fatalf("File does not exist: %s", p)
		}
	}

	http.HandleFunc("GET /ua/shutdowns", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "local", Path: "/"})
		serveFile(w, pagePath, "text/html; charset=utf-8")
	})

	http.HandleFunc("POST /ua/ajax", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(sessionCookie); err != nil {
			http.Error(w, "session cookie missing", http.StatusForbidden)
			log.Printf("Rejected ajax request without session cookie")
			return
		}
		if r.Header.Get("X-CSRF-Token") == "" {
			http.Error(w, "csrf token missing", http.StatusForbidden)
			log.Printf("Rejected ajax request without csrf token")
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("method") != "getHomeNum" {
			http.Error(w, "unsupported method", http.StatusBadRequest)
			log.Printf("Rejected ajax request with method %q", r.PostForm.Get("method"))
			return
		}

		log.Printf("Ajax request: city=%q street=%q updateFact=%q",
			r.PostForm.Get("data[0][value]"), r.PostForm.Get("data[1][value]"), r.PostForm.Get("data[2][value]"))
		serveFile(w, dataPath, "application/json")
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Shutdowns page: %s -> http://localhost%s/ua/shutdowns", pagePath, addr)
	log.Printf("Schedule data: %s -> POST http://localhost%s/ua/ajax", dataPath, addr)
	log.Println("\nFiles are read on each request, so you can edit them while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveFile(w http.ResponseWriter, path, contentType string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}

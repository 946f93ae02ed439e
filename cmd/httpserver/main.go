package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nhdewitt/http-fileserver/internal/fileserver"
	"github.com/nhdewitt/http-fileserver/internal/server"
)

const (
	port = 6789
	root = "."
)

func main() {
	server, err := server.Serve(port, fileserver.Handler(root))
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
	defer server.Close()
	log.Println("Serving", root, "on port", port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Server gracefully stopped")
}

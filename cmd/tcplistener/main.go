package main

import (
	"fmt"
	"log"
	"net"

	"github.com/nhdewitt/http-fileserver/internal/request"
)

const port = ":6790"

func main() {
	listener, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("error listening: %v", err.Error())
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", port)
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Printf("error accepting connection: %v", err)
			continue
		}
		log.Println("Connection accepted:", c.RemoteAddr())

		go dump(c)
	}
}

func dump(c net.Conn) {
	defer c.Close()

	req, err := request.RequestFromReader(c)
	if err != nil {
		log.Printf("error parsing request: %v", err)
		return
	}

	fmt.Println("Request line:")
	fmt.Printf("- Method: %s\n", req.RequestLine.Method)
	fmt.Printf("- Target: %s\n", req.RequestLine.RequestTarget)
	fmt.Printf("- Version: %s\n", req.RequestLine.HttpVersion)
	fmt.Println("Headers:")
	for _, h := range req.Headers {
		fmt.Printf("- %s\n", h)
	}
	fmt.Println("Connection to ", c.RemoteAddr(), "closed")
}

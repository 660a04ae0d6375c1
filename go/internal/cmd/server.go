package main

import (
	"fmt"
	"net/http"

	"github.com/mcdev12/lettersoup/go/internal/gateway"
)

func setupServer(port string, services *Services) *http.Server {
	mux := http.NewServeMux()
	services.Gateway.RegisterRoutes(mux)
	mux.Handle("/health/ready", services.Health)
	return gateway.NewHTTPServer(fmt.Sprintf(":%s", port), mux)
}

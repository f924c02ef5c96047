package web

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Server exposes the manual trigger over HTTP. Only requests addressed
// to a loopback host are allowed; anything else gets a 403 with no side
// effects.
type Server struct {
	run    func(ctx context.Context) error
	router *gin.Engine
}

// NewServer builds the trigger server around a single run function.
func NewServer(run func(ctx context.Context) error) *Server {
	router := gin.Default()

	s := &Server{
		run:    run,
		router: router,
	}

	router.GET("/", s.handleTrigger)
	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})

	return s
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleTrigger(c *gin.Context) {
	if !isLoopbackHost(c.Request.Host) {
		c.String(http.StatusForbidden, "forbidden")
		return
	}

	if err := s.run(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "OK")
}

func isLoopbackHost(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	return ip != nil && ip.IsLoopback()
}

package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticServer serves the generated artifacts as plain files. It exists so
// the freshly built page can be previewed locally; it has no routes of its
// own and no cancellation — it runs until the process is killed.
type StaticServer struct {
	router *gin.Engine
	dir    string
}

// NewStaticServer creates a server rooted at dir
func NewStaticServer(dir string) *StaticServer {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
	return &StaticServer{router: router, dir: dir}
}

// Run blocks serving HTTP on addr
func (s *StaticServer) Run(addr string) error {
	return s.router.Run(addr)
}

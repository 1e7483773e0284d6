// Package server exposes the analysis engine over HTTP: clients post file
// content and get the space tree back, no filesystem involved.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kdvornik/metra/pkg/parser"
	"github.com/kdvornik/metra/pkg/spaces"
)

// MetricsRequest asks for the metrics of one in-memory file. The language is
// detected from the file name. Unit limits the response to the file-level
// space. Metrics selects families by name; empty selects all.
type MetricsRequest struct {
	FileName string   `json:"file_name" binding:"required"`
	Content  string   `json:"content"`
	Unit     bool     `json:"unit"`
	Metrics  []string `json:"metrics"`
}

// MetricsResponse carries the computed space tree.
type MetricsResponse struct {
	FileName string            `json:"file_name"`
	Language parser.Language   `json:"language"`
	Spaces   *spaces.FuncSpace `json:"spaces"`
}

// OpsRequest asks for the operators and operands of one in-memory file.
type OpsRequest struct {
	FileName string `json:"file_name" binding:"required"`
	Content  string `json:"content"`
}

// OpsResponse carries the operator and operand tree.
type OpsResponse struct {
	FileName string          `json:"file_name"`
	Language parser.Language `json:"language"`
	Ops      *spaces.Ops     `json:"ops"`
}

// Server is the HTTP front end of the analysis engine.
type Server struct {
	router *gin.Engine
}

// New builds the server and its routes.
func New(verbose bool) *Server {
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if verbose {
		router.Use(gin.Logger())
	}

	s := &Server{router: router}
	router.GET("/ping", s.ping)
	router.POST("/metrics", s.metrics)
	router.POST("/ops", s.ops)
	return s
}

// Router returns the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run(host string, port int) error {
	return s.router.Run(fmt.Sprintf("%s:%d", host, port))
}

func (s *Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s *Server) metrics(c *gin.Context) {
	var req MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	language := parser.DetectLanguage(req.FileName)
	if language == parser.LangUnknown {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("unsupported language for %q", req.FileName),
		})
		return
	}

	sel, err := spaces.ParseSelection(req.Metrics)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := parser.New()
	defer p.Close()

	result, err := p.Parse([]byte(req.Content), language, req.FileName)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	root := spaces.Metrics(result, sel)
	if root != nil && req.Unit {
		root.Spaces = nil
	}

	c.JSON(http.StatusOK, MetricsResponse{
		FileName: req.FileName,
		Language: language,
		Spaces:   root,
	})
}

func (s *Server) ops(c *gin.Context) {
	var req OpsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	language := parser.DetectLanguage(req.FileName)
	if language == parser.LangUnknown {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("unsupported language for %q", req.FileName),
		})
		return
	}

	p := parser.New()
	defer p.Close()

	result, err := p.Parse([]byte(req.Content), language, req.FileName)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, OpsResponse{
		FileName: req.FileName,
		Language: language,
		Ops:      spaces.OperandsAndOperators(result),
	})
}

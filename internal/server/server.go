// Package server exposes the codec over HTTP for services that cannot link
// the library directly.
package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/pdf"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	Logger       zerolog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	log    zerolog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
		log:    config.Logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices/parse", s.handleParse)
		v1.POST("/invoices/parse/pdf", s.handleParsePDF)
		v1.POST("/invoices/convert", s.handleConvert)
		v1.POST("/invoices/detect", s.handleDetect)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.log.Info().Str("address", s.config.Address).Msg("starting server")
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleParse(c *gin.Context) {
	body, ok := s.rawBody(c)
	if !ok {
		return
	}

	d, err := cii.LoadBytes(body)
	if err != nil {
		s.log.Debug().Err(err).Msg("parse failed")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ParseResponse{
		Invoice: d,
		Summary: summarize(d),
	})
}

func (s *Server) handleParsePDF(c *gin.Context) {
	body, ok := s.rawBody(c)
	if !ok {
		return
	}

	xmlData, name, err := pdf.ExtractXML(body)
	if err != nil {
		s.log.Debug().Err(err).Msg("attachment extraction failed")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	d, err := cii.LoadBytes(xmlData)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ParseResponse{
		Invoice:    d,
		Summary:    summarize(d),
		Attachment: name,
	})
}

// handleConvert reparses the invoice and writes it back out, optionally under
// a different profile given by the "profile" query parameter.
func (s *Server) handleConvert(c *gin.Context) {
	body, ok := s.rawBody(c)
	if !ok {
		return
	}

	d, err := cii.LoadBytes(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	profile := codes.ProfileUnknown
	if urn := c.Query("profile"); urn != "" {
		profile = codes.ProfileFromString(urn)
		if profile == codes.ProfileUnknown {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown target profile"})
			return
		}
	}

	var buf bytes.Buffer
	if err := cii.SaveProfile(d, &buf, cii.Version21, profile); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/xml", buf.Bytes())
}

func (s *Server) handleDetect(c *gin.Context) {
	body, ok := s.rawBody(c)
	if !ok {
		return
	}

	rd, err := cii.NewRegistry().Detect(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	resp := DetectResponse{Version: rd.Version().String()}
	if d, err := cii.LoadBytes(body); err == nil {
		resp.Profile = d.Profile.String()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) rawBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}
	return body, true
}

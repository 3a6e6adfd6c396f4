package inspector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/wirekit/internal/auth"
	"github.com/danmuck/wirekit/internal/datapath"
	"github.com/danmuck/wirekit/internal/escape"
	"github.com/danmuck/wirekit/internal/hexview"
	"github.com/danmuck/wirekit/internal/hostport"
	"github.com/danmuck/wirekit/internal/observability"
	"github.com/danmuck/wirekit/internal/wiredump"
)

func (s *Service) registerRoutes() {
	r := s.router

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.started).String(),
			"node":    s.cfg.Name,
			"version": version,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/ready", func(c *gin.Context) {
		payload := gin.H{
			"ready":   true,
			"uptime":  time.Since(s.started).String(),
			"node":    s.cfg.Name,
			"version": version,
		}
		if ep := s.cfg.Endpoint(); ep != "" {
			payload["endpoint"] = ep
		}
		c.JSON(http.StatusOK, payload)
	})

	v1 := r.Group("/v1")
	if s.cfg.AuthToken != "" {
		v1.Use(auth.Middleware(auth.StaticToken{Token: s.cfg.AuthToken}))
	}

	v1.POST("/hexdump", s.handleHexdump)
	v1.POST("/escape", s.handleEscape)
	v1.POST("/unescape", s.handleUnescape)
	v1.POST("/clean", s.handleClean)
	v1.POST("/frames", s.handleFrames)
	v1.GET("/host/:host", s.handleHost)
	v1.GET("/samples/:name", s.handleSample)
}

// readBody drains the request body under the configured size cap.
func (s *Service) readBody(c *gin.Context) ([]byte, bool) {
	reader := http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)
	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit),
			})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "read body failed"})
		}
		return nil, false
	}
	return body, true
}

func (s *Service) handleHexdump(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	observability.RecordInspect(s.cfg.Name, "hexdump", len(body), nil)
	var buf bytes.Buffer
	_ = hexview.Fprint(&buf, body)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (s *Service) handleEscape(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	observability.RecordInspect(s.cfg.Name, "escape", len(body), nil)
	c.JSON(http.StatusOK, gin.H{"escaped": escape.Encode(body)})
}

func (s *Service) handleUnescape(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	raw, err := escape.Decode(string(body))
	observability.RecordInspect(s.cfg.Name, "unescape", len(body), err)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", raw)
}

func (s *Service) handleClean(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	keep := true
	if raw, found := c.GetQuery("keep_spacing"); found {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "keep_spacing must be a boolean"})
			return
		}
		keep = v
	}
	observability.RecordInspect(s.cfg.Name, "clean", len(body), nil)
	c.Data(http.StatusOK, "application/octet-stream", hexview.CleanBytes(body, keep))
}

func (s *Service) handleFrames(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	count, err := wiredump.RenderStream(&buf, bytes.NewReader(body), wiredump.DefaultLimits())
	observability.RecordInspect(s.cfg.Name, "frames", len(body), err)
	if err != nil && count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		// partial capture: the walkable prefix rendered, report the tail in-band
		fmt.Fprintf(&buf, "error: %v\n", err)
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (s *Service) handleHost(c *gin.Context) {
	host := c.Param("host")
	payload := gin.H{
		"host":       host,
		"valid_host": hostport.ValidHost(host),
	}
	if raw, found := c.GetQuery("port"); found {
		port, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "port must be an integer"})
			return
		}
		scheme := c.DefaultQuery("scheme", "http")
		payload["port"] = port
		payload["valid_port"] = hostport.ValidPort(port)
		payload["hostport"] = hostport.Format(scheme, host, port)
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Service) handleSample(c *gin.Context) {
	if !s.hasData {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data dir configured"})
		return
	}
	name := c.Param("name")
	if strings.ContainsAny(name, "/\\") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sample name"})
		return
	}
	path, err := s.data.Path(filepath.Join("samples", name))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, datapath.ErrNotFound) || errors.Is(err, datapath.ErrOutsideRoot) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.File(path)
}

package server

import (
	"bytes"
	"errors"
	"github.com/fatih/structs"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"lnodelist/dao"
	"lnodelist/dao/model"
	"lnodelist/job"
	"lnodelist/logger"
	"lnodelist/registry"
	"net/http"
)

type runRequest struct {
	Script string `json:"script" binding:"required"`
}

// Run executes a script and answers with everything it printed.
func (s *server) Run(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j := job.Create(req.Script, s.dao)
	buf := &bytes.Buffer{}
	err := j.RunForDebug(buf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"jobId":  j.JobId,
			"output": buf.String(),
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobId":  j.JobId,
		"output": buf.String(),
	})
}

func (s *server) ListNames(c *gin.Context) {
	names, err := s.dao.ListNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": names})
}

func (s *server) GetList(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	l, err := s.dao.LoadList(name)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"name":   name,
		"size":   l.Size(),
		"values": l.Values(),
	}})
}

func (s *server) RemoveList(c *gin.Context) {
	name := c.Query("name")
	err := s.dao.RemoveList(name)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *server) RegistryStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": structs.Map(s.reg.Stats())})
}

type wsWriter struct {
	ws *websocket.Conn
}

func (w *wsWriter) Write(p []byte) (n int, err error) {
	err = w.ws.WriteMessage(websocket.TextMessage, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

/**********WS***********/

// Debug reads one script from the socket and streams its console output back.
func (s *server) Debug(c *gin.Context) {
	ws, err := s.upgrade.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("debug upgrade failed:", err)
		return
	}
	defer func(ws *websocket.Conn) {
		_ = ws.Close()
	}(ws)

	_, script, err := ws.ReadMessage()
	if err != nil {
		logger.Warn("debug read failed:", err)
		return
	}
	write := wsWriter{
		ws: ws,
	}
	j := job.Create(string(script), s.dao)
	if err = j.RunForDebug(&write); err != nil {
		_, _ = write.Write([]byte("[error] " + err.Error() + "\n"))
	}
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, j.JobId))
}

/**********************/

type server struct {
	dao     dao.Dao
	reg     *registry.Registry
	upgrade websocket.Upgrader
}

func makeServer(d dao.Dao) *server {
	return &server{
		dao: d,
		reg: registry.Default,
		upgrade: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Start serves the playground API on engine, saving lists through d.
func Start(engine *gin.Engine, d dao.Dao) {
	makeServer(d).RegistryRouting(engine)
}

func (s *server) RegistryRouting(engine *gin.Engine) {
	api := engine.Group("/api")
	{
		api.POST("/run", s.Run)
		api.GET("/debug", s.Debug)
		api.GET("/lists", s.ListNames)
		api.GET("/list", s.GetList)
		api.DELETE("/list", s.RemoveList)
		api.GET("/registry", s.RegistryStats)
	}
}

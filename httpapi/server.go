// Package httpapi provides the HTTP surface over the chess rules engine:
// stateless move-generation, legality, and application endpoints, plus a
// WebSocket feed that re-evaluates whatever FEN a client streams it.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chessrules.dev/config"
	"chessrules.dev/rules"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server represents the chess rules HTTP server.
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// SetupRoutes sets up the API routes.
func (s *Server) SetupRoutes(r *gin.Engine) {
	if s.config.Server.CORSEnabled {
		r.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}
			c.Next()
		})
	}

	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/moves", s.listMoves)
		v1.POST("/moves/check", s.checkMove)
		v1.POST("/moves/apply", s.applyMove)
		v1.GET("/status", s.status)
	}

	r.GET("/ws/analyze", s.analyzeWebSocket)
}

type moveRequest struct {
	FEN  string `json:"fen" binding:"required"`
	Move string `json:"move"`
}

// listMoves returns every legal move from the FEN in the request body.
func (s *Server) listMoves(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	moves, err := rules.GetAvailableMoves(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_fen", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moves": moves})
}

// checkMove reports whether the requested move is legal.
func (s *Server) checkMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	legal, err := rules.CanDoMove(req.FEN, req.Move)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_move", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"legal": legal})
}

// applyMove applies the requested move and returns the resulting FEN.
func (s *Server) applyMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	fen, err := rules.GetAppliedMove(req.FEN, req.Move)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "illegal_move", Message: err.Error()})
		return
	}

	s.logger.Info("move applied", zap.String("move", req.Move), zap.String("fen", fen))
	c.JSON(http.StatusOK, gin.H{"fen": fen})
}

type statusResponse struct {
	WhiteToMove bool `json:"white_to_move"`
	InCheck     bool `json:"in_check"`
	Checkmate   bool `json:"checkmate"`
	Stalemate   bool `json:"stalemate"`
}

func positionStatus(fen string) (statusResponse, error) {
	var resp statusResponse
	var err error

	resp.WhiteToMove, err = rules.IsWhiteTurn(fen)
	if err != nil {
		return statusResponse{}, err
	}
	resp.InCheck, err = rules.IsCheck(fen)
	if err != nil {
		return statusResponse{}, err
	}
	resp.Checkmate, err = rules.IsLostCondition(fen)
	if err != nil {
		return statusResponse{}, err
	}
	resp.Stalemate, err = rules.IsPat(fen)
	if err != nil {
		return statusResponse{}, err
	}
	return resp, nil
}

// status returns the check/checkmate/stalemate/turn summary for ?fen=.
func (s *Server) status(c *gin.Context) {
	fen := c.Query("fen")
	if fen == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing_fen"})
		return
	}

	resp, err := positionStatus(fen)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_fen", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// health returns the health status of the API.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type analyzeRequest struct {
	FEN string `json:"fen"`
}

// analyzeWebSocket streams position status back to the client for every
// FEN it sends: the client drives an arbitrary sequence of positions (e.g.
// as a user steps through a game) and receives the same status summary
// /api/v1/status would give for each one.
func (s *Server) analyzeWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req analyzeRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Error("websocket read error", zap.Error(err))
			}
			break
		}

		resp, err := positionStatus(req.FEN)
		if err != nil {
			if writeErr := conn.WriteJSON(ErrorResponse{Error: "invalid_fen", Message: err.Error()}); writeErr != nil {
				break
			}
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("websocket write error", zap.Error(err))
			break
		}
	}
}
